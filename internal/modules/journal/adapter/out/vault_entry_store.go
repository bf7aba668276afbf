package out

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"mdjournal/internal/modules/journal/domain"
	journalout "mdjournal/internal/modules/journal/port/out"
	apperrors "mdjournal/internal/platform/errors"
	"mdjournal/internal/platform/markdown"
	"mdjournal/internal/platform/slug"
)

const (
	entriesDir     = "entries"
	slugWords      = 6
	collisionIDLen = 8
)

type entryFrontmatter struct {
	SchemaVersion int      `yaml:"schema_version"`
	ID            string   `yaml:"id"`
	CreatedAt     string   `yaml:"created_at"`
	UpdatedAt     string   `yaml:"updated_at,omitempty"`
	Mood          string   `yaml:"mood,omitempty"`
	Tags          []string `yaml:"tags,omitempty"`
}

// VaultEntryStore keeps one markdown note per entry under
// <vault>/entries/YYYY/MM/DD/HHMMSS-<slug>.md.
type VaultEntryStore struct {
	root string
	loc  *time.Location
	mu   sync.Mutex
}

func NewVaultEntryStore(vaultPath string, loc *time.Location) journalout.EntryStore {
	if loc == nil {
		loc = time.Local
	}
	return &VaultEntryStore{root: filepath.Join(vaultPath, entriesDir), loc: loc}
}

func (s *VaultEntryStore) Save(_ context.Context, entry domain.Entry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notePath := entry.NotePath
	if notePath == "" {
		notePath = s.newNotePath(entry)
	}
	if err := os.MkdirAll(filepath.Dir(notePath), 0o755); err != nil {
		return "", fmt.Errorf("create entry directory: %w", err)
	}
	body := markdown.ReplaceManagedBlock(entry.Content, domain.ManagedAnalysisStart, domain.ManagedAnalysisEnd, entry.AnalysisBlock())
	rendered, err := markdown.RenderFrontmatter(toFrontmatter(entry), body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(notePath, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write entry markdown: %w", err)
	}
	return notePath, nil
}

func (s *VaultEntryStore) FindByID(ctx context.Context, id string) (domain.Entry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return domain.Entry{}, err
	}
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return domain.Entry{}, fmt.Errorf("entry %q: %w", id, apperrors.ErrNotFound)
}

func (s *VaultEntryStore) List(_ context.Context) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Entry
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}
		entry, readErr := readEntry(path)
		if readErr != nil {
			return readErr
		}
		out = append(out, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list entry notes: %w", err)
	}
	slices.SortFunc(out, func(a, b domain.Entry) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if out == nil {
		out = []domain.Entry{}
	}
	return out, nil
}

func (s *VaultEntryStore) Delete(ctx context.Context, id string) error {
	entry, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(entry.NotePath); err != nil {
		return fmt.Errorf("delete entry note: %w", err)
	}
	s.pruneEmptyDirs(filepath.Dir(entry.NotePath))
	return nil
}

func (s *VaultEntryStore) newNotePath(entry domain.Entry) string {
	local := entry.CreatedAt.In(s.loc)
	dir := filepath.Join(s.root, local.Format("2006"), local.Format("01"), local.Format("02"))
	base := local.Format("150405") + "-" + noteSlug(entry.Content)
	candidate := filepath.Join(dir, base+".md")
	if _, err := os.Stat(candidate); err == nil {
		suffix := entry.ID
		if len(suffix) > collisionIDLen {
			suffix = suffix[:collisionIDLen]
		}
		candidate = filepath.Join(dir, base+"-"+slug.Make(suffix)+".md")
	}
	return candidate
}

// pruneEmptyDirs removes the day, month and year folders once they are empty.
func (s *VaultEntryStore) pruneEmptyDirs(dir string) {
	for dir != s.root && strings.HasPrefix(dir, s.root) {
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}

func noteSlug(content string) string {
	if strings.TrimSpace(content) == "" {
		return "entry"
	}
	return slug.Words(content, slugWords)
}

func readEntry(path string) (domain.Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("read %s: %w", path, err)
	}
	var meta entryFrontmatter
	body, err := markdown.DecodeFrontmatter(string(content), &meta)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("parse %s: %w", path, err)
	}
	entry, err := fromFrontmatter(meta, body, path)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("decode entry %s: %w", path, err)
	}
	return entry, nil
}

func toFrontmatter(entry domain.Entry) entryFrontmatter {
	meta := entryFrontmatter{
		SchemaVersion: domain.SchemaVersion,
		ID:            entry.ID,
		CreatedAt:     entry.CreatedAt.Format(time.RFC3339Nano),
		Mood:          string(entry.Mood),
		Tags:          entry.Tags,
	}
	if !entry.UpdatedAt.IsZero() {
		meta.UpdatedAt = entry.UpdatedAt.Format(time.RFC3339Nano)
	}
	return meta
}

func fromFrontmatter(meta entryFrontmatter, body, notePath string) (domain.Entry, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, meta.CreatedAt)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("created_at: %w", err)
	}
	entry := domain.Entry{
		ID:        meta.ID,
		CreatedAt: createdAt,
		Mood:      domain.Mood(meta.Mood),
		Tags:      meta.Tags,
		NotePath:  notePath,
	}
	if meta.UpdatedAt != "" {
		updatedAt, err := time.Parse(time.RFC3339Nano, meta.UpdatedAt)
		if err != nil {
			return domain.Entry{}, fmt.Errorf("updated_at: %w", err)
		}
		entry.UpdatedAt = updatedAt
	}
	body = strings.TrimPrefix(body, "\n")
	entry.Content = strings.TrimSpace(markdown.StripManagedBlock(body, domain.ManagedAnalysisStart, domain.ManagedAnalysisEnd))
	if err := entry.Validate(); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}
