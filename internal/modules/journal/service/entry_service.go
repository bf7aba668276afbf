package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"mdjournal/internal/modules/journal/domain"
	journalout "mdjournal/internal/modules/journal/port/out"
	"mdjournal/internal/platform/clock"
	apperrors "mdjournal/internal/platform/errors"
	"mdjournal/internal/platform/id"
	"mdjournal/internal/platform/logger"
)

type EntryService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     journalout.EntryStore
	projector journalout.EntryIndexProjector
	drafts    journalout.DraftStore
	loc       *time.Location
	log       hclog.Logger
}

func NewEntryService(
	clock clock.Clock,
	idGen id.Generator,
	store journalout.EntryStore,
	projector journalout.EntryIndexProjector,
	drafts journalout.DraftStore,
	loc *time.Location,
	log hclog.Logger,
) *EntryService {
	if loc == nil {
		loc = time.Local
	}
	return &EntryService{
		clock:     clock,
		idGen:     idGen,
		store:     store,
		projector: projector,
		drafts:    drafts,
		loc:       loc,
		log:       logger.OrDiscard(log).Named("journal"),
	}
}

func (s *EntryService) Add(ctx context.Context, content string, mood domain.Mood, tags []string) (domain.Entry, error) {
	content, err := requireContent(content)
	if err != nil {
		return domain.Entry{}, err
	}
	if err := validateMood(mood); err != nil {
		return domain.Entry{}, err
	}
	entry := domain.Entry{
		ID:        s.idGen.New(),
		CreatedAt: s.clock.Now(),
		Content:   content,
		Mood:      mood,
		Tags:      domain.NormalizeTags(tags),
	}
	return s.persist(ctx, entry)
}

func (s *EntryService) Update(ctx context.Context, entryID string, content *string, mood *domain.Mood, tags []string, replaceTags bool) (domain.Entry, error) {
	entry, err := s.store.FindByID(ctx, entryID)
	if err != nil {
		return domain.Entry{}, err
	}
	if content != nil {
		trimmed, err := requireContent(*content)
		if err != nil {
			return domain.Entry{}, err
		}
		entry.Content = trimmed
	}
	if mood != nil {
		if err := validateMood(*mood); err != nil {
			return domain.Entry{}, err
		}
		entry.Mood = *mood
	}
	if replaceTags {
		entry.Tags = domain.NormalizeTags(tags)
	}
	entry.UpdatedAt = s.clock.Now()
	return s.persist(ctx, entry)
}

func (s *EntryService) Delete(ctx context.Context, entryID string) error {
	if err := s.store.Delete(ctx, entryID); err != nil {
		return err
	}
	if err := s.projector.DeleteEntry(ctx, entryID); err != nil {
		return err
	}
	s.log.Debug("entry deleted", "id", entryID)
	return nil
}

// Clear removes every entry note and empties the projection.
func (s *EntryService) Clear(ctx context.Context) (int, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, entry := range entries {
		if err := s.store.Delete(ctx, entry.ID); err != nil {
			return 0, err
		}
	}
	if err := s.projector.Reset(ctx); err != nil {
		return 0, err
	}
	s.log.Debug("journal cleared", "count", len(entries))
	return len(entries), nil
}

func (s *EntryService) Get(ctx context.Context, entryID string) (domain.Entry, error) {
	return s.store.FindByID(ctx, entryID)
}

// List returns entries newest first; limit <= 0 means all of them.
func (s *EntryService) List(ctx context.Context, limit int) ([]domain.Entry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *EntryService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	entries, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := s.projector.UpsertEntry(ctx, entry); err != nil {
			return err
		}
	}
	s.log.Debug("projection rebuilt", "count", len(entries))
	return nil
}

func (s *EntryService) SaveDraft(ctx context.Context, content string, mood domain.Mood) error {
	if err := validateMood(mood); err != nil {
		return err
	}
	return s.drafts.SaveDraft(ctx, domain.Draft{Content: content, Mood: mood, SavedAt: s.clock.Now()})
}

func (s *EntryService) LoadDraft(ctx context.Context) (domain.Draft, error) {
	return s.drafts.LoadDraft(ctx)
}

func (s *EntryService) ClearDraft(ctx context.Context) error {
	return s.drafts.ClearDraft(ctx)
}

// SeedDemo writes the bundled sample entries, dated back from today.
func (s *EntryService) SeedDemo(ctx context.Context) (int, error) {
	demo, err := domain.DemoEntries()
	if err != nil {
		return 0, err
	}
	now := s.clock.Now()
	for _, d := range demo {
		entry := domain.Entry{
			ID:        s.idGen.New(),
			CreatedAt: d.At(now, s.loc),
			Content:   strings.TrimSpace(d.Content),
			Mood:      d.Mood,
			Tags:      []string{"demo"},
		}
		if _, err := s.persist(ctx, entry); err != nil {
			return 0, fmt.Errorf("seed demo entry: %w", err)
		}
	}
	return len(demo), nil
}

func (s *EntryService) persist(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	if err := entry.Validate(); err != nil {
		return domain.Entry{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	path, err := s.store.Save(ctx, entry)
	if err != nil {
		return domain.Entry{}, err
	}
	entry.NotePath = path
	if err := s.projector.UpsertEntry(ctx, entry); err != nil {
		return domain.Entry{}, err
	}
	s.log.Debug("entry saved", "id", entry.ID, "path", path)
	return entry, nil
}

func requireContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", fmt.Errorf("content is required: %w", apperrors.ErrInvalidInput)
	}
	return trimmed, nil
}

func validateMood(mood domain.Mood) error {
	if err := mood.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return nil
}
