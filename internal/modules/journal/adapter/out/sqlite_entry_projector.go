package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mdjournal/internal/modules/journal/domain"
	journalout "mdjournal/internal/modules/journal/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteEntryProjector struct {
	db *sql.DB
}

func NewSQLiteEntryProjector(dbPath string) (journalout.EntryIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteEntryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteEntryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS entries (
  id TEXT PRIMARY KEY,
  created_at TEXT NOT NULL,
  updated_at TEXT,
  content TEXT NOT NULL,
  mood TEXT,
  tags TEXT,
  word_count INTEGER NOT NULL,
  note_path TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_created_at ON entries(created_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create entries table: %w", err)
	}
	return nil
}

func (s *SQLiteEntryProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("reset entries: %w", err)
	}
	return nil
}

func (s *SQLiteEntryProjector) UpsertEntry(ctx context.Context, entry domain.Entry) error {
	const stmt = `
INSERT INTO entries (id, created_at, updated_at, content, mood, tags, word_count, note_path)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  created_at=excluded.created_at,
  updated_at=excluded.updated_at,
  content=excluded.content,
  mood=excluded.mood,
  tags=excluded.tags,
  word_count=excluded.word_count,
  note_path=excluded.note_path;
`
	updatedAt := ""
	if !entry.UpdatedAt.IsZero() {
		updatedAt = entry.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	_, err := s.db.ExecContext(ctx, stmt,
		entry.ID,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
		updatedAt,
		entry.Content,
		string(entry.Mood),
		strings.Join(entry.Tags, ","),
		len(strings.Fields(entry.Content)),
		entry.NotePath,
	)
	if err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}
	return nil
}

func (s *SQLiteEntryProjector) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
