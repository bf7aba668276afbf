package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	insightsout "mdjournal/internal/modules/insights/port/out"
	"mdjournal/internal/platform/clock"

	_ "modernc.org/sqlite"
)

// cacheMaxAge bounds how long a stored result is kept.
const cacheMaxAge = 30 * 24 * time.Hour

type SQLiteCache struct {
	db    *sql.DB
	clock clock.Clock
}

func NewSQLiteCache(dbPath string, clock clock.Clock) (insightsout.Cache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	cache := &SQLiteCache{db: db, clock: clock}
	if err := cache.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return cache, nil
}

func (c *SQLiteCache) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS insight_cache (
  key TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  stored_at TEXT NOT NULL
);
`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create insight_cache table: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Get(ctx context.Context, key string, out any) (bool, error) {
	var payload string
	err := c.db.QueryRowContext(ctx, `SELECT payload FROM insight_cache WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *SQLiteCache) Put(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value: %w", err)
	}
	now := c.clock.Now().UTC()
	const stmt = `
INSERT INTO insight_cache (key, payload, stored_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  payload=excluded.payload,
  stored_at=excluded.stored_at;
`
	if _, err := c.db.ExecContext(ctx, stmt, key, string(payload), now.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	cutoff := now.Add(-cacheMaxAge).Format(time.RFC3339)
	if _, err := c.db.ExecContext(ctx, `DELETE FROM insight_cache WHERE stored_at < ?`, cutoff); err != nil {
		return fmt.Errorf("prune cache: %w", err)
	}
	return nil
}
