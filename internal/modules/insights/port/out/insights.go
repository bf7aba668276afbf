package out

import (
	"context"

	"mdjournal/internal/modules/insights/domain"
)

// EntrySource lists journal entries newest first.
type EntrySource interface {
	ListEntries(ctx context.Context) ([]domain.Entry, error)
	GetEntry(ctx context.Context, id string) (domain.Entry, error)
}

// Cache stores derived results by key. Get reports false on a miss.
type Cache interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Put(ctx context.Context, key string, value any) error
}
