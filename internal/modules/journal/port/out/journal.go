package out

import (
	"context"

	"mdjournal/internal/modules/journal/domain"
)

// EntryStore is the source of truth. List returns entries newest first.
type EntryStore interface {
	Save(ctx context.Context, entry domain.Entry) (string, error)
	FindByID(ctx context.Context, id string) (domain.Entry, error)
	List(ctx context.Context) ([]domain.Entry, error)
	Delete(ctx context.Context, id string) error
}

type EntryIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertEntry(ctx context.Context, entry domain.Entry) error
	DeleteEntry(ctx context.Context, id string) error
}

type DraftStore interface {
	SaveDraft(ctx context.Context, draft domain.Draft) error
	LoadDraft(ctx context.Context) (domain.Draft, error)
	ClearDraft(ctx context.Context) error
}
