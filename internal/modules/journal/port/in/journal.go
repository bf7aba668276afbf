package in

import (
	"context"

	"mdjournal/internal/modules/journal/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.EntryOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.EntryOutput, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) (int, error)
	Get(ctx context.Context, id string) (dto.EntryOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.EntryOutput, error)
	Reindex(ctx context.Context) error
	SaveDraft(ctx context.Context, input dto.DraftInput) error
	LoadDraft(ctx context.Context) (dto.DraftOutput, error)
	ClearDraft(ctx context.Context) error
	SeedDemo(ctx context.Context) (int, error)
	Moods() []dto.MoodOption
}
