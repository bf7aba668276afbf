package in

import (
	"context"

	"mdjournal/internal/modules/journal/dto"
	journalin "mdjournal/internal/modules/journal/port/in"
)

// TUIHandler exposes the journal operations the interactive UI needs,
// including the draft kept between runs.
type TUIHandler struct {
	usecase journalin.Usecase
}

func NewTUIHandler(usecase journalin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) ListEntries(ctx context.Context, limit int) ([]dto.EntryOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Limit: limit})
}

func (h TUIHandler) AddEntry(ctx context.Context, content, mood string) (dto.EntryOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{Content: content, Mood: mood})
}

func (h TUIHandler) DeleteEntry(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h TUIHandler) SaveDraft(ctx context.Context, content, mood string) error {
	return h.usecase.SaveDraft(ctx, dto.DraftInput{Content: content, Mood: mood})
}

func (h TUIHandler) LoadDraft(ctx context.Context) (dto.DraftOutput, error) {
	return h.usecase.LoadDraft(ctx)
}

func (h TUIHandler) ClearDraft(ctx context.Context) error {
	return h.usecase.ClearDraft(ctx)
}

func (h TUIHandler) Moods() []dto.MoodOption {
	return h.usecase.Moods()
}
