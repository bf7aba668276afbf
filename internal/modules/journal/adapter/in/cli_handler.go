package in

import (
	"context"

	"mdjournal/internal/modules/journal/dto"
	journalin "mdjournal/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, content, mood string, tags []string) (dto.EntryOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{Content: content, Mood: mood, Tags: tags})
}

func (h CLIHandler) Edit(ctx context.Context, input dto.UpdateInput) (dto.EntryOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Clear(ctx context.Context) (int, error) {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Show(ctx context.Context, id string) (dto.EntryOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, limit int) ([]dto.EntryOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Limit: limit})
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) SeedDemo(ctx context.Context) (int, error) {
	return h.usecase.SeedDemo(ctx)
}
