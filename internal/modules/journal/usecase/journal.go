package usecase

import (
	"context"

	"mdjournal/internal/modules/journal/domain"
	"mdjournal/internal/modules/journal/dto"
	journalin "mdjournal/internal/modules/journal/port/in"
	"mdjournal/internal/modules/journal/service"
)

type Interactor struct {
	svc *service.EntryService
}

func NewInteractor(svc *service.EntryService) journalin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.EntryOutput, error) {
	entry, err := i.svc.Add(ctx, input.Content, domain.Mood(input.Mood), input.Tags)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.EntryOutput, error) {
	var mood *domain.Mood
	if input.Mood != nil {
		m := domain.Mood(*input.Mood)
		mood = &m
	}
	entry, err := i.svc.Update(ctx, input.ID, input.Content, mood, input.Tags, input.ReplaceTags)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) Clear(ctx context.Context) (int, error) {
	return i.svc.Clear(ctx)
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.EntryOutput, error) {
	entry, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.EntryOutput, error) {
	entries, err := i.svc.List(ctx, input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toOutput(entry))
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) SaveDraft(ctx context.Context, input dto.DraftInput) error {
	return i.svc.SaveDraft(ctx, input.Content, domain.Mood(input.Mood))
}

func (i *Interactor) LoadDraft(ctx context.Context) (dto.DraftOutput, error) {
	draft, err := i.svc.LoadDraft(ctx)
	if err != nil {
		return dto.DraftOutput{}, err
	}
	return dto.DraftOutput{Content: draft.Content, Mood: string(draft.Mood), SavedAt: draft.SavedAt}, nil
}

func (i *Interactor) ClearDraft(ctx context.Context) error {
	return i.svc.ClearDraft(ctx)
}

func (i *Interactor) SeedDemo(ctx context.Context) (int, error) {
	return i.svc.SeedDemo(ctx)
}

func (i *Interactor) Moods() []dto.MoodOption {
	moods := domain.Moods()
	out := make([]dto.MoodOption, 0, len(moods))
	for _, m := range moods {
		out = append(out, dto.MoodOption{Value: string(m), Label: m.Label(), Emoji: m.Emoji()})
	}
	return out
}

func toOutput(entry domain.Entry) dto.EntryOutput {
	return dto.EntryOutput{
		ID:        entry.ID,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
		Content:   entry.Content,
		Mood:      string(entry.Mood),
		MoodLabel: entry.Mood.Label(),
		MoodEmoji: entry.Mood.Emoji(),
		Tags:      entry.Tags,
		NotePath:  entry.NotePath,
	}
}
