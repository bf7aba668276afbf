package usecase

import (
	"context"

	"mdjournal/internal/modules/insights/domain"
	"mdjournal/internal/modules/insights/dto"
	insightsin "mdjournal/internal/modules/insights/port/in"
	"mdjournal/internal/modules/insights/service"
)

type Interactor struct {
	svc *service.InsightsService
}

func NewInteractor(svc *service.InsightsService) insightsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Sentiment(_ context.Context, text string) (dto.SentimentOutput, error) {
	s := i.svc.Sentiment(text)
	return dto.SentimentOutput{Score: s.Score, Label: string(s.Label), Positive: s.Positive, Negative: s.Negative}, nil
}

func (i *Interactor) Series(ctx context.Context, input dto.SeriesInput) ([]dto.SampleOutput, error) {
	entries, err := i.svc.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return toSamples(i.svc.Series(ctx, entries, input.Limit)), nil
}

func (i *Interactor) Themes(ctx context.Context) ([]dto.ThemeOutput, error) {
	entries, err := i.svc.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return i.toThemes(i.svc.Themes(ctx, entries)), nil
}

func (i *Interactor) Prompts(ctx context.Context) ([]string, error) {
	entries, err := i.svc.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return i.svc.Prompts(ctx, entries), nil
}

func (i *Interactor) Weekly(ctx context.Context) (string, error) {
	entries, err := i.svc.Entries(ctx)
	if err != nil {
		return "", err
	}
	return i.svc.Weekly(ctx, entries), nil
}

func (i *Interactor) Anxiety(ctx context.Context) (dto.AnxietyOutput, error) {
	entries, err := i.svc.Entries(ctx)
	if err != nil {
		return dto.AnxietyOutput{}, err
	}
	insight, ok := i.svc.Anxiety(ctx, entries)
	if !ok {
		return dto.AnxietyOutput{Triggers: []string{}, Patterns: []string{}, Suggestions: []string{}}, nil
	}
	return dto.AnxietyOutput{
		Detected:    true,
		Level:       string(insight.Level),
		Score:       insight.Score,
		Triggers:    insight.Triggers,
		Patterns:    insight.Patterns,
		Suggestions: insight.Suggestions,
		Breathing:   insight.Breathing,
	}, nil
}

func (i *Interactor) Clarity(ctx context.Context, entryID string) (dto.ClarityOutput, error) {
	m, err := i.svc.Clarity(ctx, entryID)
	if err != nil {
		return dto.ClarityOutput{}, err
	}
	insights := m.Insights
	if insights == nil {
		insights = []string{}
	}
	return dto.ClarityOutput{
		EntryID:     entryID,
		Confusion:   m.Before.Confusion,
		Stress:      m.Before.Stress,
		Uncertainty: m.Before.Uncertainty,
		Clarity:     m.After.Clarity,
		Resolution:  m.After.Resolution,
		Peace:       m.After.Peace,
		Improvement: m.Improvement,
		Insights:    insights,
	}, nil
}

func (i *Interactor) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	entries, err := i.svc.Entries(ctx)
	if err != nil {
		return dto.OverviewOutput{}, err
	}
	return dto.OverviewOutput{
		EntryCount: len(entries),
		Series:     toSamples(i.svc.Series(ctx, entries, 0)),
		Themes:     i.toThemes(i.svc.Themes(ctx, entries)),
		Prompts:    i.svc.Prompts(ctx, entries),
		Weekly:     i.svc.Weekly(ctx, entries),
	}, nil
}

func toSamples(samples []domain.SentimentSample) []dto.SampleOutput {
	out := make([]dto.SampleOutput, 0, len(samples))
	for _, s := range samples {
		out = append(out, dto.SampleOutput{Date: s.Date, Score: s.Score})
	}
	return out
}

func (i *Interactor) toThemes(themes []domain.Theme) []dto.ThemeOutput {
	out := make([]dto.ThemeOutput, 0, len(themes))
	for _, th := range themes {
		out = append(out, dto.ThemeOutput{
			Term:      th.Term,
			Count:     th.Count,
			Sentiment: th.Sentiment,
			Emotion:   i.svc.IsEmotion(th.Term),
		})
	}
	return out
}
