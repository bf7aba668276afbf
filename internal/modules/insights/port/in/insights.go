package in

import (
	"context"

	"mdjournal/internal/modules/insights/dto"
)

type Usecase interface {
	Sentiment(ctx context.Context, text string) (dto.SentimentOutput, error)
	Series(ctx context.Context, input dto.SeriesInput) ([]dto.SampleOutput, error)
	Themes(ctx context.Context) ([]dto.ThemeOutput, error)
	Prompts(ctx context.Context) ([]string, error)
	Weekly(ctx context.Context) (string, error)
	Anxiety(ctx context.Context) (dto.AnxietyOutput, error)
	Clarity(ctx context.Context, entryID string) (dto.ClarityOutput, error)
	Overview(ctx context.Context) (dto.OverviewOutput, error)
}
