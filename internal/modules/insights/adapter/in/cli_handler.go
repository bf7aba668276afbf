package in

import (
	"context"

	"mdjournal/internal/modules/insights/dto"
	insightsin "mdjournal/internal/modules/insights/port/in"
)

type CLIHandler struct {
	usecase insightsin.Usecase
}

func NewCLIHandler(usecase insightsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Sentiment(ctx context.Context, text string) (dto.SentimentOutput, error) {
	return h.usecase.Sentiment(ctx, text)
}

func (h CLIHandler) Series(ctx context.Context, limit int) ([]dto.SampleOutput, error) {
	return h.usecase.Series(ctx, dto.SeriesInput{Limit: limit})
}

func (h CLIHandler) Themes(ctx context.Context) ([]dto.ThemeOutput, error) {
	return h.usecase.Themes(ctx)
}

func (h CLIHandler) Prompts(ctx context.Context) ([]string, error) {
	return h.usecase.Prompts(ctx)
}

func (h CLIHandler) Weekly(ctx context.Context) (string, error) {
	return h.usecase.Weekly(ctx)
}

func (h CLIHandler) Anxiety(ctx context.Context) (dto.AnxietyOutput, error) {
	return h.usecase.Anxiety(ctx)
}

func (h CLIHandler) Clarity(ctx context.Context, entryID string) (dto.ClarityOutput, error) {
	return h.usecase.Clarity(ctx, entryID)
}

func (h CLIHandler) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}
