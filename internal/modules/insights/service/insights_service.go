package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"mdjournal/internal/modules/insights/domain"
	insightsout "mdjournal/internal/modules/insights/port/out"
	"mdjournal/internal/platform/clock"
	"mdjournal/internal/platform/logger"
)

const (
	promptWindow  = 5
	anxietyWindow = 10
)

// InsightsService runs the analyzer over the journal and memoizes results in
// the cache under a fingerprint of the entries each result was derived from.
type InsightsService struct {
	analyzer    *domain.Analyzer
	source      insightsout.EntrySource
	cache       insightsout.Cache
	clock       clock.Clock
	loc         *time.Location
	seriesLimit int
	log         hclog.Logger
}

func NewInsightsService(
	analyzer *domain.Analyzer,
	source insightsout.EntrySource,
	cache insightsout.Cache,
	clock clock.Clock,
	loc *time.Location,
	seriesLimit int,
	log hclog.Logger,
) *InsightsService {
	if loc == nil {
		loc = time.Local
	}
	return &InsightsService{
		analyzer:    analyzer,
		source:      source,
		cache:       cache,
		clock:       clock,
		loc:         loc,
		seriesLimit: seriesLimit,
		log:         logger.OrDiscard(log).Named("insights"),
	}
}

type anxietyResult struct {
	Insight  domain.AnxietyInsight
	Detected bool
}

func (s *InsightsService) IsEmotion(term string) bool {
	return s.analyzer.IsEmotion(term)
}

func (s *InsightsService) Sentiment(text string) domain.Sentiment {
	return s.analyzer.Score(text)
}

func (s *InsightsService) Entries(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.source.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	return entries, nil
}

// Series returns the sentiment of the limit most recent entries, oldest
// first. A limit of zero uses the configured default.
func (s *InsightsService) Series(ctx context.Context, entries []domain.Entry, limit int) []domain.SentimentSample {
	if limit <= 0 {
		limit = s.seriesLimit
	}
	window := head(entries, limit)
	return memo(ctx, s, "series", window, func() []domain.SentimentSample {
		return s.analyzer.AnalyzeSentimentSeries(window)
	})
}

func (s *InsightsService) Themes(ctx context.Context, entries []domain.Entry) []domain.Theme {
	return memo(ctx, s, "themes", entries, func() []domain.Theme {
		return s.analyzer.ExtractThemes(entries)
	})
}

func (s *InsightsService) Prompts(ctx context.Context, entries []domain.Entry) []string {
	if len(entries) == 0 {
		return s.analyzer.GenerateDynamicPrompts(nil)
	}
	window := head(entries, promptWindow)
	return memo(ctx, s, "prompts", window, func() []string {
		return s.analyzer.GenerateDynamicPrompts(window)
	})
}

// Weekly is keyed on the entries inside the window, so the memo stays valid
// until an entry ages out or a new one is written.
func (s *InsightsService) Weekly(ctx context.Context, entries []domain.Entry) string {
	if len(entries) == 0 {
		return domain.WeeklyNoEntries
	}
	now := s.clock.Now()
	week := domain.WeekEntries(entries, now)
	if len(week) == 0 {
		return domain.WeeklyNoRecent
	}
	return memo(ctx, s, "weekly:"+s.loc.String(), week, func() string {
		return s.analyzer.GenerateWeeklyInsights(week, now, s.loc)
	})
}

func (s *InsightsService) Anxiety(ctx context.Context, entries []domain.Entry) (domain.AnxietyInsight, bool) {
	window := head(entries, anxietyWindow)
	res := memo(ctx, s, "anxiety", window, func() anxietyResult {
		insight, ok := domain.DetectAnxiety(window)
		return anxietyResult{Insight: insight, Detected: ok}
	})
	return res.Insight, res.Detected
}

func (s *InsightsService) Clarity(ctx context.Context, entryID string) (domain.ClarityMetrics, error) {
	entry, err := s.source.GetEntry(ctx, entryID)
	if err != nil {
		return domain.ClarityMetrics{}, err
	}
	return domain.MeasureClarity(entry), nil
}

func memo[T any](ctx context.Context, s *InsightsService, kind string, entries []domain.Entry, compute func() T) T {
	if s.cache == nil {
		return compute()
	}
	key := kind + ":" + fingerprint(s.analyzer.Digest(), entries)
	var cached T
	hit, err := s.cache.Get(ctx, key, &cached)
	switch {
	case err != nil:
		s.log.Warn("cache read failed", "key", key, "error", err)
	case hit:
		s.log.Debug("cache hit", "key", key)
		return cached
	}
	value := compute()
	if err := s.cache.Put(ctx, key, value); err != nil {
		s.log.Warn("cache write failed", "key", key, "error", err)
	}
	return value
}

// fingerprint hashes every field the analyzer reads, length-prefixed so
// that no two entry lists share an encoding.
func fingerprint(digest string, entries []domain.Entry) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%s;%d;", digest, len(entries))
	for _, e := range entries {
		_, _ = fmt.Fprintf(h, "%d:%s|%s|%d:%s;",
			len(e.ID), e.ID,
			e.CreatedAt.UTC().Format(time.RFC3339Nano),
			len(e.Content), e.Content,
		)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func head(entries []domain.Entry, n int) []domain.Entry {
	if n > 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}
