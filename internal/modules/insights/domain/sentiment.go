package domain

import "time"

type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Label classifier bounds. The weekly tone uses its own pair in weekly.go.
const (
	LabelPositiveThreshold = 0.25
	LabelNegativeThreshold = -0.25
)

type Sentiment struct {
	Score    float64
	Label    Label
	Positive int
	Negative int
}

type SentimentSample struct {
	Date  time.Time
	Score float64
}

// AnalyzeSentiment returns the valence of text in [-1, 1]; text without any
// lexicon hit scores exactly 0.
func (a *Analyzer) AnalyzeSentiment(text string) float64 {
	return a.Score(text).Score
}

func (a *Analyzer) Score(text string) Sentiment {
	return a.scoreTokens(Tokenize(text))
}

func (a *Analyzer) scoreTokens(tokens []string) Sentiment {
	pos, neg := 0, 0
	for _, t := range tokens {
		if _, ok := a.lex.positive[t]; ok {
			pos++
		}
		if _, ok := a.lex.negative[t]; ok {
			neg++
		}
	}
	out := Sentiment{Positive: pos, Negative: neg, Label: LabelNeutral}
	relevant := pos + neg
	if relevant == 0 {
		return out
	}
	out.Score = clamp(float64(pos-neg)/float64(max(relevant, 1)), -1, 1)
	out.Label = labelFor(out.Score)
	return out
}

func labelFor(score float64) Label {
	switch {
	case score > LabelPositiveThreshold:
		return LabelPositive
	case score < LabelNegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// AnalyzeSentimentSeries scores every entry, oldest first.
func (a *Analyzer) AnalyzeSentimentSeries(entries []Entry) []SentimentSample {
	out := make([]SentimentSample, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, SentimentSample{
			Date:  entries[i].CreatedAt,
			Score: a.AnalyzeSentiment(entries[i].Content),
		})
	}
	return out
}

// RecentSeries is AnalyzeSentimentSeries over the n most recent entries.
func (a *Analyzer) RecentSeries(entries []Entry, n int) []SentimentSample {
	if n <= 0 {
		return a.AnalyzeSentimentSeries(entries)
	}
	return a.AnalyzeSentimentSeries(recent(entries, n))
}

func (a *Analyzer) averageSentiment(entries []Entry) float64 {
	scores := make([]float64, 0, len(entries))
	for _, e := range entries {
		scores = append(scores, a.AnalyzeSentiment(e.Content))
	}
	return mean(scores)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
