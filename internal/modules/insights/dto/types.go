package dto

import "time"

type SeriesInput struct {
	Limit int
}

type SentimentOutput struct {
	Score    float64 `json:"score"`
	Label    string  `json:"label"`
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
}

type SampleOutput struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

type ThemeOutput struct {
	Term      string  `json:"term"`
	Count     int     `json:"count"`
	Sentiment float64 `json:"sentiment"`
	Emotion   bool    `json:"emotion"`
}

type AnxietyOutput struct {
	Detected    bool     `json:"detected"`
	Level       string   `json:"level,omitempty"`
	Score       int      `json:"score"`
	Triggers    []string `json:"triggers"`
	Patterns    []string `json:"patterns"`
	Suggestions []string `json:"suggestions"`
	Breathing   bool     `json:"breathing"`
}

type ClarityOutput struct {
	EntryID     string   `json:"entry_id"`
	Confusion   int      `json:"confusion"`
	Stress      int      `json:"stress"`
	Uncertainty int      `json:"uncertainty"`
	Clarity     int      `json:"clarity"`
	Resolution  int      `json:"resolution"`
	Peace       int      `json:"peace"`
	Improvement float64  `json:"improvement"`
	Insights    []string `json:"insights"`
}

type OverviewOutput struct {
	EntryCount int            `json:"entry_count"`
	Series     []SampleOutput `json:"series"`
	Themes     []ThemeOutput  `json:"themes"`
	Prompts    []string       `json:"prompts"`
	Weekly     string         `json:"weekly"`
}
