package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	ManagedAnalysisStart = "<!-- mdjournal:analysis:start -->"
	ManagedAnalysisEnd   = "<!-- mdjournal:analysis:end -->"
	SchemaVersion        = 1
)

type Mood string

const (
	MoodVeryBad  Mood = "very-bad"
	MoodBad      Mood = "bad"
	MoodNeutral  Mood = "neutral"
	MoodGood     Mood = "good"
	MoodGreat    Mood = "great"
	MoodAnxious  Mood = "anxious"
	MoodPeaceful Mood = "peaceful"
)

type moodDisplay struct {
	label string
	emoji string
}

var moodDisplays = map[Mood]moodDisplay{
	MoodVeryBad:  {"Struggling", "😞"},
	MoodBad:      {"Tough", "🙁"},
	MoodNeutral:  {"Okay", "😐"},
	MoodGood:     {"Good", "🙂"},
	MoodGreat:    {"Great", "😊"},
	MoodAnxious:  {"Anxious", "😟"},
	MoodPeaceful: {"Peaceful", "😌"},
}

// Moods lists the accepted moods in picker order.
func Moods() []Mood {
	return []Mood{MoodVeryBad, MoodBad, MoodNeutral, MoodGood, MoodGreat, MoodAnxious, MoodPeaceful}
}

// Validate accepts the empty mood, which means none was recorded.
func (m Mood) Validate() error {
	if m == "" {
		return nil
	}
	if _, ok := moodDisplays[m]; !ok {
		return fmt.Errorf("unsupported mood %q", string(m))
	}
	return nil
}

func (m Mood) Label() string {
	if d, ok := moodDisplays[m]; ok {
		return d.label
	}
	return ""
}

func (m Mood) Emoji() string {
	if d, ok := moodDisplays[m]; ok {
		return d.emoji
	}
	return ""
}

type Entry struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Content   string
	Mood      Mood
	Tags      []string
	NotePath  string
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if e.CreatedAt.IsZero() {
		return fmt.Errorf("created_at is required")
	}
	return e.Mood.Validate()
}

// AnalysisBlock is the generated text kept between the managed markers of a note.
func (e Entry) AnalysisBlock() string {
	if e.Mood == "" {
		return "mood: not recorded"
	}
	return fmt.Sprintf("mood: %s %s", e.Mood.Label(), e.Mood.Emoji())
}

// NormalizeTags trims, lowercases and dedupes tags, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]struct{}{}
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Draft is unfinished compose text kept between TUI runs.
type Draft struct {
	Content string    `json:"content"`
	Mood    Mood      `json:"mood"`
	SavedAt time.Time `json:"saved_at"`
}
