package dto

import "time"

type AddInput struct {
	Content string
	Mood    string
	Tags    []string
}

// UpdateInput leaves a field untouched when its pointer is nil. Tags are
// replaced only when ReplaceTags is set.
type UpdateInput struct {
	ID          string
	Content     *string
	Mood        *string
	Tags        []string
	ReplaceTags bool
}

type ListInput struct {
	Limit int
}

type DraftInput struct {
	Content string
	Mood    string
}

type EntryOutput struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	MoodLabel string    `json:"mood_label,omitempty"`
	MoodEmoji string    `json:"mood_emoji,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	NotePath  string    `json:"note_path,omitempty"`
}

type DraftOutput struct {
	Content string    `json:"content"`
	Mood    string    `json:"mood,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

type MoodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}
