package domain

import (
	"fmt"
	"strings"
)

type AnxietyLevel string

const (
	AnxietyMild     AnxietyLevel = "mild"
	AnxietyModerate AnxietyLevel = "moderate"
	AnxietyHigh     AnxietyLevel = "high"
)

const (
	anxietyRecentWindow  = 10
	anxietyMinScore      = 3
	anxietyModerateScore = 5
	anxietyHighScore     = 8
	anxietyMaxTriggers   = 3
	anxietyMaxPatterns   = 4
)

type AnxietyInsight struct {
	Level       AnxietyLevel
	Score       int
	Triggers    []string
	Patterns    []string
	Suggestions []string
	Breathing   bool
}

type anxietyCategory struct {
	name     string
	keywords []string
}

// Situational keywords are reported as triggers, every other category as patterns.
const situationalCategory = "situational"

var anxietyCategories = []anxietyCategory{
	{name: "physical", keywords: []string{"racing heart", "sweating", "shaking", "nausea", "dizzy", "tight chest", "breathing"}},
	{name: "emotional", keywords: []string{"panic", "worry", "fear", "dread", "nervous", "overwhelmed", "scared"}},
	{name: "cognitive", keywords: []string{"racing thoughts", "worst case", "what if", "spiral", "overthinking", "ruminating"}},
	{name: situationalCategory, keywords: []string{"social", "work", "presentation", "meeting", "deadline", "performance", "crowd"}},
}

var baseAnxietySuggestions = []string{
	"Try the 5-4-3-2-1 grounding technique: 5 things you see, 4 you hear, 3 you touch, 2 you smell, 1 you taste",
	"Practice deep breathing: 4 counts in, hold for 4, out for 6",
	"Write down your worries, then ask: 'Is this thought helpful? Is it true? What would I tell a friend?'",
}

var triggerSuggestions = map[string][]string{
	"work":         {"Schedule 5-minute breaks between tasks", "Set boundaries on work thoughts after hours"},
	"social":       {"Practice self-compassion: most people are focused on themselves", "Prepare 2-3 conversation topics ahead of time"},
	"presentation": {"Visualize success and practice out loud", "Remember: the audience wants you to succeed"},
}

// DetectAnxiety looks for anxiety phrases in the ten most recent entries. It
// reports false when fewer than three phrase hits were found.
func DetectAnxiety(entries []Entry) (AnxietyInsight, bool) {
	score := 0
	var triggers, patterns []string
	seenTrigger := map[string]struct{}{}
	seenPattern := map[string]struct{}{}

	for _, entry := range recent(entries, anxietyRecentWindow) {
		content := strings.ToLower(entry.Content)
		for _, category := range anxietyCategories {
			for _, keyword := range category.keywords {
				if !strings.Contains(content, keyword) {
					continue
				}
				score++
				if category.name == situationalCategory {
					if _, ok := seenTrigger[keyword]; !ok {
						seenTrigger[keyword] = struct{}{}
						triggers = append(triggers, keyword)
					}
					continue
				}
				pattern := fmt.Sprintf("%s: %s", category.name, keyword)
				if _, ok := seenPattern[pattern]; !ok {
					seenPattern[pattern] = struct{}{}
					patterns = append(patterns, pattern)
				}
			}
		}
	}
	if score < anxietyMinScore {
		return AnxietyInsight{}, false
	}

	level := AnxietyMild
	switch {
	case score >= anxietyHighScore:
		level = AnxietyHigh
	case score >= anxietyModerateScore:
		level = AnxietyModerate
	}
	return AnxietyInsight{
		Level:       level,
		Score:       score,
		Triggers:    head(triggers, anxietyMaxTriggers),
		Patterns:    head(patterns, anxietyMaxPatterns),
		Suggestions: anxietySuggestions(level, triggers),
		Breathing:   level != AnxietyMild,
	}, true
}

func anxietySuggestions(level AnxietyLevel, triggers []string) []string {
	out := append([]string{}, baseAnxietySuggestions...)
	for _, trigger := range triggers {
		out = append(out, triggerSuggestions[trigger]...)
	}
	limit := 3
	switch level {
	case AnxietyHigh:
		limit = 5
	case AnxietyModerate:
		limit = 4
	}
	return head(out, limit)
}

func head(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string{}, items...)
}
