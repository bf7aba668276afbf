package domain

const (
	promptCount        = 3
	promptRecentWindow = 5
	promptTopThemes    = 3

	hardTimeThreshold = -0.3
	momentumThreshold = 0.3
)

var BootstrapPrompts = []string{
	"What's on your mind today?",
	"What is one thing you are looking forward to this week?",
	"How are you feeling right now, and what might be behind it?",
}

var HardTimePrompts = []string{
	"What has felt heaviest lately, and what would make it a little lighter?",
	"Who or what has supported you through difficult moments before?",
	"What is one small, kind thing you can do for yourself today?",
}

var MomentumPrompts = []string{
	"What has been going well, and how did you help make it happen?",
	"Which recent moment would you like to remember a year from now?",
	"How can you carry this good energy into the coming days?",
}

var FallbackPrompts = []string{
	"What felt meaningful or surprising about today?",
	"What did you learn about yourself this week?",
	"What would you like to let go of before tomorrow?",
	"Describe a moment today when you felt fully present.",
}

type promptTrigger struct {
	terms   []string
	prompts []string
}

// Trigger order is fixed; a trigger fires when any of its terms is a top theme.
var themePromptTriggers = []promptTrigger{
	{terms: []string{"work"}, prompts: []string{
		"How did you find moments of calm at work today?",
		"What part of your work gave you energy, and what drained it?",
	}},
	{terms: []string{"relationships"}, prompts: []string{
		"What felt supportive in your relationships this week?",
		"Is there a conversation you have been wanting to have with someone close?",
	}},
	{terms: []string{"stress", "anxiety"}, prompts: []string{
		"What helped you feel a little lighter today, even briefly?",
		"What is within your control right now, and what can you release?",
	}},
	{terms: []string{"creativity"}, prompts: []string{
		"When did creativity show up today, even in small ways?",
		"What idea keeps coming back to you, and what is one step toward it?",
	}},
	{terms: []string{"health"}, prompts: []string{
		"Did movement or time outside shift your mood today?",
		"How has your body been feeling, and what is it asking for?",
	}},
}

// GenerateDynamicPrompts returns exactly three prompts chosen from the tone and
// themes of the five most recent entries.
func (a *Analyzer) GenerateDynamicPrompts(entries []Entry) []string {
	if len(entries) == 0 {
		return firstThree(BootstrapPrompts)
	}

	window := recent(entries, promptRecentWindow)
	avg := a.averageSentiment(window)
	top := map[string]struct{}{}
	for i, th := range a.ExtractThemes(window) {
		if i == promptTopThemes {
			break
		}
		top[th.Term] = struct{}{}
	}

	candidates := make([]string, 0, 16)
	switch {
	case avg < hardTimeThreshold:
		candidates = append(candidates, HardTimePrompts...)
	case avg > momentumThreshold:
		candidates = append(candidates, MomentumPrompts...)
	}
	for _, trigger := range themePromptTriggers {
		for _, term := range trigger.terms {
			if _, ok := top[term]; ok {
				candidates = append(candidates, trigger.prompts...)
				break
			}
		}
	}
	if len(candidates) < promptCount {
		candidates = append(candidates, FallbackPrompts...)
	}
	return firstThree(candidates)
}

func firstThree(in []string) []string {
	out := make([]string, promptCount)
	copy(out, in)
	return out
}
