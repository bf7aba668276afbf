package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mdjournal/internal/modules/insights/domain"
)

func repeat(content string, n int) []domain.Entry {
	out := make([]domain.Entry, 0, n)
	for range n {
		out = append(out, domain.Entry{Content: content})
	}
	return out
}

func TestPromptsWithoutEntries(t *testing.T) {
	t.Parallel()
	got := domain.Default().GenerateDynamicPrompts(nil)
	assert.Equal(t, domain.BootstrapPrompts, got)
}

func TestPromptsHardTime(t *testing.T) {
	t.Parallel()
	got := domain.Default().GenerateDynamicPrompts(repeat("happy but sad tired and lonely", 5))
	assert.Equal(t, domain.HardTimePrompts, got)
}

func TestPromptsMomentum(t *testing.T) {
	t.Parallel()
	got := domain.Default().GenerateDynamicPrompts(repeat("great productive meeting at work", 5))
	assert.Equal(t, domain.MomentumPrompts, got)
}

func TestPromptsThemeTriggerThenFallback(t *testing.T) {
	t.Parallel()
	a := domain.Default()

	work := a.GenerateDynamicPrompts(repeat("meeting at work", 2))
	assert.Equal(t, []string{
		"How did you find moments of calm at work today?",
		"What part of your work gave you energy, and what drained it?",
		domain.FallbackPrompts[0],
	}, work)

	stress := a.GenerateDynamicPrompts(repeat("stressed about the deadline but happy", 1))
	assert.Equal(t, []string{
		"What helped you feel a little lighter today, even briefly?",
		"What is within your control right now, and what can you release?",
		domain.FallbackPrompts[0],
	}, stress)
}

func TestPromptsOnlyReadFiveMostRecent(t *testing.T) {
	t.Parallel()
	in := append(repeat("nothing much happened", 5), repeat("sad", 5)...)
	got := domain.Default().GenerateDynamicPrompts(in)
	assert.Equal(t, domain.FallbackPrompts[:3], got)
}

func TestPromptsAlwaysThree(t *testing.T) {
	t.Parallel()
	a := domain.Default()
	inputs := [][]domain.Entry{
		nil,
		repeat("", 1),
		repeat("work relationships health creativity anxious stressed", 4),
		repeat("great happy work family yoga painting", 7),
	}
	for _, in := range inputs {
		assert.Len(t, a.GenerateDynamicPrompts(in), 3)
	}
}
