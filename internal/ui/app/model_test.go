package app

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	insightsdto "mdjournal/internal/modules/insights/dto"
	journaldto "mdjournal/internal/modules/journal/dto"
	apperrors "mdjournal/internal/platform/errors"
	"mdjournal/internal/ui/components"
	insightsview "mdjournal/internal/ui/views/insights"
	journalview "mdjournal/internal/ui/views/journal"
)

type fakeJournal struct{}

func (fakeJournal) ListEntries(context.Context, int) ([]journaldto.EntryOutput, error) {
	return nil, nil
}
func (fakeJournal) AddEntry(context.Context, string, string) (journaldto.EntryOutput, error) {
	return journaldto.EntryOutput{}, nil
}
func (fakeJournal) DeleteEntry(context.Context, string) error { return nil }
func (fakeJournal) SaveDraft(context.Context, string, string) error { return nil }
func (fakeJournal) ClearDraft(context.Context) error { return nil }
func (fakeJournal) Moods() []journaldto.MoodOption { return nil }
func (fakeJournal) LoadDraft(context.Context) (journaldto.DraftOutput, error) {
	return journaldto.DraftOutput{}, apperrors.ErrNoDraft
}

type fakeInsights struct{ clarity []string }

func (f *fakeInsights) Overview(context.Context) (insightsdto.OverviewOutput, error) {
	return insightsdto.OverviewOutput{Prompts: []string{"one", "two", "three"}}, nil
}
func (f *fakeInsights) Anxiety(context.Context) (insightsdto.AnxietyOutput, error) {
	return insightsdto.AnxietyOutput{}, nil
}
func (f *fakeInsights) Clarity(_ context.Context, id string) (insightsdto.ClarityOutput, error) {
	f.clarity = append(f.clarity, id)
	return insightsdto.ClarityOutput{EntryID: id}, nil
}

func newTestModel(t *testing.T, ins *fakeInsights) Model {
	t.Helper()
	m := NewModel("/vault", time.UTC, fakeJournal{}, ins)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestTabCycling(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, &fakeInsights{})
	m, _ = update(t, m, journalview.EntriesLoadedMsg{})
	assert.Equal(t, tabJournal, m.activeTab)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabInsights, m.activeTab)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabSupport, m.activeTab)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabInsights, m.activeTab)
	assert.Contains(t, m.View(), "Insights")
}

func TestLoadedMessagesReachInactiveTabs(t *testing.T) {
	t.Parallel()
	ins := &fakeInsights{}
	m := newTestModel(t, ins)
	overview, err := ins.Overview(context.Background())
	require.NoError(t, err)
	m, _ = update(t, m, insightsview.OverviewLoadedMsg{Overview: overview})
	assert.Equal(t, tabJournal, m.activeTab)
	assert.Equal(t, "one", m.insightsView.CurrentPrompt())

	m, cmd := update(t, m, journalview.EntriesLoadedMsg{Entries: []journaldto.EntryOutput{{ID: "e-1", Content: "hello"}}})
	require.NotNil(t, cmd)
	_, ok := m.journalView.SelectedEntry()
	assert.True(t, ok)
}

func TestPaletteCommands(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, &fakeInsights{})
	m, _ = update(t, m, insightsview.OverviewLoadedMsg{Overview: insightsdto.OverviewOutput{Prompts: []string{"one", "two"}}})

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "goto support"})
	assert.Equal(t, tabSupport, m.activeTab)

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "prompt:next"})
	assert.Equal(t, tabInsights, m.activeTab)
	assert.Equal(t, "prompt: two", m.status)

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "entry:new"})
	assert.Equal(t, tabJournal, m.activeTab)
	assert.True(t, m.journalView.Capturing())

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "goto nowhere"})
	assert.Equal(t, "unknown tab: nowhere", m.status)

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "launch"})
	assert.Equal(t, "unknown command: launch", m.status)
}

func TestQuitOnlyWhenNotComposing(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, &fakeInsights{})
	m, _ = update(t, m, journalview.EntriesLoadedMsg{})
	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "entry:new"})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit, "q is text while composing")
	}
}
