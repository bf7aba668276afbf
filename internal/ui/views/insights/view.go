package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	insightsdto "mdjournal/internal/modules/insights/dto"
	"mdjournal/internal/ui/components"
	"mdjournal/internal/ui/theme"
)

type Port interface {
	Overview(ctx context.Context) (insightsdto.OverviewOutput, error)
}

type OverviewLoadedMsg struct {
	Overview insightsdto.OverviewOutput
	Err      error
}

// Model shows the mood trend, recurring themes, a prompt to write about and
// the weekly summary.
type Model struct {
	port     Port
	loc      *time.Location
	viewport viewport.Model
	spinner  spinner.Model
	overview insightsdto.OverviewOutput
	prompt   int
	loading  bool
	err      error
	width    int
	height   int
}

func New(port Port, loc *time.Location) Model {
	if loc == nil {
		loc = time.Local
	}
	vp := viewport.New(0, 0)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, loc: loc, viewport: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 2
		m.viewport.SetContent(m.render())
		return m, nil

	case OverviewLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.overview = msg.Overview
			if m.prompt >= len(m.overview.Prompts) {
				m.prompt = 0
			}
		}
		m.viewport.SetContent(m.render())
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "n":
			m.NextPrompt()
			return m, nil
		case "r":
			m.loading = true
			return m, tea.Batch(m.Refresh(), m.spinner.Tick)
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading && m.overview.EntryCount == 0 && m.err == nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Reading your journal…")
	}
	return theme.Pane.Width(m.width - 2).Height(m.height - 2).Render(m.viewport.View())
}

// NextPrompt rotates to the following writing prompt.
func (m *Model) NextPrompt() {
	if n := len(m.overview.Prompts); n > 0 {
		m.prompt = (m.prompt + 1) % n
		m.viewport.SetContent(m.render())
	}
}

// CurrentPrompt returns the prompt on display, if any.
func (m Model) CurrentPrompt() string {
	if m.prompt < len(m.overview.Prompts) {
		return m.overview.Prompts[m.prompt]
	}
	return ""
}

func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		o, err := m.port.Overview(context.Background())
		return OverviewLoadedMsg{Overview: o, Err: err}
	}
}

func (m Model) render() string {
	if m.err != nil {
		return theme.Error.Render("insights unavailable: " + m.err.Error())
	}
	o := m.overview
	wrap := lipgloss.NewStyle().Width(max(20, m.viewport.Width-2))
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("Mood trend") + "\n")
	if len(o.Series) == 0 {
		sb.WriteString(theme.Muted.Render("Write a few entries to see a trend.") + "\n")
	} else {
		scores := make([]float64, len(o.Series))
		for i, s := range o.Series {
			scores[i] = s.Score
		}
		last := o.Series[len(o.Series)-1]
		sb.WriteString(components.Sparkline(scores) + "  ")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%s → %s  latest ",
			o.Series[0].Date.In(m.loc).Format("Jan 2"), last.Date.In(m.loc).Format("Jan 2"))))
		sb.WriteString(theme.Score(last.Score).Render(fmt.Sprintf("%+.2f", last.Score)) + "\n")
	}

	sb.WriteString("\n" + theme.Title.Render("Themes") + "\n")
	if len(o.Themes) == 0 {
		sb.WriteString(theme.Muted.Render("No recurring themes yet.") + "\n")
	}
	top := 1
	for _, th := range o.Themes {
		top = max(top, th.Count)
	}
	for _, th := range o.Themes {
		bar := strings.Repeat("■", max(1, th.Count*12/top))
		kind := ""
		if th.Emotion {
			kind = theme.Muted.Render(" emotion")
		}
		sb.WriteString(fmt.Sprintf("%-12s %s %d  %s%s\n", th.Term,
			lipgloss.NewStyle().Foreground(theme.Lavender).Render(bar), th.Count,
			theme.Score(th.Sentiment).Render(fmt.Sprintf("%+.2f", th.Sentiment)), kind))
	}

	sb.WriteString("\n" + theme.Title.Render("Prompt") + "\n")
	if p := m.CurrentPrompt(); p != "" {
		sb.WriteString(wrap.Render(theme.Hot.Render("› ")+p) + "\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d of %d  n: next", m.prompt+1, len(o.Prompts))) + "\n")
	}

	sb.WriteString("\n" + theme.Title.Render("This week") + "\n")
	sb.WriteString(wrap.Render(o.Weekly) + "\n")
	sb.WriteString("\n" + theme.Muted.Render(fmt.Sprintf("%d entries  r: refresh", o.EntryCount)))
	return sb.String()
}
