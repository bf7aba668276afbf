package support

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	insightsdto "mdjournal/internal/modules/insights/dto"
	"mdjournal/internal/ui/components"
	"mdjournal/internal/ui/theme"
)

type Port interface {
	Anxiety(ctx context.Context) (insightsdto.AnxietyOutput, error)
	Clarity(ctx context.Context, entryID string) (insightsdto.ClarityOutput, error)
}

type AnxietyLoadedMsg struct {
	Anxiety insightsdto.AnxietyOutput
	Err     error
}

type ClarityLoadedMsg struct {
	Clarity insightsdto.ClarityOutput
	Err     error
}

type Model struct {
	port      Port
	viewport  viewport.Model
	breathing components.Breathing
	anxiety   insightsdto.AnxietyOutput
	clarity   insightsdto.ClarityOutput
	entryID   string
	anxErr    error
	clarErr   error
	width     int
	height    int
}

func New(port Port) Model {
	return Model{port: port, viewport: viewport.New(0, 0), breathing: components.NewBreathing()}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
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

	case AnxietyLoadedMsg:
		m.anxiety, m.anxErr = msg.Anxiety, msg.Err
		m.viewport.SetContent(m.render())
		return m, nil

	case ClarityLoadedMsg:
		if msg.Clarity.EntryID != "" && msg.Clarity.EntryID != m.entryID {
			return m, nil
		}
		m.clarity, m.clarErr = msg.Clarity, msg.Err
		m.viewport.SetContent(m.render())
		return m, nil

	case components.BreathTickMsg:
		var cmd tea.Cmd
		m.breathing, cmd = m.breathing.Update(msg)
		m.viewport.SetContent(m.render())
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "b":
			if !m.anxiety.Breathing && !m.breathing.Active {
				return m, nil
			}
			cmd := m.breathing.Toggle()
			m.viewport.SetContent(m.render())
			return m, cmd
		case "r":
			return m, m.Refresh()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return theme.Pane.Width(m.width - 2).Height(m.height - 2).Render(m.viewport.View())
}

// SetEntry points the clarity section at another entry.
func (m *Model) SetEntry(id string) tea.Cmd {
	if id == m.entryID {
		return nil
	}
	m.entryID = id
	m.clarity = insightsdto.ClarityOutput{}
	m.clarErr = nil
	return m.loadClarityCmd(id)
}

// Refresh reloads anxiety and the current entry's clarity.
func (m Model) Refresh() tea.Cmd {
	return tea.Batch(m.loadAnxietyCmd(), m.loadClarityCmd(m.entryID))
}

func (m Model) render() string {
	wrap := lipgloss.NewStyle().Width(max(20, m.viewport.Width-2))
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("How you have been feeling") + "\n")
	switch {
	case m.anxErr != nil:
		sb.WriteString(theme.Error.Render(m.anxErr.Error()) + "\n")
	case !m.anxiety.Detected:
		sb.WriteString(theme.Muted.Render("No signs of anxiety in your recent entries.") + "\n")
	default:
		a := m.anxiety
		sb.WriteString("level: " + theme.Level(a.Level).Render(a.Level) + "\n")
		if len(a.Triggers) > 0 {
			sb.WriteString(theme.Muted.Render("common triggers: ") + strings.Join(a.Triggers, ", ") + "\n")
		}
		for _, p := range a.Patterns {
			sb.WriteString(wrap.Render("• "+p) + "\n")
		}
		if len(a.Suggestions) > 0 {
			sb.WriteString("\n" + theme.Title.Render("Things that may help") + "\n")
			for _, s := range a.Suggestions {
				sb.WriteString(wrap.Render("→ "+s) + "\n")
			}
		}
	}
	if m.anxiety.Breathing || m.breathing.Active {
		sb.WriteString("\n" + m.breathing.View() + "\n")
	}

	sb.WriteString("\n" + theme.Title.Render("Clarity of the selected entry") + "\n")
	switch {
	case m.entryID == "":
		sb.WriteString(theme.Muted.Render("Select an entry on the Journal tab.") + "\n")
	case m.clarErr != nil:
		sb.WriteString(theme.Error.Render(m.clarErr.Error()) + "\n")
	default:
		c := m.clarity
		sb.WriteString(fmt.Sprintf("before  confusion %d  stress %d  uncertainty %d\n", c.Confusion, c.Stress, c.Uncertainty))
		sb.WriteString(fmt.Sprintf("after   clarity %d  resolution %d  peace %d\n", c.Clarity, c.Resolution, c.Peace))
		sb.WriteString("shift   " + theme.Score(c.Improvement).Render(fmt.Sprintf("%+.2f", c.Improvement)) + "\n")
		for _, in := range c.Insights {
			sb.WriteString(wrap.Render("✦ "+in) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("r: refresh"))
	return sb.String()
}

func (m Model) loadAnxietyCmd() tea.Cmd {
	return func() tea.Msg {
		a, err := m.port.Anxiety(context.Background())
		return AnxietyLoadedMsg{Anxiety: a, Err: err}
	}
}

func (m Model) loadClarityCmd(id string) tea.Cmd {
	if id == "" {
		return nil
	}
	return func() tea.Msg {
		c, err := m.port.Clarity(context.Background(), id)
		if err != nil {
			c.EntryID = id
		}
		return ClarityLoadedMsg{Clarity: c, Err: err}
	}
}
