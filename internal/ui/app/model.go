package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	insightsdto "mdjournal/internal/modules/insights/dto"
	"mdjournal/internal/ui/components"
	"mdjournal/internal/ui/theme"
	insightsview "mdjournal/internal/ui/views/insights"
	journalview "mdjournal/internal/ui/views/journal"
	supportview "mdjournal/internal/ui/views/support"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type insightsPort interface {
	Overview(ctx context.Context) (insightsdto.OverviewOutput, error)
	Anxiety(ctx context.Context) (insightsdto.AnxietyOutput, error)
	Clarity(ctx context.Context, entryID string) (insightsdto.ClarityOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabJournal tabID = iota
	tabInsights
	tabSupport
	tabCount
)

var tabLabels = [tabCount]string{"Journal", "Insights", "Support"}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	New     key.Binding
	Delete  key.Binding
	Save    key.Binding
	Breathe key.Binding
	Refresh key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new entry / next prompt")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete entry")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save entry")),
		Breathe: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "breathing exercise")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.New, k.Delete, k.Save},
		{k.Breathe, k.Refresh},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay
// and the command palette; each tab is a self-contained sub-view.
type Model struct {
	vaultPath string

	journalView  journalview.Model
	insightsView insightsview.Model
	supportView  supportview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(vaultPath string, loc *time.Location, journal journalview.Port, insights insightsPort) Model {
	return Model{
		vaultPath:    vaultPath,
		journalView:  journalview.New(journal, loc),
		insightsView: insightsview.New(insights, loc),
		supportView:  supportview.New(insights),
		activeTab:    tabJournal,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.journalView.Init(), m.insightsView.Init(), m.supportView.Init())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	// Results are routed to their owning view whichever tab is active.
	case journalview.EntriesLoadedMsg, journalview.DraftLoadedMsg, journalview.DraftSavedMsg:
		var cmd tea.Cmd
		m.journalView, cmd = m.journalView.Update(msg)
		sync := m.syncSelection()
		return m, tea.Batch(cmd, sync)

	case journalview.EntrySavedMsg:
		if msg.Err == nil {
			m.status = "saved entry " + shortID(msg.Entry.ID)
		}
		var cmd tea.Cmd
		m.journalView, cmd = m.journalView.Update(msg)
		return m, tea.Batch(cmd, m.refreshInsights())

	case journalview.EntryDeletedMsg:
		if msg.Err == nil {
			m.status = "deleted entry " + shortID(msg.ID)
		}
		var cmd tea.Cmd
		m.journalView, cmd = m.journalView.Update(msg)
		return m, tea.Batch(cmd, m.refreshInsights())

	case insightsview.OverviewLoadedMsg:
		var cmd tea.Cmd
		m.insightsView, cmd = m.insightsView.Update(msg)
		return m, cmd

	case supportview.AnxietyLoadedMsg, supportview.ClarityLoadedMsg, components.BreathTickMsg:
		var cmd tea.Cmd
		m.supportView, cmd = m.supportView.Update(msg)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.activeTab == tabJournal && m.journalView.Capturing() {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			cmd := m.syncSelection()
			return m, cmd
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			cmd := m.syncSelection()
			return m, cmd
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabJournal:
		m.journalView, cmd = m.journalView.Update(msg)
		sync := m.syncSelection()
		return m, tea.Batch(cmd, sync)
	case tabInsights:
		m.insightsView, cmd = m.insightsView.Update(msg)
	case tabSupport:
		m.supportView, cmd = m.supportView.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(1, m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar))

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabInsights:
		return m.insightsView.View()
	case tabSupport:
		return m.supportView.View()
	default:
		return m.journalView.View()
	}
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := "mdjournal  " + strings.Join(parts, theme.Muted.Render(" │ ")) + "  " + theme.Muted.Render(m.vaultPath)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).
		Render(left+strings.Repeat(" ", gap)+right)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	switch parts[0] {
	case "entry:new":
		m.activeTab = tabJournal
		cmd := m.journalView.StartCompose()
		return m, cmd
	case "entry:delete":
		m.activeTab = tabJournal
		m.journalView.ConfirmDelete()
	case "entry:reload":
		return m, m.journalView.Reload()
	case "draft:clear":
		cmd := m.journalView.DiscardDraft()
		return m, cmd
	case "prompt:next":
		m.activeTab = tabInsights
		m.insightsView.NextPrompt()
		m.status = "prompt: " + m.insightsView.CurrentPrompt()
	case "insights:refresh":
		m.activeTab = tabInsights
		return m, m.insightsView.Refresh()
	case "support:refresh":
		m.activeTab = tabSupport
		return m, m.supportView.Refresh()
	case "goto":
		if len(parts) < 2 {
			m.status = "usage: goto <journal|insights|support>"
			return m, nil
		}
		for i, label := range tabLabels {
			if strings.EqualFold(label, parts[1]) {
				m.activeTab = tabID(i)
				cmd := m.syncSelection()
				return m, cmd
			}
		}
		m.status = "unknown tab: " + parts[1]
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// syncSelection points the support tab at the journal's selected entry.
func (m *Model) syncSelection() tea.Cmd {
	id := ""
	if e, ok := m.journalView.SelectedEntry(); ok {
		id = e.ID
	}
	return m.supportView.SetEntry(id)
}

func (m Model) refreshInsights() tea.Cmd {
	return tea.Batch(m.insightsView.Refresh(), m.supportView.Refresh())
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.journalView, _ = m.journalView.Update(sz)
	m.insightsView, _ = m.insightsView.Update(sz)
	m.supportView, _ = m.supportView.Update(sz)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
