package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	journaldto "mdjournal/internal/modules/journal/dto"
	apperrors "mdjournal/internal/platform/errors"
	"mdjournal/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	ListEntries(ctx context.Context, limit int) ([]journaldto.EntryOutput, error)
	AddEntry(ctx context.Context, content, mood string) (journaldto.EntryOutput, error)
	DeleteEntry(ctx context.Context, id string) error
	SaveDraft(ctx context.Context, content, mood string) error
	LoadDraft(ctx context.Context) (journaldto.DraftOutput, error)
	ClearDraft(ctx context.Context) error
	Moods() []journaldto.MoodOption
}

// ─── messages ────────────────────────────────────────────────────────────────

type EntriesLoadedMsg struct {
	Entries []journaldto.EntryOutput
	Err     error
}

// EntrySavedMsg and EntryDeletedMsg tell the app the journal changed.
type EntrySavedMsg struct {
	Entry journaldto.EntryOutput
	Err   error
}

type EntryDeletedMsg struct {
	ID  string
	Err error
}

type DraftLoadedMsg struct {
	Draft journaldto.DraftOutput
	Err   error
}

type DraftSavedMsg struct{ Err error }

// ─── list item ───────────────────────────────────────────────────────────────

type entryItem struct {
	entry journaldto.EntryOutput
	loc   *time.Location
}

func (i entryItem) Title() string {
	title := i.entry.CreatedAt.In(i.loc).Format("Mon Jan 2 15:04")
	if i.entry.MoodEmoji != "" {
		title += "  " + i.entry.MoodEmoji
	}
	return title
}

func (i entryItem) Description() string { return firstLine(i.entry.Content) }
func (i entryItem) FilterValue() string { return i.entry.Content }

// ─── model ───────────────────────────────────────────────────────────────────

type mode int

const (
	modeBrowse mode = iota
	modeCompose
	modeConfirmDelete
)

type Model struct {
	port     Port
	loc      *time.Location
	list     list.Model
	preview  viewport.Model
	editor   textarea.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	moods    []journaldto.MoodOption
	mood     int // index into moods, -1 for none
	mode     mode
	loading  bool
	notice   string
	width    int
	height   int
}

func New(port Port, loc *time.Location) Model {
	if loc == nil {
		loc = time.Local
	}
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Journal"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text)

	ta := textarea.New()
	ta.Placeholder = "What's on your mind?"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		loc:     loc,
		list:    l,
		preview: vp,
		editor:  ta,
		spinner: sp,
		moods:   port.Moods(),
		mood:    -1,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.loadDraftCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.preview.SetContent(m.renderDetail())

	case EntriesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Journal: " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Journal"
		items := make([]list.Item, len(msg.Entries))
		for i, e := range msg.Entries {
			items[i] = entryItem{entry: e, loc: m.loc}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.preview.SetContent(m.renderDetail())
		return m, tea.Batch(cmds...)

	case EntrySavedMsg:
		if msg.Err != nil {
			m.notice = "not saved: " + msg.Err.Error()
			return m, nil
		}
		m.mode = modeBrowse
		m.editor.Reset()
		m.editor.Blur()
		m.mood = -1
		m.notice = "entry saved"
		return m, tea.Batch(m.Reload(), m.clearDraftCmd())

	case EntryDeletedMsg:
		m.mode = modeBrowse
		if msg.Err != nil {
			m.notice = "delete failed: " + msg.Err.Error()
			return m, nil
		}
		m.notice = "entry deleted"
		return m, m.Reload()

	case DraftLoadedMsg:
		if msg.Err == nil && strings.TrimSpace(msg.Draft.Content) != "" {
			m.editor.SetValue(msg.Draft.Content)
			m.mood = m.moodIndex(msg.Draft.Mood)
			m.notice = "draft restored: press n to continue writing"
		} else if msg.Err != nil && !errors.Is(msg.Err, apperrors.ErrNoDraft) {
			m.notice = "draft: " + msg.Err.Error()
		}
		return m, nil

	case DraftSavedMsg:
		if msg.Err != nil {
			m.notice = "draft not saved: " + msg.Err.Error()
		} else if strings.TrimSpace(m.editor.Value()) != "" {
			m.notice = "draft kept"
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case modeCompose:
			return m.updateCompose(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		}
		if !m.Filtering() {
			switch msg.String() {
			case "n":
				cmd := m.StartCompose()
				return m, cmd
			case "d":
				m.ConfirmDelete()
				return m, nil
			case "r":
				return m, m.Reload()
			}
		}
	}

	if m.loading || m.mode != modeBrowse {
		return m, tea.Batch(cmds...)
	}
	prevIdx := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		m.preview.SetContent(m.renderDetail())
		m.preview.GotoTop()
	}
	var vCmd tea.Cmd
	m.preview, vCmd = m.preview.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateCompose(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.editor.Blur()
		return m, m.saveDraftCmd()
	case "ctrl+s":
		content := strings.TrimSpace(m.editor.Value())
		if content == "" {
			m.notice = "write something first"
			return m, nil
		}
		return m, m.addCmd(content, m.moodValue())
	case "ctrl+n":
		m.mood = m.cycleMood(1)
		return m, nil
	case "ctrl+p":
		m.mood = m.cycleMood(-1)
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.mode = modeBrowse
	if msg.String() != "y" {
		m.notice = "delete cancelled"
		return m, nil
	}
	entry, ok := m.SelectedEntry()
	if !ok {
		return m, nil
	}
	return m, m.deleteCmd(entry.ID)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading journal…")
	}
	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())

	var right string
	switch m.mode {
	case modeCompose:
		right = m.renderCompose()
	case modeConfirmDelete:
		right = m.preview.View() + "\n" + theme.Hot.Render("Delete this entry? y to confirm, any other key to keep it")
	default:
		right = m.preview.View()
		if m.notice != "" {
			right += "\n" + theme.Muted.Render(m.notice)
		}
	}
	style := theme.Pane
	if m.mode == modeCompose {
		style = theme.PaneActive
	}
	detailPane := style.Width(detailW - 2).Height(m.height - 2).Render(right)
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedEntry returns the highlighted entry, if any.
func (m Model) SelectedEntry() (journaldto.EntryOutput, bool) {
	if item, ok := m.list.SelectedItem().(entryItem); ok {
		return item.entry, true
	}
	return journaldto.EntryOutput{}, false
}

// Filtering reports whether the list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Capturing reports whether the view wants every key, so global bindings
// must yield.
func (m Model) Capturing() bool {
	return m.mode != modeBrowse || m.Filtering()
}

// StartCompose opens the editor, keeping any restored draft.
func (m *Model) StartCompose() tea.Cmd {
	m.mode = modeCompose
	m.notice = ""
	return m.editor.Focus()
}

// ConfirmDelete asks before deleting the selection.
func (m *Model) ConfirmDelete() {
	if _, ok := m.SelectedEntry(); ok {
		m.mode = modeConfirmDelete
	}
}

// DiscardDraft empties the editor and removes the stored draft.
func (m *Model) DiscardDraft() tea.Cmd {
	m.editor.Reset()
	m.mood = -1
	m.notice = "draft discarded"
	return m.clearDraftCmd()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.port.ListEntries(context.Background(), 0)
		return EntriesLoadedMsg{Entries: entries, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
	m.editor.SetWidth(detailW - 4)
	m.editor.SetHeight(max(3, m.height-8))
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(20, detailW-6)),
	)
	if err == nil {
		m.renderer = r
	}
}

func (m Model) renderDetail() string {
	e, ok := m.SelectedEntry()
	if !ok {
		return theme.Muted.Render("No entries yet. Press n to write one.")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(e.CreatedAt.In(m.loc).Format("Monday, January 2 2006 · 15:04")) + "\n")
	if e.MoodLabel != "" {
		sb.WriteString(theme.Muted.Render("mood: ") + e.MoodEmoji + " " + e.MoodLabel + "\n")
	}
	if len(e.Tags) > 0 {
		sb.WriteString(theme.Muted.Render("tags: ") + strings.Join(e.Tags, ", ") + "\n")
	}
	sb.WriteString(m.renderMarkdown(e.Content))
	sb.WriteString("\n" + theme.Muted.Render("n: new  d: delete  /: filter  r: reload"))
	return sb.String()
}

func (m Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return "\n" + content + "\n"
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return "\n" + content + "\n"
	}
	return out
}

func (m Model) renderCompose() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("New entry") + "\n\n")
	sb.WriteString(m.editor.View() + "\n\n")
	sb.WriteString(theme.Muted.Render("mood: ") + m.renderMoods() + "\n")
	if m.notice != "" {
		sb.WriteString(theme.Hot.Render(m.notice) + "\n")
	}
	sb.WriteString(theme.Muted.Render("ctrl+s: save  ctrl+n/ctrl+p: mood  esc: keep as draft"))
	return sb.String()
}

func (m Model) renderMoods() string {
	parts := make([]string, 0, len(m.moods)+1)
	none := "none"
	if m.mood < 0 {
		none = theme.Hot.Render("[none]")
	}
	parts = append(parts, none)
	for i, opt := range m.moods {
		label := opt.Emoji + " " + opt.Label
		if i == m.mood {
			label = theme.Hot.Render("[" + label + "]")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

// cycleMood walks none → first … last → none.
func (m Model) cycleMood(step int) int {
	n := len(m.moods) + 1
	return ((m.mood+1+step)%n+n)%n - 1
}

func (m Model) moodIndex(value string) int {
	for i, opt := range m.moods {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

func (m Model) moodValue() string {
	if m.mood < 0 || m.mood >= len(m.moods) {
		return ""
	}
	return m.moods[m.mood].Value
}

func (m Model) addCmd(content, mood string) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.port.AddEntry(context.Background(), content, mood)
		return EntrySavedMsg{Entry: entry, Err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return EntryDeletedMsg{ID: id, Err: m.port.DeleteEntry(context.Background(), id)}
	}
}

func (m Model) loadDraftCmd() tea.Cmd {
	return func() tea.Msg {
		draft, err := m.port.LoadDraft(context.Background())
		return DraftLoadedMsg{Draft: draft, Err: err}
	}
}

func (m Model) saveDraftCmd() tea.Cmd {
	content, mood := m.editor.Value(), m.moodValue()
	return func() tea.Msg {
		if strings.TrimSpace(content) == "" {
			return DraftSavedMsg{Err: m.port.ClearDraft(context.Background())}
		}
		return DraftSavedMsg{Err: m.port.SaveDraft(context.Background(), content, mood)}
	}
}

func (m Model) clearDraftCmd() tea.Cmd {
	return func() tea.Msg {
		return DraftSavedMsg{Err: m.port.ClearDraft(context.Background())}
	}
}

func firstLine(content string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	if r := []rune(line); len(r) > 48 {
		return string(r[:47]) + "…"
	}
	return line
}
