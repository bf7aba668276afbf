package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mdjournal/internal/ui/theme"
)

type BreathPhase int

const (
	BreathIn BreathPhase = iota
	BreathHold
	BreathOut
)

const (
	breathInSeconds   = 4
	breathHoldSeconds = 4
	breathOutSeconds  = 6
	BreathCycles      = 4
)

// BreathTickMsg advances the exercise by one second. Gen discards ticks
// scheduled before the last pause.
type BreathTickMsg struct{ Gen int }

// Breathing is a paced in-hold-out exercise driven by one-second ticks.
type Breathing struct {
	Phase  BreathPhase
	Count  int
	Cycle  int
	Active bool
	gen    int
}

func NewBreathing() Breathing {
	return Breathing{Phase: BreathIn, Count: breathInSeconds}
}

// Done reports whether every cycle has been completed.
func (b Breathing) Done() bool { return b.Cycle >= BreathCycles }

// Toggle starts, pauses or restarts the exercise.
func (b *Breathing) Toggle() tea.Cmd {
	b.gen++
	if b.Done() {
		*b = Breathing{Phase: BreathIn, Count: breathInSeconds, gen: b.gen}
	}
	b.Active = !b.Active
	if !b.Active {
		return nil
	}
	return b.tick()
}

func (b Breathing) Update(msg tea.Msg) (Breathing, tea.Cmd) {
	tick, ok := msg.(BreathTickMsg)
	if !ok || !b.Active || tick.Gen != b.gen {
		return b, nil
	}
	b.Step()
	if b.Done() {
		b.Active = false
		return b, nil
	}
	return b, b.tick()
}

// Step advances one second.
func (b *Breathing) Step() {
	if b.Count > 1 {
		b.Count--
		return
	}
	switch b.Phase {
	case BreathIn:
		b.Phase, b.Count = BreathHold, breathHoldSeconds
	case BreathHold:
		b.Phase, b.Count = BreathOut, breathOutSeconds
	default:
		b.Phase, b.Count = BreathIn, breathInSeconds
		b.Cycle++
	}
}

func (b Breathing) Instruction() string {
	switch b.Phase {
	case BreathHold:
		return "Hold your breath..."
	case BreathOut:
		return "Breathe out gently..."
	default:
		return "Breathe in slowly..."
	}
}

func (b Breathing) View() string {
	var color lipgloss.Color
	var orb string
	switch b.Phase {
	case BreathHold:
		color, orb = theme.Mauve, "(( ● ))"
	case BreathOut:
		color, orb = theme.Green, "  ( · )  "
	default:
		color, orb = theme.Sapphire, "(( ● ))"
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Breathing exercise") + "\n\n")
	if b.Done() {
		sb.WriteString("Well done. Four calm cycles complete.\n")
		sb.WriteString(theme.Muted.Render("b: start again"))
		return sb.String()
	}
	sb.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(orb) + "\n")
	sb.WriteString(b.Instruction() + "\n")
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("%d", b.Count)) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("Cycle %d of %d", b.Cycle+1, BreathCycles)) + "\n")
	switch {
	case b.Active:
		sb.WriteString(theme.Muted.Render("b: pause"))
	case b.Cycle == 0 && b.Phase == BreathIn && b.Count == breathInSeconds:
		sb.WriteString(theme.Muted.Render("b: start"))
	default:
		sb.WriteString(theme.Muted.Render("b: continue"))
	}
	return sb.String()
}

func (b Breathing) tick() tea.Cmd {
	gen := b.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return BreathTickMsg{Gen: gen} })
}
