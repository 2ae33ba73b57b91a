package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/timer"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type timerKeyMap struct {
	Toggle    key.Binding
	Block     key.Binding
	Objective key.Binding
	Reset     key.Binding
	Save      key.Binding
	Quit      key.Binding
}

func newTimerKeyMap() timerKeyMap {
	return timerKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Block: key.NewBinding(
			key.WithKeys("b", "tab"),
			key.WithHelp("b", "block"),
		),
		Objective: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "objective"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "discard"),
		),
	}
}

type timerTickMsg time.Time

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// timerModel is the bubbletea model for the focus timer. Objective index
// -1 means no objective is linked.
type timerModel struct {
	clock      timer.Timer
	keys       timerKeyMap
	objectives []*domain.Objective
	blockIdx   int
	objIdx     int
	width      int
	saving     bool
	quitting   bool
}

func newTimerModel(objectives []*domain.Objective) timerModel {
	return timerModel{
		keys:       newTimerKeyMap(),
		objectives: objectives,
		objIdx:     -1,
	}
}

func (m timerModel) Init() tea.Cmd {
	return timerTick()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case timerTickMsg:
		m.clock.Tick()
		return m, timerTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if m.clock.Running() {
				m.clock.Pause()
			} else {
				m.clock.Start()
			}
		case key.Matches(msg, m.keys.Block):
			m.blockIdx = (m.blockIdx + 1) % len(domain.AllBlocks)
		case key.Matches(msg, m.keys.Objective):
			if len(m.objectives) > 0 {
				m.objIdx++
				if m.objIdx >= len(m.objectives) {
					m.objIdx = -1
				}
			}
		case key.Matches(msg, m.keys.Reset):
			m.clock.Reset()
		case key.Matches(msg, m.keys.Save):
			m.saving = true
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

func (m timerModel) BlockType() domain.BlockType {
	return domain.AllBlocks[m.blockIdx]
}

func (m timerModel) ObjectiveID() *string {
	if m.objIdx < 0 || m.objIdx >= len(m.objectives) {
		return nil
	}
	return &m.objectives[m.objIdx].ID
}

var (
	clockStyle = lipgloss.NewStyle().
			Foreground(formatter.ColorFg).
			Bold(true).
			Padding(1, 4)
	pausedClockStyle = clockStyle.Foreground(formatter.ColorDim)
)

func (m timerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	style := pausedClockStyle
	state := formatter.Dim("paused")
	if m.clock.Running() {
		style = clockStyle
		state = formatter.StyleGreen.Render("running")
	}

	b.WriteString(style.Render(timer.FormatClock(m.clock.Seconds())))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.BlockBadge(m.BlockType()), state))

	objective := formatter.Dim("no objective")
	if id := m.ObjectiveID(); id != nil {
		objective = m.objectives[m.objIdx].Title
	}
	b.WriteString(fmt.Sprintf("  %s\n", objective))

	if _, ok := m.clock.CommitMinutes(); !ok && m.clock.Seconds() > 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("\n  under %ds, saving would discard\n", timer.MinCommitSeconds)))
	}

	help := []string{}
	for _, k := range []key.Binding{m.keys.Toggle, m.keys.Block, m.keys.Objective, m.keys.Reset, m.keys.Save, m.keys.Quit} {
		help = append(help, fmt.Sprintf("%s %s",
			formatter.StyleHeader.Render(k.Help().Key), formatter.Dim(k.Help().Desc)))
	}
	b.WriteString("\n  " + strings.Join(help, formatter.Dim("  ·  ")) + "\n")

	return b.String()
}
