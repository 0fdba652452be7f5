package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plannerdto "studylog/internal/modules/planner/dto"
	"studylog/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PlannerPort interface {
	Get(ctx context.Context) ([]plannerdto.Slot, error)
	Generate(ctx context.Context) ([]plannerdto.Slot, error)
	CommitToday(ctx context.Context, dayIndex int) (plannerdto.CommitOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SlotsLoadedMsg struct {
	Slots []plannerdto.Slot
	Err   error
}

// CommittedMsg bubbles to the app model so the journal and dashboard
// can refresh after the new entry lands.
type CommittedMsg struct {
	Out plannerdto.CommitOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     PlannerPort
	slots    []plannerdto.Slot
	selected int
	spinner  spinner.Model
	loading  bool
	status   string
	width    int
	height   int
}

func New(port PlannerPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// GenerateCmd replaces the stored plan with a freshly rotated one.
func (m Model) GenerateCmd() tea.Cmd {
	return func() tea.Msg {
		slots, err := m.port.Generate(context.Background())
		return SlotsLoadedMsg{Slots: slots, Err: err}
	}
}

// CommitCmd logs today's entry from the plan slot at dayIndex.
func (m Model) CommitCmd(dayIndex int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.CommitToday(context.Background(), dayIndex)
		return CommittedMsg{Out: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SlotsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.slots = msg.Slots
		if m.selected >= len(m.slots) {
			m.selected = 0
		}
		m.status = ""

	case CommittedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("logged entry %s for %s", msg.Out.EntryID, msg.Out.Date)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.slots)-1 {
				m.selected++
			}
		case "g":
			return m, m.GenerateCmd()
		case "enter":
			if len(m.slots) > 0 {
				return m, m.CommitCmd(m.slots[m.selected].DayIndex)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading plan…")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Weekly Plan") + "\n\n")

	if len(m.slots) == 0 {
		sb.WriteString(theme.Muted.Render("No plan yet. Press g to generate one.") + "\n")
	}
	for i, s := range m.slots {
		line := fmt.Sprintf("day %d  %-32s %s", s.DayIndex+1, s.Subtest, s.MaterialType)
		if i == m.selected {
			sb.WriteString(theme.Hot.Render("> "+line) + "\n")
			sb.WriteString(theme.Muted.Render("    "+s.Suggestion) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}

	sb.WriteString("\n" + theme.Muted.Render("g: regenerate  enter: log selected slot today"))
	if m.status != "" {
		sb.WriteString("\n" + theme.Good.Render(m.status))
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(1, 2).
		Render(sb.String())
}

// Filtering exists for interface parity with the other tabs; the plan
// view has no free-text input.
func (m Model) Filtering() bool { return false }

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		slots, err := m.port.Get(context.Background())
		return SlotsLoadedMsg{Slots: slots, Err: err}
	}
}
