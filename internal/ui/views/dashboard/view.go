package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	archivedto "studylog/internal/modules/archive/dto"
	insightdto "studylog/internal/modules/insight/dto"
	"studylog/internal/ui/components"
	"studylog/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type InsightPort interface {
	Overview(ctx context.Context) (insightdto.OverviewOutput, error)
	Totals(ctx context.Context) (insightdto.TotalsOutput, error)
	DailyTrend(ctx context.Context) ([]insightdto.TrendPoint, error)
	ScoreTrend(ctx context.Context) ([]insightdto.ScorePoint, error)
}

type NotesPort interface {
	Notes(ctx context.Context) (archivedto.NotesOutput, error)
	Quote() string
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatsLoadedMsg struct {
	Overview insightdto.OverviewOutput
	Totals   insightdto.TotalsOutput
	Daily    []insightdto.TrendPoint
	Scores   []insightdto.ScorePoint
	Err      error
}

type NotesLoadedMsg struct {
	Notes archivedto.NotesOutput
	Quote string
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	insight InsightPort
	notes   NotesPort

	overview insightdto.OverviewOutput
	totals   insightdto.TotalsOutput
	daily    []insightdto.TrendPoint
	scores   []insightdto.ScorePoint
	motiv    archivedto.NotesOutput
	quote    string

	body    viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(insight InsightPort, notes NotesPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		insight: insight,
		notes:   notes,
		body:    vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.loadNotesCmd(), m.spinner.Tick)
}

// Reload fetches every derived metric in one shot. The app model calls
// this after any mutation that changes the underlying entry set.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		overview, err := m.insight.Overview(ctx)
		if err != nil {
			return StatsLoadedMsg{Err: err}
		}
		totals, err := m.insight.Totals(ctx)
		if err != nil {
			return StatsLoadedMsg{Err: err}
		}
		daily, err := m.insight.DailyTrend(ctx)
		if err != nil {
			return StatsLoadedMsg{Err: err}
		}
		scores, err := m.insight.ScoreTrend(ctx)
		if err != nil {
			return StatsLoadedMsg{Err: err}
		}
		return StatsLoadedMsg{Overview: overview, Totals: totals, Daily: daily, Scores: scores}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 2
		m.body.Height = m.height - 2
		m.body.SetContent(m.renderBody())

	case StatsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.body.SetContent(theme.Bad.Render("stats: " + msg.Err.Error()))
			return m, nil
		}
		m.overview = msg.Overview
		m.totals = msg.Totals
		m.daily = msg.Daily
		m.scores = msg.Scores
		m.body.SetContent(m.renderBody())

	case NotesLoadedMsg:
		if msg.Err == nil {
			m.motiv = msg.Notes
			m.quote = msg.Quote
			m.body.SetContent(m.renderBody())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var vCmd tea.Cmd
	m.body, vCmd = m.body.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Crunching numbers…")
	}
	return m.body.View()
}

// ─── rendering ───────────────────────────────────────────────────────────────

func (m Model) renderBody() string {
	o := m.overview
	var sb strings.Builder

	badges := lipgloss.JoinHorizontal(lipgloss.Top,
		components.StatBadge("days left", fmt.Sprintf("%d", o.DaysLeft)),
		" ",
		components.StatBadge("streak", fmt.Sprintf("%d", o.StreakDays)),
		" ",
		components.StatBadge("consistency", fmt.Sprintf("%d%%", o.ConsistencyPct)),
		" ",
		components.StatBadge("total", fmt.Sprintf("%dm", o.TotalMinutes)),
	)
	sb.WriteString(badges + "\n\n")

	sb.WriteString(theme.Title.Render("Countdown") + "  ")
	sb.WriteString(theme.Muted.Render(o.Today+" → "+o.TargetDate) + "\n")
	barW := m.width - 12
	if barW < 10 {
		barW = 10
	}
	sb.WriteString(components.ProgressBar(barW, o.ProgressPct))
	sb.WriteString(fmt.Sprintf(" %d%%\n", o.ProgressPct))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("day %d of %d, %d entries over %d active days", o.ElapsedDays, o.TotalSpanDays, o.EntryCount, o.ActiveDays)) + "\n\n")

	sb.WriteString(m.renderTotals("By subtest", m.totals.BySubtest))
	sb.WriteString(m.renderTotals("By material", m.totals.ByMaterial))

	if len(m.daily) > 0 {
		sb.WriteString(theme.Title.Render("Daily minutes") + "\n")
		start := 0
		if len(m.daily) > 14 {
			start = len(m.daily) - 14
		}
		for _, p := range m.daily[start:] {
			sb.WriteString(fmt.Sprintf("%s %s %d\n", theme.Muted.Render(p.Date), miniBar(p.Minutes), p.Minutes))
		}
		sb.WriteString("\n")
	}

	if len(m.scores) > 0 {
		sb.WriteString(theme.Title.Render("Score trend") + "\n")
		for _, p := range m.scores {
			sb.WriteString(fmt.Sprintf("%s  %.1f\n", theme.Muted.Render(p.Date), p.Score))
		}
		sb.WriteString("\n")
	}

	if strings.TrimSpace(m.motiv.Motivation) != "" {
		sb.WriteString(theme.Title.Render("Why I started") + "\n")
		sb.WriteString(m.motiv.Motivation + "\n\n")
	}
	if m.quote != "" {
		sb.WriteString(theme.Hot.Render("“"+m.quote+"”") + "\n")
	}

	return sb.String()
}

func (m Model) renderTotals(title string, totals []insightdto.CategoryTotal) string {
	if len(totals) == 0 {
		return ""
	}
	nameW := 0
	for _, t := range totals {
		if len(t.Name) > nameW {
			nameW = len(t.Name)
		}
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + "\n")
	for _, t := range totals {
		sb.WriteString(fmt.Sprintf("%-*s %s %d\n", nameW, t.Name, miniBar(t.Minutes), t.Minutes))
	}
	sb.WriteString("\n")
	return sb.String()
}

// miniBar scales minutes down to a short bar so long sessions do not
// wrap the line.
func miniBar(minutes int) string {
	n := minutes / 15
	if n > 24 {
		n = 24
	}
	if n < 1 && minutes > 0 {
		n = 1
	}
	return lipgloss.NewStyle().Foreground(theme.Green).Render(strings.Repeat("▇", n))
}

func (m Model) loadNotesCmd() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.notes.Notes(context.Background())
		return NotesLoadedMsg{Notes: notes, Quote: m.notes.Quote(), Err: err}
	}
}
