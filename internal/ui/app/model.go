package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	archivedto "studylog/internal/modules/archive/dto"
	insightdto "studylog/internal/modules/insight/dto"
	journaldto "studylog/internal/modules/journal/dto"
	plannerdto "studylog/internal/modules/planner/dto"
	"studylog/internal/ui/components"
	"studylog/internal/ui/theme"
	dashboardview "studylog/internal/ui/views/dashboard"
	journalview "studylog/internal/ui/views/journal"
	planview "studylog/internal/ui/views/plan"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type journalPort interface {
	List(ctx context.Context, filter journaldto.ListInput) ([]journaldto.Entry, error)
	Remove(ctx context.Context, id string) (journaldto.RemoveOutput, error)
	Reindex(ctx context.Context) error
}

type insightPort interface {
	Overview(ctx context.Context) (insightdto.OverviewOutput, error)
	Totals(ctx context.Context) (insightdto.TotalsOutput, error)
	DailyTrend(ctx context.Context) ([]insightdto.TrendPoint, error)
	ScoreTrend(ctx context.Context) ([]insightdto.ScorePoint, error)
}

type plannerPort interface {
	Get(ctx context.Context) ([]plannerdto.Slot, error)
	Generate(ctx context.Context) ([]plannerdto.Slot, error)
	CommitToday(ctx context.Context, dayIndex int) (plannerdto.CommitOutput, error)
}

type archivePort interface {
	Notes(ctx context.Context) (archivedto.NotesOutput, error)
	Quote() string
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabJournal
	tabPlan
	tabCount
)

var tabLabels = [tabCount]string{
	"Dashboard", "Journal", "Plan",
}

// ─── async messages ───────────────────────────────────────────────────────────

type entryDeletedMsg struct {
	id    string
	found bool
	err   error
}

type reindexDoneMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Delete  key.Binding
	Commit  key.Binding
	Gen     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete entry")),
		Commit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log plan slot")),
		Gen:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "regenerate plan")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Delete},
		{k.Gen, k.Commit},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global
// help overlay, and the command palette. All business logic is delegated
// to port interfaces; all rendering is delegated to sub-views.
type Model struct {
	dataPath string

	// ports used at this orchestration level only
	journal journalPort
	archive archivePort

	// sub-views (one per tab)
	dashView    dashboardview.Model
	journalView journalview.Model
	planView    planview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	dataPath string,
	journal journalPort,
	insight insightPort,
	planner plannerPort,
	archive archivePort,
) Model {
	return Model{
		dataPath:    dataPath,
		journal:     journal,
		archive:     archive,
		dashView:    dashboardview.New(insightPortBridge{p: insight}, archivePortBridge{p: archive}),
		journalView: journalview.New(journalPortBridge{p: journal}),
		planView:    planview.New(plannerPortBridge{p: planner}),
		activeTab:   tabDashboard,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashView.Init(),
		m.journalView.Init(),
		m.planView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
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

	// Loaded messages route to their owning view regardless of which tab
	// is active, otherwise a background refresh would be dropped.
	case dashboardview.StatsLoadedMsg, dashboardview.NotesLoadedMsg:
		var cmd tea.Cmd
		m.dashView, cmd = m.dashView.Update(msg)
		return m, cmd

	case journalview.EntriesLoadedMsg:
		var cmd tea.Cmd
		m.journalView, cmd = m.journalView.Update(msg)
		return m, cmd

	case planview.SlotsLoadedMsg:
		var cmd tea.Cmd
		m.planView, cmd = m.planView.Update(msg)
		return m, cmd

	// CommittedMsg bubbles up so the journal and dashboard can pick up
	// the entry the planner just logged.
	case planview.CommittedMsg:
		if msg.Err != nil {
			m.status = "plan commit: " + msg.Err.Error()
		} else {
			m.status = "plan slot logged for " + msg.Out.Date
		}
		var cmd tea.Cmd
		m.planView, cmd = m.planView.Update(msg)
		return m, tea.Batch(cmd, m.journalView.Refresh(), m.dashView.Reload())

	case entryDeletedMsg:
		switch {
		case msg.err != nil:
			m.status = "delete failed: " + msg.err.Error()
		case !msg.found:
			m.status = "no entry with id " + msg.id
		default:
			m.status = "deleted " + msg.id
			return m, tea.Batch(m.journalView.Refresh(), m.dashView.Reload())
		}

	case reindexDoneMsg:
		if msg.err != nil {
			m.status = "reindex failed: " + msg.err.Error()
		} else {
			m.status = "reindex completed"
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "x":
			if m.activeTab == tabJournal {
				if id, ok := m.journalView.SelectedEntryID(); ok {
					cmds = append(cmds, m.deleteEntryCmd(id))
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case tabJournal:
		m.journalView, tabCmd = m.journalView.Update(msg)
	case tabPlan:
		m.planView, tabCmd = m.planView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabJournal:
		return m.journalView.View()
	case tabPlan:
		return m.planView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "studylog  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "entry:delete":
		id, ok := m.journalView.SelectedEntryID()
		if len(parts) >= 2 {
			id, ok = parts[1], true
		}
		if !ok {
			m.status = "no entry selected"
			return m, nil
		}
		m.activeTab = tabJournal
		return m, m.deleteEntryCmd(id)

	case "plan:generate":
		m.activeTab = tabPlan
		return m, m.planView.GenerateCmd()

	case "plan:commit":
		if len(parts) < 2 {
			m.status = "usage: plan:commit <1-7>"
			return m, nil
		}
		day, err := strconv.Atoi(parts[1])
		if err != nil || day < 1 || day > 7 {
			m.status = "day must be 1-7"
			return m, nil
		}
		m.activeTab = tabPlan
		return m, m.planView.CommitCmd(day - 1)

	case "stats:refresh":
		m.activeTab = tabDashboard
		return m, m.dashView.Reload()

	case "quote":
		m.status = m.archive.Quote()
		return m, nil

	case "reindex":
		return m, m.reindexCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabJournal:
		return m.journalView.Filtering()
	case tabPlan:
		return m.planView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.journalView, _ = m.journalView.Update(sz)
	m.planView, _ = m.planView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) deleteEntryCmd(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.journal.Remove(context.Background(), id)
		return entryDeletedMsg{id: id, found: out.Found, err: err}
	}
}

func (m Model) reindexCmd() tea.Cmd {
	return func() tea.Msg {
		return reindexDoneMsg{err: m.journal.Reindex(context.Background())}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type journalPortBridge struct{ p journalPort }

func (b journalPortBridge) List(ctx context.Context, filter journaldto.ListInput) ([]journaldto.Entry, error) {
	return b.p.List(ctx, filter)
}

type insightPortBridge struct{ p insightPort }

func (b insightPortBridge) Overview(ctx context.Context) (insightdto.OverviewOutput, error) {
	return b.p.Overview(ctx)
}
func (b insightPortBridge) Totals(ctx context.Context) (insightdto.TotalsOutput, error) {
	return b.p.Totals(ctx)
}
func (b insightPortBridge) DailyTrend(ctx context.Context) ([]insightdto.TrendPoint, error) {
	return b.p.DailyTrend(ctx)
}
func (b insightPortBridge) ScoreTrend(ctx context.Context) ([]insightdto.ScorePoint, error) {
	return b.p.ScoreTrend(ctx)
}

type plannerPortBridge struct{ p plannerPort }

func (b plannerPortBridge) Get(ctx context.Context) ([]plannerdto.Slot, error) {
	return b.p.Get(ctx)
}
func (b plannerPortBridge) Generate(ctx context.Context) ([]plannerdto.Slot, error) {
	return b.p.Generate(ctx)
}
func (b plannerPortBridge) CommitToday(ctx context.Context, dayIndex int) (plannerdto.CommitOutput, error) {
	return b.p.CommitToday(ctx, dayIndex)
}

type archivePortBridge struct{ p archivePort }

func (b archivePortBridge) Notes(ctx context.Context) (archivedto.NotesOutput, error) {
	return b.p.Notes(ctx)
}
func (b archivePortBridge) Quote() string {
	return b.p.Quote()
}
