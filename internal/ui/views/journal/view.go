package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "studylog/internal/modules/journal/dto"
	"studylog/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type JournalPort interface {
	List(ctx context.Context, filter journaldto.ListInput) ([]journaldto.Entry, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type EntriesLoadedMsg struct {
	Entries []journaldto.Entry
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type entryItem struct {
	entry journaldto.Entry
}

func (i entryItem) Title() string {
	return i.entry.Date + "  " + i.entry.Subtest
}

func (i entryItem) Description() string {
	desc := fmt.Sprintf("%s  %dmin", i.entry.MaterialType, i.entry.DurationMinutes)
	if i.entry.Topic != "" {
		desc += "  " + i.entry.Topic
	}
	return desc
}

func (i entryItem) FilterValue() string {
	return i.entry.Subtest + " " + i.entry.MaterialType + " " + i.entry.Topic
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    JournalPort
	list    list.Model
	preview viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port JournalPort) Model {
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
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.spinner.Tick)
}

// Refresh reloads the entry list, newest first.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.port.List(context.Background(), journaldto.ListInput{})
		return EntriesLoadedMsg{Entries: entries, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case EntriesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Journal — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Entries))
		for i, e := range msg.Entries {
			items[i] = entryItem{entry: e}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.preview.SetContent(m.renderDetail())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		m.preview.SetContent(m.renderDetail())

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading journal…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedEntryID returns the current selection's entry ID, if any.
func (m Model) SelectedEntryID() (string, bool) {
	if item, ok := m.list.SelectedItem().(entryItem); ok {
		return item.entry.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return theme.Muted.Render("Select an entry to see details")
	}
	e := item.entry
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(e.Date+" — "+e.Subtest) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:       ") + e.ID + "\n")
	sb.WriteString(theme.Muted.Render("material: ") + e.MaterialType + "\n")
	if e.Topic != "" {
		sb.WriteString(theme.Muted.Render("topic:    ") + e.Topic + "\n")
	}
	sb.WriteString(fmt.Sprintf("%s%d min\n", theme.Muted.Render("duration: "), e.DurationMinutes))
	if e.Score != nil {
		sb.WriteString(fmt.Sprintf("%s%.1f\n", theme.Muted.Render("score:    "), *e.Score))
	}
	if e.ResourceURL != "" {
		sb.WriteString(theme.Muted.Render("url:      ") + e.ResourceURL + "\n")
	}
	if e.Notes != "" {
		sb.WriteString("\n" + e.Notes + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("x: delete entry  /: filter"))
	return sb.String()
}
