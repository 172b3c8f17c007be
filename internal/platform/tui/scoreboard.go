package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/registry"
	"github.com/vovakirdan/brickfall/internal/storage"
)

const (
	minWidthForSidebar = 90  // below this the variants become tabs
	sidebarWidth       = 22
	maxScores          = 100 // rows loaded per variant
	maxDateWidth       = 20
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next variant")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev variant")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// scoreboardStyles are bound to one renderer so SSH clients get colors for
// their own terminal.
type scoreboardStyles struct {
	title  lipgloss.Style
	stats  lipgloss.Style
	help   lipgloss.Style
	panel  lipgloss.Style
	active lipgloss.Style
	tab    lipgloss.Style
	tabOn  lipgloss.Style
	empty  lipgloss.Style
	table  table.Styles
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	accent := lipgloss.Color("229")
	border := lipgloss.Color("240")
	muted := lipgloss.Color("241")

	ts := table.DefaultStyles()
	ts.Header = r.NewStyle().Padding(0, 1).Bold(true).
		BorderStyle(lipgloss.NormalBorder()).BorderForeground(border).BorderBottom(true)
	ts.Cell = r.NewStyle().Padding(0, 1)
	ts.Selected = r.NewStyle().Foreground(accent).Background(lipgloss.Color("57"))

	return scoreboardStyles{
		title:  r.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		stats:  r.NewStyle().Foreground(lipgloss.Color("245")),
		help:   r.NewStyle().Foreground(muted),
		panel:  r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		active: r.NewStyle().Bold(true).Foreground(accent),
		tab:    r.NewStyle().Foreground(muted).Padding(0, 1),
		tabOn:  r.NewStyle().Bold(true).Foreground(accent).Background(lipgloss.Color("57")).Padding(0, 1),
		empty:  r.NewStyle().Foreground(muted).Italic(true).Padding(2, 4),
		table:  ts,
	}
}

// ScoreboardModel lists the best rounds per variant with a summary line.
type ScoreboardModel struct {
	games    []registry.GameInfo
	cursor   int
	store    *storage.Store
	tickRate int

	scores []storage.ScoreEntry
	stats  *storage.GameStats

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	styles scoreboardStyles

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard sized to width x height and loads
// the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:    registry.List(),
		store:    store,
		tickRate: core.DefaultConfig().TickRate,
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		styles:   newScoreboardStyles(nil),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

// WithRenderer rebinds the styles to r.
func (m ScoreboardModel) WithRenderer(r *lipgloss.Renderer) ScoreboardModel {
	m.styles = newScoreboardStyles(r)
	m.table.SetStyles(m.styles.table)
	return m
}

// WithTickRate sets the rate used to turn stored ticks into durations.
func (m ScoreboardModel) WithTickRate(rate int) ScoreboardModel {
	if rate > 0 {
		m.tickRate = rate
		m.refreshRows()
	}
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// newTable builds an empty table that fits the current window. The date
// column takes whatever width is left over.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 5},
		{Title: "Result", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}

	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	for _, c := range columns[:len(columns)-1] {
		avail -= c.Width + 2 // cell padding
	}
	date := &columns[len(columns)-1]
	date.Width = core.Clamp(avail-2, date.Width, maxDateWidth)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	t.SetStyles(m.styles.table)
	return t
}

// reload fetches rows and aggregates for the selected variant. Storage
// errors leave the board empty.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.cursor].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.refreshRows()
}

func (m *ScoreboardModel) refreshRows() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			string(s.Outcome),
			formatTicks(s.Ticks, m.tickRate),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatTicks renders a tick count as m:ss.
func formatTicks(ticks uint64, tickRate int) string {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	secs := ticks / uint64(tickRate) //#nosec G115 -- tick rate is positive
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// statsLine summarizes the selected variant, or returns "" before the
// first recorded round.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Rounds: %d  Cleared: %d  Best level: %d  Avg score: %.1f",
		m.stats.GamesCount, m.stats.Wins, m.stats.BestLevel, m.stats.AvgScore)
}

// step moves the variant cursor by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	n := len(m.games)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.refreshRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.cursor].Title
	}

	var b strings.Builder
	b.WriteString(centerStyled(m.styles.title.Render(title), m.width))
	b.WriteString("\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(centerStyled(m.styles.stats.Render(line), m.width))
	}
	b.WriteString("\n")

	board := m.styles.panel.Render(m.boardContent())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", board))
	} else {
		b.WriteString(centerStyled(m.tabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, board))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists every variant with the selected one highlighted.
func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Variants\n")
	sb.WriteString(strings.Repeat("─", sidebarWidth-4))
	for i, g := range m.games {
		sb.WriteString("\n")
		name := truncate(g.Title, sidebarWidth-6)
		if i == m.cursor {
			sb.WriteString(m.styles.active.Render("> " + name))
		} else {
			sb.WriteString("  " + name)
		}
	}
	return m.styles.panel.Width(sidebarWidth).Render(sb.String())
}

// tabs renders the variants on one line, falling back to "< current >" when
// they do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		style := m.styles.tab
		if i == m.cursor {
			style = m.styles.tabOn
		}
		parts[i] = style.Render(truncate(g.Title, 10))
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		return "< " + m.games[m.cursor].Title + " >"
	}
	return line
}

func (m ScoreboardModel) boardContent() string {
	if len(m.scores) == 0 {
		return m.styles.empty.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// truncate shortens s to n runes, marking the cut with a period.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program. It reports
// whether the user went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewScoreboardModel(store, cfg.ScreenW, cfg.ScreenH).WithTickRate(cfg.TickRate)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
