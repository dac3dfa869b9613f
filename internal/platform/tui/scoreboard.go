package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

const maxRounds = 100 // Max rounds to load

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Order key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Order, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Order},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Order: key.NewBinding(
			key.WithKeys("o", "left", "right"),
			key.WithHelp("o", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Scoreboard lists the rounds of the current session.
// It is shown inside the game model, which pauses the game meanwhile.
type Scoreboard struct {
	store  *storage.Store
	rounds []storage.Round
	stats  storage.Stats
	recent bool // Newest first instead of best first
	err    error
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

// NewScoreboard creates a scoreboard over the session store. A nil store
// shows an empty board.
func NewScoreboard(store *storage.Store, width, height int) Scoreboard {
	h := help.New()
	h.ShowAll = false

	sb := Scoreboard{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	sb.table = sb.createTable()
	return sb
}

// createTable creates a new table with appropriate columns.
func (sb *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Length", Width: 7},
		{Title: "Moves", Width: 7},
		{Title: "Result", Width: 7},
		{Title: "Ended", Width: 9},
	}

	height := sb.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload reads the rounds from the store.
func (sb *Scoreboard) Reload() {
	sb.rounds, sb.stats, sb.err = nil, storage.Stats{}, nil
	if sb.store != nil {
		if sb.recent {
			sb.rounds, sb.err = sb.store.RecentRounds(maxRounds)
		} else {
			sb.rounds, sb.err = sb.store.TopRounds(maxRounds)
		}
		if sb.err == nil {
			sb.stats, sb.err = sb.store.Stats()
		}
	}
	sb.updateTableRows()
}

// updateTableRows updates the table with current rounds.
func (sb *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(sb.rounds))
	for i, r := range sb.rounds {
		result := "bitten"
		if r.Won {
			result = "won"
		}
		rank := fmt.Sprintf("#%d", i+1)
		if sb.recent {
			rank = fmt.Sprintf("%d", r.Seq)
		}
		rows[i] = table.Row{
			rank,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Ticks),
			result,
			r.EndedAt.Format("15:04:05"),
		}
	}
	sb.table.SetRows(rows)

	// Reset cursor to top
	sb.table.GotoTop()
}

// SetSize adapts the board to the terminal size.
func (sb *Scoreboard) SetSize(width, height int) {
	sb.width = width
	sb.height = height
	sb.table = sb.createTable()
	sb.updateTableRows()
	sb.help.Width = width
}

// Update handles a key while the scoreboard is shown. It reports whether
// the user asked to leave the board and whether to quit entirely.
func (sb Scoreboard) Update(msg tea.KeyMsg) (Scoreboard, tea.Cmd, bool, bool) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, sb.keys.Quit):
		return sb, nil, false, true
	case key.Matches(msg, sb.keys.Back):
		return sb, nil, true, false
	case key.Matches(msg, sb.keys.Order):
		sb.recent = !sb.recent
		sb.Reload()
	case key.Matches(msg, sb.keys.Up), key.Matches(msg, sb.keys.Down):
		// Pass to table for scrolling
		sb.table, cmd = sb.table.Update(msg)
	}

	return sb, cmd, false, false
}

// View renders the scoreboard.
func (sb Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "SESSION ROUNDS - BEST"
	if sb.recent {
		title = "SESSION ROUNDS - RECENT"
	}
	b.WriteString(titleStyle.Render(centerText(title, sb.width)))
	b.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stats := fmt.Sprintf("rounds %d  best %d  avg %.0f  wins %d",
		sb.stats.Rounds, sb.stats.BestScore, sb.stats.AvgScore, sb.stats.Wins)
	b.WriteString(statsStyle.Render(centerText(stats, sb.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(sb.renderTableContent()), sb.width))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(sb.help.View(sb.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (sb Scoreboard) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case sb.err != nil:
		return emptyStyle.Render("Round history unavailable:\n" + sb.err.Error())
	case len(sb.rounds) == 0:
		return emptyStyle.Render("No rounds finished yet.\nBite your own tail to end one!")
	}

	return sb.table.View()
}

// centerText centers every line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
