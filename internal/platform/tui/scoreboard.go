package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pushout/internal/storage"
)

// Leaderboard layout constants
const (
	maxScores      = 100 // Max scores to load
	boardMinHeight = 3
)

// LeaderboardKeyMap defines the key bindings for the leaderboard overlay.
type LeaderboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Close key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LeaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Close, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LeaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Close, k.Quit},
	}
}

// DefaultLeaderboardKeyMap returns default key bindings.
func DefaultLeaderboardKeyMap() LeaderboardKeyMap {
	return LeaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "scroll down"),
		),
		Close: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Leaderboard is the in-game high score overlay. It is not a tea.Model of
// its own; the game model forwards keys to it while it is open.
type Leaderboard struct {
	gameID string
	title  string
	player string
	store  *storage.Store
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	table  table.Model
	help   help.Model
	keys   LeaderboardKeyMap
	width  int
	height int
}

// NewLeaderboard creates the overlay for one game. The player's own runs
// are highlighted.
func NewLeaderboard(store *storage.Store, gameID, title, player string, width, height int) *Leaderboard {
	h := help.New()
	h.ShowAll = false

	b := &Leaderboard{
		gameID: gameID,
		title:  title,
		player: player,
		store:  store,
		help:   h,
		keys:   DefaultLeaderboardKeyMap(),
		width:  width,
		height: height,
	}
	b.table = b.createTable()
	return b
}

// createTable creates a new table with appropriate columns.
func (b *Leaderboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	// Give leftover width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := b.width - 8 - used; extra > 0 {
		columns[1].Width += min(extra, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(b.height-10, boardMinHeight)), // Leave room for header, stats and help
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

// Refresh reloads scores and stats from the store.
func (b *Leaderboard) Refresh() {
	b.scores, b.stats = nil, nil
	if b.store != nil {
		if scores, err := b.store.TopScores(b.gameID, maxScores); err == nil {
			b.scores = scores
		}
		if stats, err := b.store.GetGameStats(b.gameID); err == nil {
			b.stats = stats
		}
	}
	b.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (b *Leaderboard) updateTableRows() {
	rows := make([]table.Row, len(b.scores))
	for i, s := range b.scores {
		name := s.Player
		if name == "" {
			name = "-"
		}
		if b.player != "" && s.Player == b.player {
			name = "* " + name
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			name,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%.1fs", s.Seconds),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)

	// Reset cursor to top
	b.table.GotoTop()
}

// Resize adapts the overlay to a new terminal size.
func (b *Leaderboard) Resize(width, height int) {
	b.width, b.height = width, height
	b.table = b.createTable()
	b.updateTableRows()
	b.help.Width = width
}

// Update handles a key while the overlay is open. It reports whether the
// overlay should close and whether the user asked to quit.
func (b *Leaderboard) Update(msg tea.KeyMsg) (closed, quit bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return true, true, nil
	case key.Matches(msg, b.keys.Close):
		return true, false, nil
	case key.Matches(msg, b.keys.Up), key.Matches(msg, b.keys.Down):
		// Pass to table for scrolling
		b.table, cmd = b.table.Update(msg)
	}
	return false, false, cmd
}

// Rows returns the number of rows on the board.
func (b *Leaderboard) Rows() int {
	return len(b.table.Rows())
}

// View renders the leaderboard.
func (b *Leaderboard) View() string {
	var sb strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	sb.WriteString(titleStyle.Render(centerText("HIGH SCORES - "+b.title, b.width)))
	sb.WriteString("\n\n")

	// Stats line
	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if b.stats != nil && b.stats.GamesCount > 0 {
		line := fmt.Sprintf("Runs: %d  |  Best: %d  |  Average: %.1f  |  Longest run: %.1fs",
			b.stats.GamesCount, b.stats.HighScore, b.stats.AvgScore, b.stats.LongestRun)
		sb.WriteString(statsStyle.Render(centerText(line, b.width)))
		sb.WriteString("\n\n")
	}

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	sb.WriteString(centerBlock(tableStyle.Render(b.renderTableContent()), b.width))

	// Help bar
	sb.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	sb.WriteString(helpStyle.Render(b.help.View(b.keys)))

	return sb.String()
}

// renderTableContent renders the table or empty message.
func (b *Leaderboard) renderTableContent() string {
	if len(b.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nScores reset when the server restarts.")
	}

	return b.table.View()
}

// centerText pads a single line to center it within width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// centerBlock centers a multi-line block within width.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
