package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushout/internal/core"
	"github.com/vovakirdan/pushout/internal/registry"
	"github.com/vovakirdan/pushout/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	hold      *HoldTracker
	gameState core.GameState
	player    string
	logger    *log.Logger
	board     *Leaderboard
	showBoard bool
	quitting  bool
}

// Option configures a Model.
type Option func(*Model)

// WithPlayer sets the name scores are saved under.
func WithPlayer(name string) Option {
	return func(m *Model) { m.player = name }
}

// WithLogger logs every finished run.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(max(cfg.ScreenW, 0), max(cfg.ScreenH, 0)),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hold:      NewHoldTracker(DefaultInitialHold*cfg.TickRate/60, max(DefaultRepeatHold*cfg.TickRate/60, 1)),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.board = NewLeaderboard(store, game.ID(), game.Title(), m.player, cfg.ScreenW, cfg.ScreenH)

	// The game is reset here rather than in Init, which has a value receiver.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBoard {
		closed, quit, cmd := m.board.Update(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		if closed {
			m.showBoard = false
		}
		return m, cmd
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionScores:
		m.openBoard()
	default:
		m.hold.Press(action)
	}

	return m, nil
}

// openBoard shows the leaderboard and pauses the game. Held keys are
// dropped so the dozer does not drive on once the board closes.
func (m *Model) openBoard() {
	m.hold.Release()
	m.board.Refresh()
	m.showBoard = true
}

// handleResize processes window resize events. The game keeps its state;
// it renders into whatever screen size it is given.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.board.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks. The game is frozen while the
// leaderboard covers it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showBoard {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.hold.Frame())
	m.gameState = result.State

	if result.Finished {
		m.recordRun(result.State)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordRun saves a finished run and logs it.
func (m *Model) recordRun(st core.GameState) {
	if m.store != nil {
		if _, err := m.store.SaveScore(m.game.ID(), m.player, st.Score, st.Elapsed); err != nil && m.logger != nil {
			m.logger.Warn("could not save score", "player", m.player, "error", err)
		}
	}
	if m.logger != nil {
		m.logger.Info("run finished",
			"player", m.player,
			"score", st.Score,
			"best", st.HighScore,
			"seconds", fmt.Sprintf("%.1f", st.Elapsed),
		)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.board.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// ShowingBoard reports whether the leaderboard overlay is open.
func (m Model) ShowingBoard() bool {
	return m.showBoard
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
