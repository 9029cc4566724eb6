package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushout/internal/core"
	"github.com/vovakirdan/pushout/internal/storage"
)

// stubGame records the frames it is stepped with and finishes a run when
// it sees the start action.
type stubGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	if in.Has(core.ActionStart) {
		g.state = core.GameState{Score: 7, HighScore: 7, GameOver: true, Elapsed: 12.5}
		return core.StepResult{State: g.state, Finished: true}
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub", core.ColorDefault) }

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) last() core.InputFrame { return g.frames[len(g.frames)-1] }

func newTestModel(t *testing.T, store *storage.Store) (Model, *stubGame) {
	t.Helper()
	g := &stubGame{}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(g, store, cfg, WithPlayer("ann")), g
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model) Model {
	return send(m, TickMsg{})
}

func TestModelResetsOnce(t *testing.T) {
	m, g := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = tick(m)

	if g.resets != 1 {
		t.Errorf("Reset called %d times, expected 1 (resize must keep the game)", g.resets)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("View() should render the game")
	}
}

func TestModelHeldInput(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = send(m, runeKey('w'))
	for i := 0; i < 5; i++ {
		m = tick(m)
		if !g.last().Has(core.ActionForward) {
			t.Fatalf("tick %d: forward should still be held", i)
		}
	}

	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(m)
	if !g.last().Has(core.ActionSpecial) {
		t.Error("special should reach the next tick")
	}
	m = tick(m)
	if g.last().Has(core.ActionSpecial) {
		t.Error("special must not repeat")
	}
}

func TestModelSavesFinishedRun(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, store)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m)
	m = tick(m)

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(scores))
	}
	if scores[0].Player != "ann" || scores[0].Score != 7 || scores[0].Seconds != 12.5 {
		t.Errorf("unexpected entry: %+v", scores[0])
	}
	if !m.State().GameOver {
		t.Error("model should track the game state")
	}
}

func TestModelLeaderboardOverlay(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("stub", "bob", 3, 4)

	m, g := newTestModel(t, store)
	m = send(m, runeKey('w'))
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})

	if !m.ShowingBoard() {
		t.Fatal("tab should open the leaderboard")
	}
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Stub") || !strings.Contains(view, "bob") {
		t.Errorf("leaderboard view is missing content:\n%s", view)
	}

	m = tick(m)
	if g.last().Has(core.ActionForward) {
		t.Error("opening the board should release held keys")
	}

	// Keys go to the board while it is open.
	m = send(m, runeKey('e'))
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ShowingBoard() {
		t.Fatal("esc should close the leaderboard")
	}
	m = tick(m)
	if g.last().Has(core.ActionStart) {
		t.Error("keys pressed on the board must not reach the game")
	}
}

func TestModelFrozenWhileBoardOpen(t *testing.T) {
	m, g := newTestModel(t, nil)
	m = tick(m)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	for i := 0; i < 30; i++ {
		m = tick(m)
	}
	if len(g.frames) != 1 {
		t.Errorf("game stepped %d times with the board open, expected no steps", len(g.frames)-1)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(m)
	if len(g.frames) != 2 {
		t.Errorf("game should resume after the board closes, got %d steps", len(g.frames))
	}
}

func TestModelLogsFailedSave(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	var buf bytes.Buffer
	g := &stubGame{}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewModel(g, store, cfg, WithPlayer("ann"), WithLogger(log.New(&buf)))

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	tick(m)

	if !strings.Contains(buf.String(), "could not save score") {
		t.Errorf("expected a warning for the failed save, log was %q", buf.String())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab", core.ColorTitle)
	s.DrawText(3, 1, "cd", core.ColorHint)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
