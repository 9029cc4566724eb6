// Package registry maps game ids to their factories. Games register
// themselves in init(); the CLI looks them up by id and builds them from the
// configuration it loaded.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pushout/internal/config"
	"github.com/vovakirdan/pushout/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "pushout").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Pushout").
	Title() string

	// Reset initializes the game for a screen size and RNG seed.
	// The platform calls it once before the first Step; restarting after
	// a game over is handled by the game itself.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Forward, Special, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, high score, game over).
	State() core.GameState
}

// Factory builds a game from a loaded and validated configuration.
type Factory func(cfg config.PushoutConfig) Game

// Entry describes a registered game.
type Entry struct {
	ID      string
	Title   string
	Summary string
	New     Factory
}

// ErrUnknownGame is returned by Lookup for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	entries = make(map[string]Entry)
	mu      sync.RWMutex
)

// Register adds a game. It panics on an incomplete entry or a duplicate id,
// both of which are programming errors caught at init time.
func Register(e Entry) {
	if e.ID == "" || e.New == nil {
		panic("registry: entry needs an id and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[e.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", e.ID))
	}
	entries[e.ID] = e
}

// Lookup returns the entry registered under id.
func Lookup(id string) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e, nil
}

// List returns every registered game, sorted by id.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
