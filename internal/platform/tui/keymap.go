package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pushout/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionForward, false
	case "s", "down":
		return core.ActionBackward, false
	case "a", "left":
		return core.ActionRotateLeft, false
	case "d", "right":
		return core.ActionRotateRight, false
	case " ", "space", "ctrl+@":
		return core.ActionSpecial, false
	case "enter", "e":
		return core.ActionStart, false
	case "tab":
		return core.ActionScores, false
	}

	return core.ActionNone, false
}

// Hold windows in ticks at 60 FPS. Terminals only report key presses, and a
// held key repeats after an initial delay, so a fresh press is held long
// enough to bridge that delay and each repeat extends it a little.
const (
	DefaultInitialHold = 32
	DefaultRepeatHold  = 8
)

// HoldTracker turns a stream of key presses into held movement actions.
// One-shot actions (special, start) appear in exactly one frame.
type HoldTracker struct {
	initial int
	repeat  int
	held    map[core.Action]int
	once    core.InputFrame
}

// NewHoldTracker creates a tracker with the given hold windows in ticks.
func NewHoldTracker(initial, repeat int) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Action]int),
		once:    core.NewInputFrame(),
	}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionForward:
		return core.ActionBackward
	case core.ActionBackward:
		return core.ActionForward
	case core.ActionRotateLeft:
		return core.ActionRotateRight
	case core.ActionRotateRight:
		return core.ActionRotateLeft
	default:
		return core.ActionNone
	}
}

// Press records a key press.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionForward, core.ActionBackward, core.ActionRotateLeft, core.ActionRotateRight:
		// Pressing the opposite direction releases the current one.
		delete(h.held, opposite(a))
		if h.held[a] > 0 {
			h.held[a] = h.repeat
		} else {
			h.held[a] = h.initial
		}
	case core.ActionNone:
	default:
		h.once.Set(a)
	}
}

// Frame returns the input for the next tick and advances the hold timers.
func (h *HoldTracker) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, n := range h.held {
		in.Set(a)
		if n <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = n - 1
		}
	}
	for _, a := range []core.Action{core.ActionSpecial, core.ActionStart} {
		if h.once.Has(a) {
			in.Set(a)
		}
	}
	h.once.Clear()
	return in
}

// Release drops every held action, e.g. when an overlay takes the keyboard.
func (h *HoldTracker) Release() {
	for a := range h.held {
		delete(h.held, a)
	}
	h.once.Clear()
}

// Held reports whether an action is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	return h.held[a] > 0
}
