package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pushout/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionForward, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionForward, false},
		{"s", runeKey('s'), core.ActionBackward, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionBackward, false},
		{"a", runeKey('a'), core.ActionRotateLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{"d", runeKey('d'), core.ActionRotateRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSpecial, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"e", runeKey('e'), core.ActionStart, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func countHeld(h *HoldTracker, a core.Action, frames int) int {
	n := 0
	for i := 0; i < frames; i++ {
		if in := h.Frame(); in.Has(a) {
			n++
		}
	}
	return n
}

func TestHoldTrackerPressAndRepeat(t *testing.T) {
	h := NewHoldTracker(10, 3)

	h.Press(core.ActionForward)
	if got := countHeld(h, core.ActionForward, 20); got != 10 {
		t.Errorf("single press held for %d frames, expected 10", got)
	}

	// A repeat while held refreshes with the shorter window.
	h.Press(core.ActionForward)
	h.Frame()
	h.Press(core.ActionForward)
	if got := countHeld(h, core.ActionForward, 20); got != 3 {
		t.Errorf("repeat held for %d frames, expected 3", got)
	}
}

func TestHoldTrackerOpposites(t *testing.T) {
	h := NewHoldTracker(10, 3)

	h.Press(core.ActionForward)
	h.Press(core.ActionRotateLeft)
	h.Press(core.ActionBackward)

	in := h.Frame()
	if in.Has(core.ActionForward) {
		t.Error("pressing backward should release forward")
	}
	if !in.Has(core.ActionBackward) || !in.Has(core.ActionRotateLeft) {
		t.Error("backward and rotate left should both be held")
	}

	h.Press(core.ActionRotateRight)
	if h.Held(core.ActionRotateLeft) || !h.Held(core.ActionRotateRight) {
		t.Error("pressing rotate right should release rotate left")
	}
}

func TestHoldTrackerOneShot(t *testing.T) {
	h := NewHoldTracker(10, 3)

	h.Press(core.ActionSpecial)
	h.Press(core.ActionStart)
	h.Press(core.ActionNone)

	in := h.Frame()
	if !in.Has(core.ActionSpecial) || !in.Has(core.ActionStart) {
		t.Fatal("one-shot actions should reach the next frame")
	}
	if in.Has(core.ActionNone) {
		t.Error("ActionNone should be ignored")
	}
	if in = h.Frame(); in.Has(core.ActionSpecial) || in.Has(core.ActionStart) {
		t.Error("one-shot actions must appear in exactly one frame")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(10, 3)
	h.Press(core.ActionForward)
	h.Press(core.ActionSpecial)

	h.Release()

	in := h.Frame()
	if in.Has(core.ActionForward) || in.Has(core.ActionSpecial) {
		t.Error("Release should drop all input")
	}
}
