package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionForward            // W, Up arrow - drive forward
	ActionBackward           // S, Down arrow - reverse
	ActionRotateLeft         // A, Left arrow - turn left
	ActionRotateRight        // D, Right arrow - turn right
	ActionSpecial            // Space, Ctrl+Space - trigger the special
	ActionStart              // Enter, E - start or restart a run
	ActionScores             // Tab - toggle the leaderboard overlay
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionSpecial:
		return "Special"
	case ActionStart:
		return "Start"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// An action present in the frame is considered held down for that tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Axis folds two opposing actions into -1, 0 or +1.
// When both are held the positive action wins, matching the if/else-if
// order of the movement code.
func (f InputFrame) Axis(positive, negative Action) float64 {
	switch {
	case f.Has(positive):
		return 1
	case f.Has(negative):
		return -1
	default:
		return 0
	}
}
