package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends translate their own key events into actions once per tick.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Up arrow, W, Space - start a jump while grounded
	ActionDescend        // Down arrow, S - fast descent
	ActionAnyKey         // Any key press event (instructions and game-over screens)
	ActionPause          // P - pause/unpause play
	ActionRestart        // R - start a new run from the game-over screen
	ActionQuit           // Q, Ctrl+C, window close - exit the process
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDescend:
		return "Descend"
	case ActionAnyKey:
		return "AnyKey"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state sampled for one simulation tick.
// Jump and Descend describe held keys; the remaining actions are discrete events.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
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
