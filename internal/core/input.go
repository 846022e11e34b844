package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionForward          // W, Up arrow - drive forward
	ActionBack             // S, Down arrow - reverse
	ActionTurnLeft         // A, Left arrow - rotate counterclockwise
	ActionTurnRight        // D, Right arrow - rotate clockwise
	ActionFire             // Q, Space - fire a shell
	ActionPause            // P - pause/unpause game
	ActionRestart          // R key - restart match after it is over
	ActionQuit             // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionFire:
		return "Fire"
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

// PlayerID identifies a seat at the shared keyboard.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Intent is the per-tick control input consumed by a tank.
// Turn is +1 for counterclockwise, -1 for clockwise; Move is +1 forward, -1 reverse.
type Intent struct {
	Turn int
	Move int
	Fire bool
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were held during this frame.
type InputFrame struct {
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

// Intent resolves held actions into a tank intent.
// Forward wins over back and left wins over right when both are held.
func (f InputFrame) Intent() Intent {
	var in Intent
	switch {
	case f.Has(ActionForward):
		in.Move = 1
	case f.Has(ActionBack):
		in.Move = -1
	}
	switch {
	case f.Has(ActionTurnLeft):
		in.Turn = 1
	case f.Has(ActionTurnRight):
		in.Turn = -1
	}
	in.Fire = f.Has(ActionFire)
	return in
}

// MultiInputFrame contains input from all players for a single tick.
// Platform builds this from two keyboard layouts; games consume it without
// knowing the input source.
type MultiInputFrame struct {
	// ByPlayer maps player IDs to their input frames.
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return NewInputFrame()
	}
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// Set marks an action for a specific player.
func (m *MultiInputFrame) Set(id PlayerID, a Action) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	frame := m.ByPlayer[id]
	frame.Set(a)
	m.ByPlayer[id] = frame
}

// Has reports whether any player triggered the action.
func (m MultiInputFrame) Has(a Action) bool {
	for _, frame := range m.ByPlayer {
		if frame.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}
