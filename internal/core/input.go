package core

// Action represents a semantic session action, abstracted from physical key presses.
// Paddle drawing is not an action; it arrives as Gesture events.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter, Space - start from the title screen
	ActionRestart        // R - restart after game over
	ActionPause          // P, Escape - pause/unpause
	ActionDebug          // D - toggle the debug overlay
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// GesturePhase is the stage of a single-pointer drag.
type GesturePhase int

const (
	GestureStart GesturePhase = iota
	GestureMove
	GestureEnd
)

// String returns a human-readable name for the phase.
func (p GesturePhase) String() string {
	switch p {
	case GestureStart:
		return "Start"
	case GestureMove:
		return "Move"
	case GestureEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Gesture is one pointer event in screen cell coordinates.
// The game converts cells to canvas units; the platform never sees the viewport.
type Gesture struct {
	Phase GesturePhase
	X, Y  int
}

// InputFrame collects everything the player did between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Gestures are kept in arrival order; a fast drag may deliver several per tick.
	Gestures []Gesture
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

// AddGesture appends a pointer event.
func (f *InputFrame) AddGesture(g Gesture) {
	f.Gestures = append(f.Gestures, g)
}

// Clear resets all actions and gestures for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Gestures = f.Gestures[:0]
}
