package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionSlot           // Space, Enter - insert a coin
	ActionPodium         // L - open the leaderboards
	ActionTV             // T - watch an intermission for more time
	ActionBoard          // B - toggle the board / dismiss a banner
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionBack           // Esc - close an overlay
	ActionUp             // Arrow keys - move the board cursor and tap
	ActionDown
	ActionLeft
	ActionRight
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSlot:
		return "Slot"
	case ActionPodium:
		return "Podium"
	case ActionTV:
		return "TV"
	case ActionBoard:
		return "Board"
	case ActionQuit:
		return "Quit"
	case ActionBack:
		return "Back"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Pointer is one sample of the pointing device in screen-cell units.
// Held is true while the button (or an emulated press) is down.
type Pointer struct {
	Held bool
	X, Y float64
}

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the pointer sample for this tick.
	Pointer Pointer

	// IntroDone reports that the host finished playing its intro sequence.
	IntroDone bool
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

// Clear resets all actions for the next frame. The pointer sample is kept
// because a held button stays held across ticks.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
