package game

// Control is an on-screen element the player can tap.
type Control uint8

const (
	ControlBackground Control = iota
	ControlScore
	ControlTimer
	ControlGameBoard
	ControlSlot
	ControlButtonTV
	ControlButtonPodium
	controlCount
)

func (c Control) String() string {
	switch c {
	case ControlBackground:
		return "background"
	case ControlScore:
		return "score"
	case ControlTimer:
		return "timer"
	case ControlGameBoard:
		return "board"
	case ControlSlot:
		return "slot"
	case ControlButtonTV:
		return "tv"
	case ControlButtonPodium:
		return "podium"
	default:
		return "unknown"
	}
}

// Controls is a set of controls.
type Controls uint16

// ControlsOf builds a set.
func ControlsOf(cs ...Control) Controls {
	var s Controls
	for _, c := range cs {
		s |= 1 << c
	}
	return s
}

// Has reports whether c is in the set.
func (s Controls) Has(c Control) bool {
	return s&(1<<c) != 0
}

// controlState is what the renderer shows for a control.
type controlState struct {
	enabled bool
	pushed  bool
}

// taps tracks which controls are under a held pointer this tick and the
// previous one.
type taps struct {
	current  Controls
	previous Controls
}

// update starts a new tick. Nothing is touched while the pointer is up.
func (t *taps) update(held bool, touched Controls) {
	t.previous = t.current
	t.current = 0
	if held {
		t.current = touched
	}
}

// tapped reports a press that started on c this tick.
func (t *taps) tapped(c Control) bool {
	return t.current.Has(c) && !t.previous.Has(c)
}

// tappedExclusive reports that some of cs changed state this tick and
// that they are the only controls touched.
func (t *taps) tappedExclusive(cs ...Control) bool {
	flags := ControlsOf(cs...) & (t.current ^ t.previous)
	return flags != 0 && t.current^flags == 0
}
