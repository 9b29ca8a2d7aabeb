package state

// Phase is the state of the pointer session.
type Phase int

const (
	Idle Phase = iota
	Painting
)

func (p Phase) String() string {
	if p == Painting {
		return "painting"
	}
	return "idle"
}

// PointerEvent drives Session transitions.
type PointerEvent int

const (
	Press PointerEvent = iota
	Release
	Leave
	Reset
)

// Session tracks whether the pointer is down over the mask layer.
// Stamps happen only while Painting.
type Session struct {
	phase Phase
}

// Handle applies ev and returns the new phase.
func (s *Session) Handle(ev PointerEvent) Phase {
	switch ev {
	case Press:
		s.phase = Painting
	case Release, Leave, Reset:
		s.phase = Idle
	}
	return s.phase
}

func (s *Session) Phase() Phase   { return s.phase }
func (s *Session) Painting() bool { return s.phase == Painting }
