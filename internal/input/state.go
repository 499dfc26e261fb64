package input

import "slices"

// State is the set of currently held keys plus the primary mouse button.
// Event dispatch mutates it; the frame loop only reads it.
type State struct {
	held      []Key
	mouseHeld bool
}

// NewState returns an empty input state.
func NewState() *State {
	return &State{held: make([]Key, 0, 8)}
}

// KeyDown records k as held. Repeated presses keep a single entry.
func (s *State) KeyDown(k Key) {
	if !slices.Contains(s.held, k) {
		s.held = append(s.held, k)
	}
}

// KeyUp forgets k. Releasing a key that is not held does nothing.
func (s *State) KeyUp(k Key) {
	if i := slices.Index(s.held, k); i >= 0 {
		s.held = slices.Delete(s.held, i, i+1)
	}
}

// MouseDown marks the spawn trigger as held.
func (s *State) MouseDown() { s.mouseHeld = true }

// MouseUp marks the spawn trigger as released.
func (s *State) MouseUp() { s.mouseHeld = false }

// MouseHeld reports whether the spawn trigger is held.
func (s *State) MouseHeld() bool { return s.mouseHeld }

// IsHeld reports whether k is currently held.
func (s *State) IsHeld(k Key) bool { return slices.Contains(s.held, k) }

// Held returns the held keys in first-press order. The slice is a copy.
func (s *State) Held() []Key {
	return slices.Clone(s.held)
}

// Apply routes a key or mouse event to the matching mutator and reports
// whether the event touched the state. Only the left button drives the trigger.
func (s *State) Apply(e Event) bool {
	switch e.Type {
	case EventKeyDown:
		s.KeyDown(e.Key)
	case EventKeyUp:
		s.KeyUp(e.Key)
	case EventMouseDown:
		if e.Button != ButtonLeft {
			return false
		}
		s.MouseDown()
	case EventMouseUp:
		if e.Button != ButtonLeft {
			return false
		}
		s.MouseUp()
	default:
		return false
	}
	return true
}
