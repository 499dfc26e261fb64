// Package input holds backend-neutral input events and the held-input state
// that the frame loop polls once per frame.
package input

// EventType identifies a window or input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventWindowResize:
		return "resize"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventMouseMove:
		return "mouse-move"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseUp:
		return "mouse-up"
	default:
		return "none"
	}
}

// Event is one translated backend event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// ButtonLeft is the primary mouse button, the spawn trigger.
const ButtonLeft uint8 = 1

// Key is a physical key identifier. Values are USB HID usage IDs, which is
// what SDL scancodes use, so backends convert without a lookup table.
type Key int32

const (
	KeyUnknown Key = 0
	KeyA       Key = 4
	KeyD       Key = 7
	KeyE       Key = 8
	KeyQ       Key = 20
	KeyR       Key = 21
	KeyS       Key = 22
	KeyT       Key = 23
	KeyW       Key = 26
	KeyEscape  Key = 41
	KeySpace   Key = 44
	KeyKeypad2 Key = 90
	KeyKeypad4 Key = 92
	KeyKeypad6 Key = 94
	KeyKeypad7 Key = 95
	KeyKeypad8 Key = 96
	KeyKeypad9 Key = 97
)
