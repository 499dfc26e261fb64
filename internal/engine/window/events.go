package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/SignalWalker/PhysCubes/internal/input"
)

// PollEvents drains the SDL queue, appending translated events to dst.
// A quit event ends the batch; anything queued after it is left unread.
func (w *Window) PollEvents(dst []input.Event) []input.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := translate(event)
		if !ok {
			continue
		}
		dst = append(dst, e)
		if e.Type == input.EventQuit {
			break
		}
	}
	return dst
}

func translate(event sdl.Event) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.Event{Type: input.EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return input.Event{
				Type:   input.EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		case sdl.WINDOWEVENT_CLOSE:
			return input.Event{Type: input.EventQuit}, true
		}

	case *sdl.KeyboardEvent:
		// Auto-repeat is redundant: held keys already act every frame.
		if e.Repeat != 0 {
			return input.Event{}, false
		}
		ev := input.Event{Key: input.Key(e.Keysym.Scancode)}
		if e.Type == sdl.KEYDOWN {
			ev.Type = input.EventKeyDown
		} else {
			ev.Type = input.EventKeyUp
		}
		return ev, true

	case *sdl.MouseMotionEvent:
		return input.Event{
			Type:   input.EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
		}, true

	case *sdl.MouseButtonEvent:
		ev := input.Event{
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.Type = input.EventMouseDown
		} else {
			ev.Type = input.EventMouseUp
		}
		return ev, true
	}
	return input.Event{}, false
}
