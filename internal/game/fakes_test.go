package game

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/SignalWalker/PhysCubes/internal/config"
	"github.com/SignalWalker/PhysCubes/internal/input"
)

// trace is the shared call log of the fake backends.
type trace struct {
	calls []string
}

func (t *trace) add(format string, args ...any) {
	t.calls = append(t.calls, fmt.Sprintf(format, args...))
}

// fakeWindow serves one queued batch of events per PollEvents call.
type fakeWindow struct {
	log     *trace
	batches [][]input.Event
	cursorX int
	cursorY int
}

func (w *fakeWindow) queue(events ...input.Event) {
	w.batches = append(w.batches, events)
}

func (w *fakeWindow) PollEvents(dst []input.Event) []input.Event {
	w.log.add("poll")
	if len(w.batches) == 0 {
		return dst
	}
	batch := w.batches[0]
	w.batches = w.batches[1:]
	return append(dst, batch...)
}

func (w *fakeWindow) CursorPosition() (int, int) { return w.cursorX, w.cursorY }

func (w *fakeWindow) SwapBuffers() { w.log.add("swap") }

type drawCall struct {
	transform mgl32.Mat4
	texture   uint32
	viewport  Viewport
}

type fakeRenderer struct {
	log      *trace
	viewport Viewport
	bodies   []drawCall
	grounds  []drawCall
	checks   []string
}

func (r *fakeRenderer) SetViewport(x, y, w, h int) {
	r.log.add("viewport %d %d %d %d", x, y, w, h)
	r.viewport = Viewport{x, y, w, h}
}

func (r *fakeRenderer) Clear() {
	r.log.add("clear")
	r.bodies = r.bodies[:0]
	r.grounds = r.grounds[:0]
}

func (r *fakeRenderer) DrawBody(m mgl32.Mat4, tex uint32) {
	r.log.add("body")
	r.bodies = append(r.bodies, drawCall{m, tex, r.viewport})
}

func (r *fakeRenderer) DrawGround(m mgl32.Mat4, tex uint32) {
	r.log.add("ground")
	r.grounds = append(r.grounds, drawCall{m, tex, r.viewport})
}

func (r *fakeRenderer) CheckError(stage string) { r.checks = append(r.checks, stage) }

const (
	texIndex uint32 = 11
	texAlt   uint32 = 22
)

type harness struct {
	game     *Game
	window   *fakeWindow
	renderer *fakeRenderer
	log      *trace
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Window.FramerateLimit = 0

	log := &trace{}
	w := &fakeWindow{log: log, cursorX: 800, cursorY: 450}
	r := &fakeRenderer{log: log}

	g, err := New(cfg, w, r, Textures{Index: texIndex, Alt: texAlt})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	log.calls = nil
	return &harness{game: g, window: w, renderer: r, log: log}
}

// frames queues one batch per frame and runs them.
func (h *harness) frames(batches ...[]input.Event) {
	for _, b := range batches {
		h.window.queue(b...)
		h.game.Frame()
	}
}

// idle runs n frames without new events.
func (h *harness) idle(n int) {
	for i := 0; i < n; i++ {
		h.game.Frame()
	}
}

func keyDown(k input.Key) input.Event { return input.Event{Type: input.EventKeyDown, Key: k} }
func keyUp(k input.Key) input.Event   { return input.Event{Type: input.EventKeyUp, Key: k} }

func mouseDown() input.Event {
	return input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft}
}

func mouseUp() input.Event {
	return input.Event{Type: input.EventMouseUp, Button: input.ButtonLeft}
}

func events(e ...input.Event) []input.Event { return e }
