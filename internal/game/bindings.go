package game

import (
	"github.com/kamstrup/intmap"

	"github.com/SignalWalker/PhysCubes/internal/input"
)

// Action is something a held key does once per frame.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionMoveForward
	ActionMoveBack
	ActionPitchUp
	ActionPitchDown
	ActionYawLeft
	ActionYawRight
	ActionRollLeft
	ActionRollRight
	ActionResetCamera
	ActionResetBodies
	ActionClearSpawned
	ActionSwapTexture
)

// Bindings maps physical keys to actions. Keys without an entry are ignored.
type Bindings struct {
	keys *intmap.Map[input.Key, Action]
}

// NewBindings returns an empty key table.
func NewBindings() Bindings {
	return Bindings{keys: intmap.New[input.Key, Action](32)}
}

// DefaultBindings returns the fixed sandbox key layout.
func DefaultBindings() Bindings {
	b := NewBindings()
	b.Bind(input.KeyA, ActionMoveLeft)
	b.Bind(input.KeyD, ActionMoveRight)
	b.Bind(input.KeyE, ActionMoveUp)
	b.Bind(input.KeyQ, ActionMoveDown)
	b.Bind(input.KeyW, ActionMoveForward)
	b.Bind(input.KeyS, ActionMoveBack)
	b.Bind(input.KeyKeypad8, ActionPitchUp)
	b.Bind(input.KeyKeypad2, ActionPitchDown)
	b.Bind(input.KeyKeypad4, ActionYawLeft)
	b.Bind(input.KeyKeypad6, ActionYawRight)
	b.Bind(input.KeyKeypad7, ActionRollLeft)
	b.Bind(input.KeyKeypad9, ActionRollRight)
	b.Bind(input.KeyR, ActionResetCamera)
	b.Bind(input.KeySpace, ActionResetBodies)
	b.Bind(input.KeyEscape, ActionClearSpawned)
	b.Bind(input.KeyT, ActionSwapTexture)
	return b
}

// Bind maps k to a, replacing any previous binding. ActionNone unbinds.
func (b Bindings) Bind(k input.Key, a Action) {
	if a == ActionNone {
		b.keys.Del(k)
		return
	}
	b.keys.Put(k, a)
}

// Lookup returns the action bound to k, or ActionNone.
func (b Bindings) Lookup(k input.Key) Action {
	a, _ := b.keys.Get(k)
	return a
}

// Len returns the number of bound keys.
func (b Bindings) Len() int {
	return b.keys.Len()
}
