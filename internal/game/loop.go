package game

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/SignalWalker/PhysCubes/internal/input"
	"github.com/SignalWalker/PhysCubes/internal/logger"
	"github.com/SignalWalker/PhysCubes/internal/physics"
)

// Run drives frames until the window closes or ctx is cancelled. Both are
// observed between frames.
func (g *Game) Run(ctx context.Context) {
	g.running = true
	g.renderer.CheckError("begin loop")

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for g.running {
		if err := ctx.Err(); err != nil {
			logger.Info("frame loop cancelled", zap.Error(err))
			g.running = false
			break
		}

		if !g.Frame() {
			break
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("bodies", g.bodies.Len()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("frame loop stopped", zap.Uint64("frames", g.frames))
}

// Frame runs one iteration: events, actions, physics, clear, draw, present.
// It returns false when a close event arrived, in which case nothing after
// the event pump ran.
func (g *Game) Frame() bool {
	if !g.pumpEvents() {
		return false
	}

	g.resolveActions()
	g.bodies.Step()

	g.renderer.Clear()
	g.draw()

	g.window.SwapBuffers()
	g.limiter.Wait()
	g.frames++
	return true
}

// pumpEvents applies a pending config reload, then dispatches every pending
// event synchronously.
func (g *Game) pumpEvents() bool {
	select {
	case cfg, ok := <-g.reloads:
		if ok {
			g.Retune(cfg)
		} else {
			g.reloads = nil
		}
	default:
	}

	g.events = g.window.PollEvents(g.events[:0])
	for _, e := range g.events {
		switch e.Type {
		case input.EventQuit:
			logger.Info("close requested")
			g.running = false
			return false
		case input.EventWindowResize:
			g.Resize(e.Width, e.Height)
		default:
			g.keys.Apply(e)
		}
	}
	return true
}

// resolveActions applies every held key in press order, then the spawn
// trigger.
func (g *Game) resolveActions() {
	for _, k := range g.keys.Held() {
		g.apply(g.bindings.Lookup(k))
	}

	if g.throttle.TrySpawn(g.keys.MouseHeld()) {
		g.spawn()
	}
}

func (g *Game) apply(a Action) {
	switch a {
	case ActionMoveLeft:
		g.camera.Move(-1, 0, 0)
	case ActionMoveRight:
		g.camera.Move(1, 0, 0)
	case ActionMoveUp:
		g.camera.Move(0, 1, 0)
	case ActionMoveDown:
		g.camera.Move(0, -1, 0)
	case ActionMoveForward:
		g.camera.Move(0, 0, 1)
	case ActionMoveBack:
		g.camera.Move(0, 0, -1)
	case ActionPitchUp:
		g.camera.Rotate(1, 0, 0)
	case ActionPitchDown:
		g.camera.Rotate(-1, 0, 0)
	case ActionYawLeft:
		g.camera.Rotate(0, 1, 0)
	case ActionYawRight:
		g.camera.Rotate(0, -1, 0)
	case ActionRollLeft:
		g.camera.Rotate(0, 0, 1)
	case ActionRollRight:
		g.camera.Rotate(0, 0, -1)
	case ActionResetCamera:
		g.camera.Reset()
	case ActionResetBodies:
		g.bodies.ResetAll()
	case ActionClearSpawned:
		g.bodies.ClearSpawned()
	case ActionSwapTexture:
		g.active ^= 1
	}
}

// spawn launches a box from in front of the camera. The cursor's offset
// from the viewport centre, in half-viewport units, bends the launch
// direction away from forward.
func (g *Game) spawn() {
	mx, my := g.window.CursorPosition()
	halfW := float32(g.viewport.Width) / 2
	halfH := float32(g.viewport.Height) / 2

	forward := g.camera.Forward()
	dir := forward.Add(mgl32.Vec3{
		(float32(mx) - halfW) / halfW,
		(halfH - float32(my)) / halfH,
		0,
	})

	spawn := g.cfg.Spawn
	idx := g.bodies.Add(physics.State{
		Position:    g.camera.Position().Add(forward.Mul(spawn.Distance)),
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{spawn.Scale, spawn.Scale, spawn.Scale},
		Mass:        spawn.Mass,
		LinMomentum: dir.Mul(spawn.Mass),
		Live:        true,
	})

	logger.Debug("spawned body",
		zap.Int("index", idx),
		zap.Int("cursorX", mx),
		zap.Int("cursorY", my),
	)
}

// draw renders every body with the active texture, then the ground plane
// with the index texture.
func (g *Game) draw() {
	viewProj := g.camera.StackResult()
	tex := g.ActiveTexture()

	g.bodies.ForEach(func(_ int, b *physics.Body) {
		g.renderer.DrawBody(viewProj.Mul4(b.Model()), tex)
	})

	g.renderer.DrawGround(viewProj.Mul4(g.ground.Result()), g.textures[0])
}
