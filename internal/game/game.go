// Package game implements the sandbox frame loop and the state it drives.
package game

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/SignalWalker/PhysCubes/internal/config"
	"github.com/SignalWalker/PhysCubes/internal/engine/camera"
	"github.com/SignalWalker/PhysCubes/internal/engine/timing"
	"github.com/SignalWalker/PhysCubes/internal/engine/transform"
	"github.com/SignalWalker/PhysCubes/internal/input"
	"github.com/SignalWalker/PhysCubes/internal/logger"
	"github.com/SignalWalker/PhysCubes/internal/physics"
)

// Window is the platform surface the loop polls and presents to.
type Window interface {
	// PollEvents appends all pending events to dst and returns it.
	PollEvents(dst []input.Event) []input.Event
	// CursorPosition returns the mouse position in window pixels.
	CursorPosition() (x, y int)
	SwapBuffers()
}

// Renderer draws the scene. Transforms are full clip-space matrices.
type Renderer interface {
	SetViewport(x, y, width, height int)
	Clear()
	DrawBody(transform mgl32.Mat4, texture uint32)
	DrawGround(transform mgl32.Mat4, texture uint32)
	CheckError(stage string)
}

// Textures are the two GPU textures loaded at startup.
type Textures struct {
	Index uint32 // ground plane, and the default box texture
	Alt   uint32
}

// Viewport is the drawable area in pixels.
type Viewport struct {
	X, Y, Width, Height int
}

// Game owns every piece of mutable sandbox state. All of it is touched from
// the loop goroutine only.
type Game struct {
	cfg      *config.Config
	window   Window
	renderer Renderer
	bindings Bindings

	keys     *input.State
	throttle *Throttle
	lens     *camera.Projection
	camera   *camera.FlyCamera
	ground   *transform.Stack
	bodies   *physics.Registry
	limiter  *timing.Limiter

	textures [2]uint32
	active   int
	viewport Viewport

	events  []input.Event
	reloads <-chan *config.Config
	running bool
	frames  uint64
}

// New builds the sandbox scene: the falling box, the static ground box, the
// camera at its start pose and the ground plane transform.
func New(cfg *config.Config, window Window, renderer Renderer, textures Textures) (*Game, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if window == nil || renderer == nil {
		return nil, errors.New("window and renderer are required")
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	lens := camera.NewProjection(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far, w, h)
	cam := camera.NewFlyCamera(cfg.Camera.Position.Mgl(), lens)
	cam.MoveStep = cfg.Camera.MoveStep
	cam.TurnStep = cfg.Camera.RotateStep

	g := &Game{
		cfg:      cfg,
		window:   window,
		renderer: renderer,
		bindings: DefaultBindings(),
		keys:     input.NewState(),
		throttle: NewThrottle(cfg.Spawn.Threshold),
		lens:     lens,
		camera:   cam,
		ground:   transform.NewStack(),
		bodies:   newScene(cfg),
		limiter:  timing.NewLimiter(cfg.Window.FramerateLimit),
		textures: [2]uint32{textures.Index, textures.Alt},
		events:   make([]input.Event, 0, 32),
	}

	g.Resize(w, h)

	logger.Info("sandbox ready",
		zap.Int("bodies", g.bodies.Len()),
		zap.Int("spawnThreshold", cfg.Spawn.Threshold),
		zap.Int("fpsLimit", cfg.Window.FramerateLimit),
	)
	return g, nil
}

func newScene(cfg *config.Config) *physics.Registry {
	reg := physics.NewRegistry(physicsSettings(cfg.Physics))
	reg.AddPermanent(physics.State{
		Position: cfg.Scene.BoxPosition.Mgl(),
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
		Mass:     cfg.Scene.BoxMass,
		Live:     true,
	})
	reg.AddPermanent(physics.State{
		Rotation: mgl32.QuatIdent(),
		Scale:    cfg.Scene.GroundScale.Mgl(),
		Mass:     cfg.Scene.BoxMass,
		Live:     false,
	})
	return reg
}

// WatchConfig makes the loop apply configs received on ch between frames.
func (g *Game) WatchConfig(ch <-chan *config.Config) {
	g.reloads = ch
}

// Retune applies the live-tunable parts of cfg: camera steps, spawn
// settings, physics constants and the frame cap. Window, scene and asset
// settings need a restart.
func (g *Game) Retune(cfg *config.Config) {
	g.camera.MoveStep = cfg.Camera.MoveStep
	g.camera.TurnStep = cfg.Camera.RotateStep

	g.cfg.Spawn = cfg.Spawn
	g.throttle.SetThreshold(cfg.Spawn.Threshold)

	g.cfg.Physics = cfg.Physics
	g.bodies.SetSettings(physicsSettings(cfg.Physics))

	if cfg.Window.FramerateLimit != g.limiter.FPS() {
		g.limiter.SetFPS(cfg.Window.FramerateLimit)
	}

	logger.Info("config reloaded",
		zap.String("source", cfg.Source),
		zap.Int("spawnThreshold", cfg.Spawn.Threshold),
		zap.Int("fpsLimit", cfg.Window.FramerateLimit),
	)
}

func physicsSettings(c config.PhysicsConfig) physics.Settings {
	return physics.Settings{
		Gravity:     c.Gravity,
		TickRate:    c.TickRate,
		Restitution: c.Restitution,
		Friction:    c.Friction,
	}
}

// Camera returns the view camera.
func (g *Game) Camera() *camera.FlyCamera { return g.camera }

// Projection returns the lens.
func (g *Game) Projection() *camera.Projection { return g.lens }

// Bodies returns the body registry.
func (g *Game) Bodies() *physics.Registry { return g.bodies }

// Input returns the held-input state.
func (g *Game) Input() *input.State { return g.keys }

// Throttle returns the spawn throttle.
func (g *Game) Throttle() *Throttle { return g.throttle }

// Viewport returns the current viewport.
func (g *Game) Viewport() Viewport { return g.viewport }

// GroundTransform returns the ground plane model matrix.
func (g *Game) GroundTransform() mgl32.Mat4 { return g.ground.Result() }

// ActiveTexture returns the texture boxes are drawn with.
func (g *Game) ActiveTexture() uint32 { return g.textures[g.active] }

// Frames returns the number of completed frames.
func (g *Game) Frames() uint64 { return g.frames }

// Running reports whether the loop will continue.
func (g *Game) Running() bool { return g.running }

// Close asks the loop to stop after the current frame.
func (g *Game) Close() {
	g.running = false
}
