// Package config handles sandbox configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Config holds all sandbox settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Physics PhysicsConfig `yaml:"physics"`
	Scene   SceneConfig   `yaml:"scene"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`

	// Source is the file the config was read from, empty for pure defaults.
	Source string `yaml:"-"`
}

// Vec3 is a YAML-friendly 3-component vector.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Mgl returns the vector as an mgl32.Vec3.
func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// WindowConfig holds display settings. These are fixed once the window is open.
type WindowConfig struct {
	Title          string `yaml:"title"`
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	DepthBits      int    `yaml:"depth_bits"`
	FramerateLimit int    `yaml:"framerate_limit"` // frames/sec, 0 = uncapped
	VSync          bool   `yaml:"vsync"`
}

// CameraConfig holds projection and free-fly camera settings.
type CameraConfig struct {
	FOV        float32 `yaml:"fov"` // vertical, radians
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	Position   Vec3    `yaml:"position"`
	MoveStep   float32 `yaml:"move_step"`   // world units per frame
	RotateStep float32 `yaml:"rotate_step"` // radians per frame
}

// SpawnConfig controls bodies created with the mouse.
type SpawnConfig struct {
	Threshold int     `yaml:"threshold"` // held frames between spawns, minus one
	Distance  float32 `yaml:"distance"`
	Scale     float32 `yaml:"scale"`
	Mass      float32 `yaml:"mass"`
}

// PhysicsConfig holds integrator constants.
type PhysicsConfig struct {
	Gravity     float32 `yaml:"gravity"`
	TickRate    int     `yaml:"tick_rate"` // ticks per simulated second
	Restitution float32 `yaml:"restitution"`
	Friction    float32 `yaml:"friction"`
}

// SceneConfig describes the two permanent bodies.
type SceneConfig struct {
	BoxPosition Vec3    `yaml:"box_position"`
	BoxMass     float32 `yaml:"box_mass"`
	GroundScale Vec3    `yaml:"ground_scale"`
}

// AssetsConfig holds texture paths relative to Root.
type AssetsConfig struct {
	Root         string `yaml:"root"`
	IndexTexture string `yaml:"index_texture"`
	AltTexture   string `yaml:"alt_texture"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the stock sandbox setup.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:          "PhysCubes",
			Width:          1600,
			Height:         900,
			DepthBits:      32,
			FramerateLimit: 60,
			VSync:          false,
		},
		Camera: CameraConfig{
			FOV:        0.45,
			Near:       0.1,
			Far:        1000,
			Position:   Vec3{X: 0, Y: 5, Z: 50},
			MoveStep:   0.25,
			RotateStep: 0.02,
		},
		Spawn: SpawnConfig{
			Threshold: 15,
			Distance:  5,
			Scale:     0.5,
			Mass:      1,
		},
		Physics: PhysicsConfig{
			Gravity:     -9.81,
			TickRate:    60,
			Restitution: 0.4,
			Friction:    0.05,
		},
		Scene: SceneConfig{
			BoxPosition: Vec3{X: 0, Y: 10, Z: 0},
			BoxMass:     1,
			GroundScale: Vec3{X: 10, Y: 0.5, Z: 10},
		},
		Assets: AssetsConfig{
			Root:         "assets",
			IndexTexture: "Checker.png",
			AltTexture:   "DonkeyCube.bmp",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the sandbox cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FramerateLimit < 0 {
		errs = append(errs, fmt.Errorf("framerate_limit %d must not be negative", c.Window.FramerateLimit))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("camera planes near=%g far=%g must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if c.Spawn.Threshold < 0 {
		errs = append(errs, fmt.Errorf("spawn threshold %d must not be negative", c.Spawn.Threshold))
	}
	if c.Spawn.Mass <= 0 || c.Scene.BoxMass <= 0 {
		errs = append(errs, errors.New("body masses must be positive"))
	}
	if c.Physics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("physics tick_rate %d must be positive", c.Physics.TickRate))
	}
	if c.Assets.IndexTexture == "" || c.Assets.AltTexture == "" {
		errs = append(errs, errors.New("both textures must be set"))
	}
	return errors.Join(errs...)
}
