package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/SignalWalker/PhysCubes/internal/logger"
)

// Resize brings the lens, ground transform, camera and viewport in line with
// a new surface size. It runs during event dispatch, so the next draw always
// sees all four updated together.
func (g *Game) Resize(width, height int) {
	if !g.lens.Resize(width, height) {
		logger.Debug("ignoring degenerate resize", zap.Int("width", width), zap.Int("height", height))
		return
	}

	g.rebuildGround()
	g.camera.Refresh()

	g.viewport = Viewport{X: 0, Y: 0, Width: width, Height: height}
	g.renderer.SetViewport(0, 0, width, height)

	logger.Debug("resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("aspect", g.lens.Aspect),
	)
}

// rebuildGround derives the ground plane model transform from scratch.
func (g *Game) rebuildGround() {
	g.ground.Clear()
	g.ground.Push(mgl32.Translate3D(0, 0, 0))
}
