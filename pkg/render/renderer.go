// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-lander/pkg/engine"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/particles"
	"github.com/opd-ai/go-lander/pkg/terrain"
)

// Renderer draws one frame of the scene
type Renderer interface {
	Clear()
	RenderTerrain(t *terrain.Terrain)
	RenderParticles(ps []particles.Particle)
	RenderLander(lander engine.LanderState)
	RenderHUD(state *engine.GameState)
	Present()
}

// Draw renders a full frame, back to front
func Draw(r Renderer, t *terrain.Terrain, state *engine.GameState) {
	r.Clear()
	if t != nil {
		r.RenderTerrain(t)
	}
	if state != nil {
		r.RenderParticles(state.Particles)
		r.RenderLander(state.Lander)
		r.RenderHUD(state)
	}
	r.Present()
}

// NullRenderer logs what it would draw. Headless runs use it.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderTerrain implements Renderer.
func (d *NullRenderer) RenderTerrain(t *terrain.Terrain) {
	d.logger.Debug(context.Background(), "RenderTerrain called",
		"boundary_points", len(t.Boundary),
		"triangles", len(t.Surface.Triangles)/3,
	)
}

// RenderParticles implements Renderer.
func (d *NullRenderer) RenderParticles(ps []particles.Particle) {
	d.logger.Debug(context.Background(), "RenderParticles called", "count", len(ps))
}

// RenderLander implements Renderer.
func (d *NullRenderer) RenderLander(lander engine.LanderState) {
	d.logger.Debug(context.Background(), "RenderLander called",
		"x", lander.Position.X,
		"y", lander.Position.Y,
		"angle", lander.Angle,
		"engine_power", lander.EnginePower,
	)
}

// RenderHUD implements Renderer.
func (d *NullRenderer) RenderHUD(state *engine.GameState) {
	d.logger.Debug(context.Background(), "RenderHUD called", "status", state.StatusLine())
}
