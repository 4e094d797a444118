// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/engine"
	"github.com/opd-ai/go-lander/pkg/particles"
	"github.com/opd-ai/go-lander/pkg/physics"
	"github.com/opd-ai/go-lander/pkg/terrain"
)

const (
	// landerSpriteSize is the drawn size; the collider is slightly smaller
	landerSpriteSize = 50
	particleSize     = 3
	particlePoolSize = 2048
)

var (
	backgroundColor = color.NRGBA{13, 13, 26, 255}
	terrainColor    = color.NRGBA{102, 102, 128, 255}
)

// sprite is an entity drawn by common.RenderSystem
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// SceneRenderer keeps the render entities of one lander scene in step
// with the game state
type SceneRenderer struct {
	camera       *Camera
	renderSystem *common.RenderSystem
	assets       *AssetManager

	terrain   *sprite
	lander    *sprite
	particles []*sprite
}

// NewSceneRenderer creates a renderer drawing through the given render system
func NewSceneRenderer(renderSystem *common.RenderSystem, assets *AssetManager, camera *Camera) *SceneRenderer {
	return &SceneRenderer{
		camera:       camera,
		renderSystem: renderSystem,
		assets:       assets,
	}
}

// Initialize creates the terrain, lander and particle pool entities
func (r *SceneRenderer) Initialize(t *terrain.Terrain) {
	common.SetBackground(backgroundColor)

	points, space := MeshDrawable(t.Surface, t.Origin, r.camera)
	r.terrain = r.add(common.ComplexTriangles{Points: points}, terrainColor, space, 0)

	r.particles = make([]*sprite, particlePoolSize)
	for i := range r.particles {
		p := r.add(r.assets.ParticleSprite(), color.NRGBA{255, 0, 0, 255}, common.SpaceComponent{
			Width:  particleSize,
			Height: particleSize,
		}, 1)
		p.Hidden = true
		r.particles[i] = p
	}

	r.lander = r.add(r.assets.LanderSprite(), color.White, common.SpaceComponent{
		Width:  landerSpriteSize,
		Height: landerSpriteSize,
	}, 2)
}

func (r *SceneRenderer) add(drawable common.Drawable, c color.Color, space common.SpaceComponent, z float32) *sprite {
	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.RenderComponent = common.RenderComponent{Drawable: drawable, Color: c}
	s.RenderComponent.SetZIndex(z)
	s.SpaceComponent = space
	r.renderSystem.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

// Sync moves the lander sprite and reassigns the particle pool
func (r *SceneRenderer) Sync(state *engine.GameState) {
	r.lander.Rotation = Degrees(state.Lander.Angle)
	r.lander.SetCenter(r.camera.WorldToScreen(state.Lander.Position))

	visible := len(state.Particles)
	if visible > len(r.particles) {
		visible = len(r.particles)
	}
	for i, s := range r.particles {
		if i >= visible {
			s.Hidden = true
			continue
		}
		p := state.Particles[i]
		s.Hidden = false
		s.Color = ParticleColor(p)
		s.Rotation = Degrees(math.Atan2(p.Velocity.Y, p.Velocity.X))
		s.SetCenter(r.camera.WorldToScreen(p.Position))
	}
}

// ParticleColor fades from opaque red to transparent black over a
// particle's life
func ParticleColor(p particles.Particle) color.NRGBA {
	f := p.Fade()
	return color.NRGBA{R: uint8(255 * f), A: uint8(255 * f)}
}

// MeshDrawable converts the terrain triangles to screen space and
// normalises them into the returned space component, as
// common.ComplexTriangles expects.
func MeshDrawable(mesh terrain.Mesh, origin physics.Vector2D, camera *Camera) ([]engo.Point, common.SpaceComponent) {
	if len(mesh.Triangles) == 0 {
		return nil, common.SpaceComponent{}
	}

	screen := make([]engo.Point, len(mesh.Triangles))
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -float32(math.MaxFloat32), -float32(math.MaxFloat32)
	for i, v := range mesh.Triangles {
		p := camera.WorldToScreen(v.Add(origin))
		screen[i] = p
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	width, height := maxX-minX, maxY-minY
	for i, p := range screen {
		screen[i] = engo.Point{X: normalise(p.X-minX, width), Y: normalise(p.Y-minY, height)}
	}

	return screen, common.SpaceComponent{
		Position: engo.Point{X: minX, Y: minY},
		Width:    width,
		Height:   height,
	}
}

func normalise(v, size float32) float32 {
	if size == 0 {
		return 0
	}
	return v / size
}
