// Package terrain builds the one-shot procedural ground: a noise-driven
// boundary polyline, a filled surface mesh for rendering and a polyline
// collider for physics, all derived from the same samples.
package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/opd-ai/go-lander/pkg/noise"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// ErrInvalidDimensions is returned when width, half-height or step is not positive
var ErrInvalidDimensions = errors.New("terrain dimensions must be positive")

// DefaultStep is the sampling step in the normalised [0, 1] domain
const DefaultStep = 0.01

// Params describes the domain the terrain spans
type Params struct {
	Width      float64
	HalfHeight float64
	Step       float64
}

// Mesh is the renderable surface. Outline is the boundary followed by the
// closing point, implicitly closed back to the first sample; Triangles
// tessellate that region using only Outline's points, three per triangle.
type Mesh struct {
	Outline   []physics.Vector2D
	Triangles []physics.Vector2D
}

// Terrain is immutable once built
type Terrain struct {
	Params   Params
	Boundary []physics.Vector2D
	Collider *physics.Polyline
	Surface  Mesh
	// Origin places the mesh's local (0, 0) in the world
	Origin physics.Vector2D
}

// SampleCount returns floor(1/step) + 1. A small tolerance keeps steps
// like 0.01 from losing the last sample to rounding.
func SampleCount(step float64) int {
	return int(math.Floor(1/step+1e-9)) + 1
}

// Build samples the field across the domain and derives the surface and collider
func Build(params Params, sampler noise.Sampler) (*Terrain, error) {
	if params.Width <= 0 || params.HalfHeight <= 0 || params.Step <= 0 || params.Step > 1 {
		return nil, fmt.Errorf("%w: width=%v halfHeight=%v step=%v",
			ErrInvalidDimensions, params.Width, params.HalfHeight, params.Step)
	}
	if sampler == nil {
		return nil, errors.New("terrain sampler is nil")
	}

	n := SampleCount(params.Step)
	boundary := make([]physics.Vector2D, 0, n)
	for i := 0; i < n; i++ {
		x := float64(i) * params.Step
		height := sampler.Sample(x, 0)
		boundary = append(boundary, physics.Vector2D{
			X: x * params.Width,
			Y: height*params.HalfHeight + params.HalfHeight,
		})
	}

	return &Terrain{
		Params:   params,
		Boundary: boundary,
		Collider: physics.NewPolyline(boundary),
		Surface:  buildMesh(boundary, params.Width),
	}, nil
}

// ClosingPoint is the bottom-right corner that closes the surface region
func (t *Terrain) ClosingPoint() physics.Vector2D {
	return physics.Vector2D{X: t.Params.Width, Y: 0}
}

// HeightAt linearly interpolates the boundary at world x, clamping to the ends
func (t *Terrain) HeightAt(x float64) float64 {
	b := t.Boundary
	if len(b) == 0 {
		return 0
	}
	local := x - t.Origin.X
	if local <= b[0].X {
		return b[0].Y + t.Origin.Y
	}
	for i := 1; i < len(b); i++ {
		if local <= b[i].X {
			f := (local - b[i-1].X) / (b[i].X - b[i-1].X)
			return b[i-1].Y + f*(b[i].Y-b[i-1].Y) + t.Origin.Y
		}
	}
	return b[len(b)-1].Y + t.Origin.Y
}

func buildMesh(boundary []physics.Vector2D, width float64) Mesh {
	outline := make([]physics.Vector2D, 0, len(boundary)+1)
	outline = append(outline, boundary...)
	outline = append(outline, physics.Vector2D{X: width, Y: 0})

	return Mesh{Outline: outline, Triangles: triangulate(outline)}
}

// triangulate ear-clips the polygon closed from its last point back to the
// first. Every output vertex is a polygon vertex. Collinear runs produce
// zero-area triangles so that no sample drops out of the mesh.
func triangulate(polygon []physics.Vector2D) []physics.Vector2D {
	n := len(polygon)
	if n < 3 {
		return nil
	}

	orientation := 1.0
	if signedArea(polygon) < 0 {
		orientation = -1
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	triangles := make([]physics.Vector2D, 0, 3*(n-2))
	for len(remaining) > 3 {
		ear := findEar(polygon, remaining, orientation)
		if ear < 0 {
			// self-intersecting outline; clip anyway so the loop ends
			ear = 0
		}
		m := len(remaining)
		prev, cur, next := remaining[(ear+m-1)%m], remaining[ear], remaining[(ear+1)%m]
		triangles = append(triangles, polygon[prev], polygon[cur], polygon[next])
		remaining = append(remaining[:ear], remaining[ear+1:]...)
	}
	return append(triangles, polygon[remaining[0]], polygon[remaining[1]], polygon[remaining[2]])
}

// findEar returns the position in remaining of a clippable vertex, or -1
func findEar(polygon []physics.Vector2D, remaining []int, orientation float64) int {
	m := len(remaining)
	for i := range remaining {
		prev, cur, next := remaining[(i+m-1)%m], remaining[i], remaining[(i+1)%m]
		a, b, c := polygon[prev], polygon[cur], polygon[next]
		if b.Sub(a).Cross(c.Sub(b))*orientation < 0 {
			continue // reflex
		}

		ear := true
		for _, j := range remaining {
			if j == prev || j == cur || j == next {
				continue
			}
			if insideTriangle(polygon[j], a, b, c, orientation) {
				ear = false
				break
			}
		}
		if ear {
			return i
		}
	}
	return -1
}

// insideTriangle reports whether p lies strictly inside triangle abc
func insideTriangle(p, a, b, c physics.Vector2D, orientation float64) bool {
	return b.Sub(a).Cross(p.Sub(a))*orientation > 0 &&
		c.Sub(b).Cross(p.Sub(b))*orientation > 0 &&
		a.Sub(c).Cross(p.Sub(c))*orientation > 0
}

// signedArea is positive for counter-clockwise polygons
func signedArea(polygon []physics.Vector2D) float64 {
	area := 0.0
	for i, p := range polygon {
		q := polygon[(i+1)%len(polygon)]
		area += p.Cross(q)
	}
	return area / 2
}
