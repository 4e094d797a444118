// pkg/render/engo/camera.go
package engo

import (
	"math"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-lander/pkg/physics"
)

// Camera maps the y-up world onto engo's y-down screen. The whole terrain
// domain is always in view, so the mapping is fixed for a scene.
type Camera struct {
	WorldWidth   float64
	WorldHeight  float64
	ScreenWidth  float64
	ScreenHeight float64
}

// NewCamera creates a camera showing [0, worldWidth] x [0, worldHeight]
func NewCamera(worldWidth, worldHeight, screenWidth, screenHeight float64) *Camera {
	return &Camera{
		WorldWidth:   worldWidth,
		WorldHeight:  worldHeight,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// ScaleX returns screen pixels per world unit horizontally
func (c *Camera) ScaleX() float64 {
	if c.WorldWidth == 0 {
		return 1
	}
	return c.ScreenWidth / c.WorldWidth
}

// ScaleY returns screen pixels per world unit vertically
func (c *Camera) ScaleY() float64 {
	if c.WorldHeight == 0 {
		return 1
	}
	return c.ScreenHeight / c.WorldHeight
}

// WorldToScreen converts a world position to a screen point
func (c *Camera) WorldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(worldPos.X * c.ScaleX()),
		Y: float32((c.WorldHeight - worldPos.Y) * c.ScaleY()),
	}
}

// ScreenToWorld converts a screen point back to a world position
func (c *Camera) ScreenToWorld(screenPos engo.Point) physics.Vector2D {
	return physics.Vector2D{
		X: float64(screenPos.X) / c.ScaleX(),
		Y: c.WorldHeight - float64(screenPos.Y)/c.ScaleY(),
	}
}

// Degrees converts a counter-clockwise world angle in radians to engo's
// clockwise rotation in degrees
func Degrees(angle float64) float32 {
	return float32(-angle * 180 / math.Pi)
}
