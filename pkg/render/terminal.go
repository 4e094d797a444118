// pkg/render/terminal.go
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-lander/pkg/engine"
	"github.com/opd-ai/go-lander/pkg/particles"
	"github.com/opd-ai/go-lander/pkg/physics"
	"github.com/opd-ai/go-lander/pkg/terrain"
)

var (
	styleSky     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleTerrain = styleSky.Foreground(tcell.NewRGBColor(102, 102, 128))
	styleLander  = styleSky.Foreground(tcell.ColorWhite).Bold(true)
	styleHUD     = styleSky.Foreground(tcell.ColorYellow)
)

const (
	terrainRune  = '#'
	particleRune = '.'
)

// TerminalRenderer draws the scene as characters on a tcell screen.
// Row 0 holds the HUD; the world is stretched over the remaining rows.
type TerminalRenderer struct {
	screen      tcell.Screen
	width       int
	height      int
	worldWidth  float64
	worldHeight float64
}

// NewTerminalRenderer creates a renderer showing a world of the given size
func NewTerminalRenderer(screen tcell.Screen, worldWidth, worldHeight float64) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:      screen,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
	}
	r.Resize(screen.Size())
	return r
}

// Resize updates the character grid dimensions
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// worldToScreen converts world coordinates to a character cell
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	rows := r.height - 1
	if r.worldWidth <= 0 || r.worldHeight <= 0 || rows <= 0 {
		return -1, -1
	}
	screenX := int(math.Floor(pos.X / r.worldWidth * float64(r.width)))
	screenY := 1 + int(math.Floor((r.worldHeight-pos.Y)/r.worldHeight*float64(rows)))
	return screenX, screenY
}

func (r *TerminalRenderer) inWorld(x, y int) bool {
	return x >= 0 && x < r.width && y >= 1 && y < r.height
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Present implements Renderer
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// RenderTerrain fills each column from the surface height to the bottom row
func (r *TerminalRenderer) RenderTerrain(t *terrain.Terrain) {
	for x := 0; x < r.width; x++ {
		worldX := (float64(x) + 0.5) / float64(r.width) * r.worldWidth
		_, top := r.worldToScreen(physics.Vector2D{X: worldX, Y: t.HeightAt(worldX)})
		for y := max(top, 1); y < r.height; y++ {
			r.screen.SetContent(x, y, terrainRune, nil, styleTerrain)
		}
	}
}

// RenderParticles draws exhaust as dots fading from red to black
func (r *TerminalRenderer) RenderParticles(ps []particles.Particle) {
	for _, p := range ps {
		x, y := r.worldToScreen(p.Position)
		if !r.inWorld(x, y) {
			continue
		}
		red := int32(255 * p.Fade())
		r.screen.SetContent(x, y, particleRune, nil, styleSky.Foreground(tcell.NewRGBColor(red, 0, 0)))
	}
}

// RenderLander draws the lander as an arrow pointing along its local up
func (r *TerminalRenderer) RenderLander(lander engine.LanderState) {
	x, y := r.worldToScreen(lander.Position)
	if !r.inWorld(x, y) {
		return
	}
	r.screen.SetContent(x, y, LanderRune(lander.Angle), nil, styleLander)
}

// LanderRune picks the arrow closest to the direction of the lander's local up
func LanderRune(angle float64) rune {
	up := physics.Up.Rotate(angle)
	if math.Abs(up.X) > math.Abs(up.Y) {
		if up.X > 0 {
			return '>'
		}
		return '<'
	}
	if up.Y >= 0 {
		return '^'
	}
	return 'v'
}

// RenderHUD writes the status line across row 0
func (r *TerminalRenderer) RenderHUD(state *engine.GameState) {
	x := 0
	for _, ch := range state.StatusLine() {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, 0, ch, nil, styleHUD)
		x++
	}
}
