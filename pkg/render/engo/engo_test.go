package engo

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/control"
	"github.com/opd-ai/go-lander/pkg/engine"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/noise"
	"github.com/opd-ai/go-lander/pkg/particles"
	"github.com/opd-ai/go-lander/pkg/physics"
	"github.com/opd-ai/go-lander/pkg/terrain"
)

const epsilon = 1e-4

func TestCamera_WorldToScreen(t *testing.T) {
	camera := NewCamera(1280, 720, 640, 360)

	tests := []struct {
		name  string
		world physics.Vector2D
		want  engo.Point
	}{
		{"bottom-left", physics.Vector2D{X: 0, Y: 0}, engo.Point{X: 0, Y: 360}},
		{"top-left", physics.Vector2D{X: 0, Y: 720}, engo.Point{X: 0, Y: 0}},
		{"centre", physics.Vector2D{X: 640, Y: 360}, engo.Point{X: 320, Y: 180}},
		{"top-right", physics.Vector2D{X: 1280, Y: 720}, engo.Point{X: 640, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := camera.WorldToScreen(tt.world)
			if got != tt.want {
				t.Errorf("WorldToScreen(%v) = %v, want %v", tt.world, got, tt.want)
			}
			back := camera.ScreenToWorld(got)
			if math.Abs(back.X-tt.world.X) > epsilon || math.Abs(back.Y-tt.world.Y) > epsilon {
				t.Errorf("ScreenToWorld(%v) = %v, want %v", got, back, tt.world)
			}
		})
	}
}

func TestCamera_ZeroWorld(t *testing.T) {
	camera := NewCamera(0, 0, 100, 100)
	if camera.ScaleX() != 1 || camera.ScaleY() != 1 {
		t.Errorf("zero-sized world should scale 1:1, got %v, %v", camera.ScaleX(), camera.ScaleY())
	}
}

func TestDegrees(t *testing.T) {
	tests := []struct {
		radians float64
		want    float32
	}{
		{0, 0},
		{-math.Pi / 2, 90},
		{math.Pi / 2, -90},
		{math.Pi, -180},
	}
	for _, tt := range tests {
		if got := Degrees(tt.radians); math.Abs(float64(got-tt.want)) > epsilon {
			t.Errorf("Degrees(%v) = %v, want %v", tt.radians, got, tt.want)
		}
	}
}

func TestMeshDrawable_Normalised(t *testing.T) {
	stub := func(x, _ float64) float64 { return x }
	terr, err := terrain.Build(terrain.Params{Width: 200, HalfHeight: 50, Step: 0.5}, noise.Func(stub))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	camera := NewCamera(200, 100, 200, 100)
	points, space := MeshDrawable(terr.Surface, terr.Origin, camera)

	if len(points) != len(terr.Surface.Triangles) {
		t.Fatalf("points = %d, want %d", len(points), len(terr.Surface.Triangles))
	}
	for i, p := range points {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("point %d = %v outside [0, 1]", i, p)
		}
	}

	// highest boundary point is (200, 100), the screen's top edge
	if space.Position.X != 0 || space.Position.Y != 0 {
		t.Errorf("space position = %v, want (0, 0)", space.Position)
	}
	if space.Width != 200 || space.Height != 100 {
		t.Errorf("space size = %vx%v, want 200x100", space.Width, space.Height)
	}

	// first ear is closing point, first sample, second sample: (200,0), (0,50), (100,75)
	want := []engo.Point{{X: 1, Y: 1}, {X: 0, Y: 0.5}, {X: 0.5, Y: 0.25}}
	for i, w := range want {
		if math.Abs(float64(points[i].X-w.X)) > epsilon || math.Abs(float64(points[i].Y-w.Y)) > epsilon {
			t.Errorf("point %d = %v, want %v", i, points[i], w)
		}
	}
}

func TestMeshDrawable_Empty(t *testing.T) {
	points, space := MeshDrawable(terrain.Mesh{}, physics.Vector2D{}, NewCamera(1, 1, 1, 1))
	if points != nil || space.Width != 0 {
		t.Errorf("empty mesh should produce nothing, got %v, %+v", points, space)
	}
}

func TestParticleColor_Fades(t *testing.T) {
	fresh := ParticleColor(particles.Particle{Lifetime: 1})
	if fresh.R != 255 || fresh.A != 255 {
		t.Errorf("fresh particle = %+v, want opaque red", fresh)
	}
	half := ParticleColor(particles.Particle{Age: 0.5, Lifetime: 1})
	if half.R != 127 || half.A != 127 {
		t.Errorf("half-life particle = %+v, want 127", half)
	}
	dead := ParticleColor(particles.Particle{Age: 1, Lifetime: 1})
	if dead.A != 0 {
		t.Errorf("expired particle alpha = %d, want 0", dead.A)
	}
}

func TestPatternImage(t *testing.T) {
	img := patternImage(landerPattern)
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 10 {
		t.Fatalf("image size = %v, want 10x10", img.Bounds())
	}
	if img.NRGBAAt(0, 0).A != 0 {
		t.Error("empty cell should be transparent")
	}
	if img.NRGBAAt(4, 0) != patternPalette[1] {
		t.Errorf("hull cell = %v, want %v", img.NRGBAAt(4, 0), patternPalette[1])
	}
	if img.NRGBAAt(4, 2) != patternPalette[2] {
		t.Errorf("window cell = %v, want %v", img.NRGBAAt(4, 2), patternPalette[2])
	}

	px := patternImage(particlePattern)
	if px.Bounds().Dx() != 1 || px.NRGBAAt(0, 0).A != 255 {
		t.Error("particle pattern should be one opaque pixel")
	}
}

func TestLanderSystem_DrivesGame(t *testing.T) {
	game, err := engine.NewGame(context.Background(), config.DefaultConfig(), 3, logging.NewLoggerTo(io.Discard))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	system := NewLanderSystem(game, control.ButtonSet{control.ThrustButton: true}, nil, nil)

	before := game.Lander.EnginePower
	for i := 0; i < 30; i++ {
		system.Update(1.0 / 60)
	}

	if game.CurrentTick != 30 {
		t.Errorf("tick = %d, want 30", game.CurrentTick)
	}
	if game.Lander.EnginePower <= before {
		t.Errorf("holding thrust should raise power above %v, got %v", before, game.Lander.EnginePower)
	}
}
