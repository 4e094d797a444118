package particles

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-lander/pkg/physics"
)

func TestJitteredValue_Sample(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	if got := Fixed(3).Sample(rng); got != 3 {
		t.Errorf("Fixed(3).Sample() = %v, want 3", got)
	}

	j := Jittered(500, 0, 140)
	for i := 0; i < 1000; i++ {
		v := j.Sample(rng)
		if v < 500 || v >= 640 {
			t.Fatalf("Sample() = %v, want [500, 640)", v)
		}
	}

	inverted := Jittered(1, 2, -2)
	if got := inverted.Sample(rng); got != 3 {
		t.Errorf("empty jitter range Sample() = %v, want 3", got)
	}
}

func TestEmitter_IdleWithZeroRate(t *testing.T) {
	e := NewEmitter(ExhaustSettings(), 1)
	for i := 0; i < 60; i++ {
		e.Update(1.0/60.0, physics.Vector2D{}, 0)
	}
	if n := len(e.Particles()); n != 0 {
		t.Errorf("Expected no particles at zero rate, got %d", n)
	}
}

func TestEmitter_SpawnRate(t *testing.T) {
	e := NewEmitter(ExhaustSettings(), 1)
	e.Config = EmitterConfig{Rate: 120, InitialSpeed: Fixed(100)}

	e.Update(0.5, physics.Vector2D{}, 0)
	if n := len(e.Particles()); n != 60 {
		t.Errorf("Expected 60 particles after 0.5s at 120/s, got %d", n)
	}
}

func TestEmitter_FractionalRateCarries(t *testing.T) {
	settings := ExhaustSettings()
	settings.Lifetime = Fixed(100)
	e := NewEmitter(settings, 1)
	e.Config = EmitterConfig{Rate: 2, InitialSpeed: Fixed(0)}

	for i := 0; i < 10; i++ {
		e.Update(0.25, physics.Vector2D{}, 0)
	}
	if n := len(e.Particles()); n != 5 {
		t.Errorf("Expected 5 particles from 10 half-particle frames, got %d", n)
	}
}

func TestEmitter_ParticlesExpire(t *testing.T) {
	e := NewEmitter(ExhaustSettings(), 1)
	e.Config = EmitterConfig{Rate: 100, InitialSpeed: Fixed(10)}
	e.Update(0.1, physics.Vector2D{}, 0)

	e.Config.Rate = 0
	for i := 0; i < 60; i++ {
		e.Update(1.0/60.0, physics.Vector2D{}, 0)
	}
	if n := len(e.Particles()); n != 0 {
		t.Errorf("Expected every particle to expire after 1s, got %d", n)
	}
}

func TestEmitter_MaxParticles(t *testing.T) {
	settings := ExhaustSettings()
	settings.MaxParticles = 10
	e := NewEmitter(settings, 1)
	e.Config = EmitterConfig{Rate: 1000, InitialSpeed: Fixed(0)}

	e.Update(0.1, physics.Vector2D{}, 0)
	if n := len(e.Particles()); n != 10 {
		t.Errorf("Expected the emitter to cap at 10 particles, got %d", n)
	}
}

func TestEmitter_ExhaustPointsDown(t *testing.T) {
	e := NewEmitter(ExhaustSettings(), 9)
	e.Config = EmitterConfig{Rate: 600, InitialSpeed: Fixed(100)}
	parent := physics.Vector2D{X: 100, Y: 100}

	e.Update(0.1, parent, 0)
	for _, p := range e.Particles() {
		if p.Velocity.Y >= 0 {
			t.Fatalf("Velocity %v, expected exhaust to travel downward", p.Velocity)
		}
		if p.Position.Y >= parent.Y {
			t.Fatalf("Position %v, expected spawn below the parent", p.Position)
		}
		// cone is 30 degrees wide around straight down
		angle := math.Atan2(-p.Velocity.X, -p.Velocity.Y)
		if math.Abs(angle) > math.Pi/12+1e-9 {
			t.Fatalf("Exhaust angle %v outside the cone", angle)
		}
	}
}

func TestParticle_Fade(t *testing.T) {
	tests := []struct {
		p        Particle
		expected float64
	}{
		{Particle{Age: 0, Lifetime: 0.5}, 1},
		{Particle{Age: 0.25, Lifetime: 0.5}, 0.5},
		{Particle{Age: 1, Lifetime: 0.5}, 0},
		{Particle{Age: 0, Lifetime: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.p.Fade(); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Fade(%+v) = %v, want %v", tt.p, got, tt.expected)
		}
	}
}
