// Package particles is a small CPU particle emitter. The per-frame rate and
// initial speed are written by the movement controller; everything else is
// fixed when the emitter is created.
package particles

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-lander/pkg/physics"
)

// Range is a closed interval of offsets
type Range struct {
	Min float64
	Max float64
}

// JitteredValue is a base value plus a uniformly drawn offset from Jitter
type JitteredValue struct {
	Value  float64
	Jitter Range
}

// Fixed returns a value with no jitter
func Fixed(v float64) JitteredValue {
	return JitteredValue{Value: v}
}

// Jittered returns v plus an offset drawn from [min, max)
func Jittered(v, min, max float64) JitteredValue {
	return JitteredValue{Value: v, Jitter: Range{Min: min, Max: max}}
}

// Sample draws one value
func (j JitteredValue) Sample(rng *rand.Rand) float64 {
	span := j.Jitter.Max - j.Jitter.Min
	if span <= 0 {
		return j.Value + j.Jitter.Min
	}
	return j.Value + j.Jitter.Min + rng.Float64()*span
}

// EmitterConfig is the part of an emitter driven each frame
type EmitterConfig struct {
	Rate         float64 // particles per second
	InitialSpeed JitteredValue
}

// Settings are fixed at scene construction
type Settings struct {
	MaxParticles   int
	Lifetime       JitteredValue
	Radius         JitteredValue // spawn distance from the emitter origin
	OpeningAngle   float64       // cone width, radians
	DirectionAngle float64       // cone centre in emitter-local space, radians
	Acceleration   physics.Vector2D
	Offset         physics.Vector2D // emitter origin relative to its parent
}

// ExhaustSettings returns the lander exhaust: a narrow downward cone,
// half-second particles pulled down by a constant acceleration.
func ExhaustSettings() Settings {
	return Settings{
		MaxParticles:   10000,
		Lifetime:       Jittered(0.5, -0.1, 0.1),
		Radius:         Jittered(10, -2, 2),
		OpeningAngle:   math.Pi / 6,
		DirectionAngle: -math.Pi / 2,
		Acceleration:   physics.Vector2D{X: 0, Y: -50},
		Offset:         physics.Vector2D{X: 0, Y: -20},
	}
}

// Particle is one live particle in world space
type Particle struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Age      float64
	Lifetime float64
}

// Fade returns 1 at birth falling linearly to 0 at end of life
func (p Particle) Fade() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return math.Max(0, 1-p.Age/p.Lifetime)
}

// Emitter spawns and advances particles
type Emitter struct {
	Config   EmitterConfig
	Settings Settings

	particles []Particle
	carry     float64 // fractional particles owed from previous frames
	rng       *rand.Rand
}

// NewEmitter creates an idle emitter with a deterministic random source
func NewEmitter(settings Settings, seed uint64) *Emitter {
	return &Emitter{
		Settings:  settings,
		particles: make([]Particle, 0, 256),
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Particles returns the live particles; the slice is reused between updates
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// Update ages and moves live particles, then spawns new ones at the
// parent's position and rotation according to Config.
func (e *Emitter) Update(deltaTime float64, parent physics.Vector2D, rotation float64) {
	live := e.particles[:0]
	for _, p := range e.particles {
		p.Age += deltaTime
		if p.Age >= p.Lifetime {
			continue
		}
		p.Velocity = p.Velocity.Add(e.Settings.Acceleration.Scale(deltaTime))
		p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
		live = append(live, p)
	}
	e.particles = live

	if e.Config.Rate <= 0 {
		e.carry = 0
		return
	}

	e.carry += e.Config.Rate * deltaTime
	spawn := int(e.carry)
	e.carry -= float64(spawn)

	origin := parent.Add(e.Settings.Offset.Rotate(rotation))
	for i := 0; i < spawn && len(e.particles) < e.Settings.MaxParticles; i++ {
		e.particles = append(e.particles, e.spawn(origin, rotation))
	}
}

func (e *Emitter) spawn(origin physics.Vector2D, rotation float64) Particle {
	angle := rotation + e.Settings.DirectionAngle +
		(e.rng.Float64()-0.5)*e.Settings.OpeningAngle
	dir := physics.FromAngle(angle, 1)
	return Particle{
		Position: origin.Add(dir.Scale(e.Settings.Radius.Sample(e.rng))),
		Velocity: dir.Scale(e.Config.InitialSpeed.Sample(e.rng)),
		Lifetime: e.Settings.Lifetime.Sample(e.rng),
	}
}
