// Package noise provides the seeded height fields used for terrain generation.
package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Sampler returns a height in roughly [-1, 1] for a point of the field.
// Implementations are deterministic for a given seed.
type Sampler interface {
	Sample(x, y float64) float64
}

// Func adapts a plain function to the Sampler interface
type Func func(x, y float64) float64

// Sample implements Sampler
func (f Func) Sample(x, y float64) float64 {
	return f(x, y)
}

// Kind names a noise backend
type Kind string

const (
	KindPerlin      Kind = "perlin"
	KindOpenSimplex Kind = "opensimplex"
)

// ErrUnknownKind is returned by New for an unsupported backend name
var ErrUnknownKind = errors.New("unknown noise kind")

// Params configures a multi-octave sampler
type Params struct {
	Kind        Kind
	Seed        int64
	Octaves     int
	Frequency   float64 // scale applied to input coordinates
	Lacunarity  float64 // frequency multiplier per octave
	Persistence float64 // amplitude multiplier per octave
}

// DefaultParams matches a basic multi-fractal: six octaves starting at
// frequency 2, doubling frequency and halving amplitude each octave.
func DefaultParams(seed int64) Params {
	return Params{
		Kind:        KindPerlin,
		Seed:        seed,
		Octaves:     6,
		Frequency:   2,
		Lacunarity:  2,
		Persistence: 0.5,
	}
}

// New creates the sampler selected by params.Kind
func New(params Params) (Sampler, error) {
	if params.Octaves <= 0 {
		return nil, fmt.Errorf("octaves must be positive, got %d", params.Octaves)
	}
	switch params.Kind {
	case KindPerlin, "":
		return NewPerlin(params), nil
	case KindOpenSimplex:
		return NewOpenSimplex(params), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, params.Kind)
	}
}

// Perlin samples classic Perlin noise; the octave sum is done by go-perlin
type Perlin struct {
	noise     *perlin.Perlin
	frequency float64
}

// NewPerlin creates a Perlin sampler. go-perlin divides amplitude by alpha
// and multiplies frequency by beta per octave.
func NewPerlin(params Params) *Perlin {
	alpha := 2.0
	if params.Persistence > 0 {
		alpha = 1 / params.Persistence
	}
	beta := params.Lacunarity
	if beta <= 0 {
		beta = 2
	}
	return &Perlin{
		noise:     perlin.NewPerlin(alpha, beta, int32(params.Octaves), params.Seed),
		frequency: frequencyOrOne(params.Frequency),
	}
}

// Sample implements Sampler
func (p *Perlin) Sample(x, y float64) float64 {
	return p.noise.Noise2D(x*p.frequency, y*p.frequency)
}

// OpenSimplex samples fractal Brownian motion over OpenSimplex noise
type OpenSimplex struct {
	noise       opensimplex.Noise
	octaves     int
	frequency   float64
	lacunarity  float64
	persistence float64
}

// NewOpenSimplex creates an OpenSimplex fBm sampler
func NewOpenSimplex(params Params) *OpenSimplex {
	lacunarity := params.Lacunarity
	if lacunarity <= 0 {
		lacunarity = 2
	}
	persistence := params.Persistence
	if persistence <= 0 {
		persistence = 0.5
	}
	return &OpenSimplex{
		noise:       opensimplex.New(params.Seed),
		octaves:     params.Octaves,
		frequency:   frequencyOrOne(params.Frequency),
		lacunarity:  lacunarity,
		persistence: persistence,
	}
}

// Sample implements Sampler, normalising the octave sum back into [-1, 1]
func (s *OpenSimplex) Sample(x, y float64) float64 {
	var total, maxValue float64
	frequency, amplitude := s.frequency, 1.0

	for i := 0; i < s.octaves; i++ {
		total += s.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= s.persistence
		frequency *= s.lacunarity
	}

	return total / maxValue
}

func frequencyOrOne(f float64) float64 {
	if f <= 0 {
		return 1
	}
	return f
}
