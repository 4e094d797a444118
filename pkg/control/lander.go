package control

import (
	"github.com/opd-ai/go-lander/pkg/particles"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// Body is the part of a rigid body the controller drives
type Body interface {
	Rotation() float64
	ApplyImpulse(impulse physics.Vector2D)
	ApplyAngularImpulse(impulse float64)
}

// Lander is a controlled entity. EnginePower is the only state that
// survives between frames and is never negative.
type Lander struct {
	Body        Body
	EnginePower float64
	// Exhaust holds the configuration of every attached emitter
	Exhaust []*particles.EmitterConfig
}

// NewLander creates a lander with an initial engine power, clamped at zero
func NewLander(body Body, enginePower float64, exhaust ...*particles.EmitterConfig) *Lander {
	if enginePower < 0 {
		enginePower = 0
	}
	return &Lander{
		Body:        body,
		EnginePower: enginePower,
		Exhaust:     exhaust,
	}
}
