package control

import (
	"math"

	"github.com/opd-ai/go-lander/pkg/particles"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// ApplyImpulses decays each lander's power, pushes it along its local up
// axis and refreshes its exhaust emitters.
func ApplyImpulses(tuning Tuning, deltaTime float64, landers []*Lander) {
	for _, lander := range landers {
		lander.EnginePower = Decay(lander.EnginePower, tuning.DecayRate*deltaTime)

		up := physics.Up.Rotate(lander.Body.Rotation()).Normalize()
		lander.Body.ApplyImpulse(up.Scale(tuning.ThrustImpulseScale * lander.EnginePower))

		exhaust := Exhaust(tuning, lander.EnginePower)
		for _, cfg := range lander.Exhaust {
			if cfg != nil {
				*cfg = exhaust
			}
		}
	}
}

// Decay subtracts amount from power and floors the result at zero
func Decay(power, amount float64) float64 {
	power -= amount
	if power < 0 || math.IsNaN(power) {
		return 0
	}
	return power
}

// Exhaust maps engine power to emitter settings. It depends on power alone.
func Exhaust(tuning Tuning, power float64) particles.EmitterConfig {
	return particles.EmitterConfig{
		Rate: tuning.ExhaustRateScale * power,
		InitialSpeed: particles.Jittered(
			tuning.ExhaustSpeedScale*power,
			0,
			tuning.ExhaustJitterBase*(1+power),
		),
	}
}
