package control

// Tuning holds the constants of the movement model. The defaults are tuned
// for feel; the sign of torque and the gain/decay asymmetry are deliberate.
type Tuning struct {
	TorqueImpulse      float64 // angular impulse per Torque action
	ThrustGainRate     float64 // power gained per second of Thrust
	DecayRate          float64 // power lost per second, always applied
	ThrustImpulseScale float64 // linear impulse per unit of power
	ExhaustRateScale   float64 // particles per second per unit of power
	ExhaustSpeedScale  float64 // initial particle speed per unit of power
	ExhaustJitterBase  float64 // speed jitter span at zero power
}

// DefaultTuning returns the stock lander tuning
func DefaultTuning() Tuning {
	return Tuning{
		TorqueImpulse:      10000,
		ThrustGainRate:     0.4,
		DecayRate:          0.2,
		ThrustImpulseScale: 10000,
		ExhaustRateScale:   1000,
		ExhaustSpeedScale:  500,
		ExhaustJitterBase:  100,
	}
}
