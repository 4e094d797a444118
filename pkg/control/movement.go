package control

// ApplyMovement feeds every queued action, in order, to every lander.
// Torque applies its own angular impulse, inverted so that turning right
// rotates clockwise; Thrust adds power scaled by deltaTime.
func ApplyMovement(tuning Tuning, deltaTime float64, actions []Action, landers []*Lander) {
	for _, action := range actions {
		for _, lander := range landers {
			switch a := action.(type) {
			case Torque:
				lander.Body.ApplyAngularImpulse(-a.Direction * tuning.TorqueImpulse)
			case Thrust:
				lander.EnginePower += tuning.ThrustGainRate * deltaTime
			}
		}
	}
}
