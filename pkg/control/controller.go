package control

// Controller runs the per-frame movement pipeline for a set of landers
type Controller struct {
	Tuning  Tuning
	Landers []*Lander

	queue Queue
}

// NewController creates a controller for the given landers
func NewController(tuning Tuning, landers ...*Lander) *Controller {
	return &Controller{
		Tuning:  tuning,
		Landers: landers,
	}
}

// Step runs one frame: map input, apply movement, apply impulses. The order
// is fixed so that actions are always consumed in the frame they are made.
func (c *Controller) Step(deltaTime float64, buttons Buttons) {
	c.queue.Reset()
	MapInput(buttons, &c.queue)
	c.StepActions(deltaTime, c.queue.Actions())
}

// StepActions runs the movement and impulse stages for a prepared list of actions
func (c *Controller) StepActions(deltaTime float64, actions []Action) {
	ApplyMovement(c.Tuning, deltaTime, actions, c.Landers)
	ApplyImpulses(c.Tuning, deltaTime, c.Landers)
}
