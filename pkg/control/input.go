package control

// Button is a logical input the mapper understands
type Button int

const (
	TurnLeft Button = iota
	TurnRight
	ThrustButton
)

// String returns the binding name used by the frontends
func (b Button) String() string {
	switch b {
	case TurnLeft:
		return "turnLeft"
	case TurnRight:
		return "turnRight"
	case ThrustButton:
		return "thrust"
	default:
		return "unknown"
	}
}

// Buttons reports which logical buttons are held right now
type Buttons interface {
	Held(b Button) bool
}

// ButtonSet is a fixed set of held buttons
type ButtonSet map[Button]bool

// Held implements Buttons
func (s ButtonSet) Held(b Button) bool {
	return s[b]
}

// MapInput reads the held buttons once and pushes the frame's actions.
// Turning is the net of right minus left, so holding both or neither emits
// nothing. Thrust is level-triggered and repeats every frame it is held.
func MapInput(buttons Buttons, queue *Queue) {
	if buttons == nil {
		return
	}

	direction := 0
	if buttons.Held(TurnRight) {
		direction++
	}
	if buttons.Held(TurnLeft) {
		direction--
	}
	if direction != 0 {
		queue.Push(Torque{Direction: float64(direction)})
	}

	if buttons.Held(ThrustButton) {
		queue.Push(Thrust{})
	}
}
