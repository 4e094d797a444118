// Package control turns held buttons into movement intents and movement
// intents into impulses, engine power and exhaust settings, once per frame.
package control

// Action is a movement intent produced by the input mapper. It is either
// Torque or Thrust.
type Action interface {
	isAction()
}

// Torque asks for rotation; Direction is +1 for turn right, -1 for turn left
type Torque struct {
	Direction float64
}

// Thrust asks the engine for more power this frame
type Thrust struct{}

func (Torque) isAction() {}
func (Thrust) isAction() {}

// Queue holds the actions of one frame in emission order
type Queue struct {
	actions []Action
}

// Push appends an action
func (q *Queue) Push(a Action) {
	q.actions = append(q.actions, a)
}

// Actions returns the queued actions in emission order
func (q *Queue) Actions() []Action {
	return q.actions
}

// Len returns the number of queued actions
func (q *Queue) Len() int {
	return len(q.actions)
}

// Reset empties the queue, keeping its storage
func (q *Queue) Reset() {
	clear(q.actions)
	q.actions = q.actions[:0]
}
