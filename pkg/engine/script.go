// pkg/engine/script.go
package engine

import (
	"context"

	"github.com/opd-ai/go-lander/pkg/control"
)

// ScriptStep holds a set of buttons for Duration seconds
type ScriptStep struct {
	Duration float64
	Held     control.ButtonSet
}

// Script is a timed input sequence; nothing is held after the last step
type Script []ScriptStep

// ThrustFor holds thrust for the given number of seconds, then releases
func ThrustFor(seconds float64) Script {
	if seconds <= 0 {
		return nil
	}
	return Script{{Duration: seconds, Held: control.ButtonSet{control.ThrustButton: true}}}
}

// At returns the buttons held at time t
func (s Script) At(t float64) control.ButtonSet {
	var start float64
	for _, step := range s {
		if t < start+step.Duration {
			return step.Held
		}
		start += step.Duration
	}
	return nil
}

// RunScript steps the game at a fixed rate until duration seconds have
// been simulated or ctx is cancelled. report, if set, receives a snapshot
// after every simulated second.
func (g *Game) RunScript(ctx context.Context, script Script, duration, deltaTime float64, report func(*GameState)) error {
	frames := int(duration/deltaTime + 0.5)
	perSecond := int(1/deltaTime + 0.5)
	if perSecond < 1 {
		perSecond = 1
	}

	for frame := 1; frame <= frames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.Update(deltaTime, script.At(float64(frame-1)*deltaTime))

		if report != nil && frame%perSecond == 0 {
			report(g.GetGameState())
		}
	}
	return nil
}
