// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-lander/pkg/control"
)

// SetupInputBindings registers the logical lander buttons with engo
func SetupInputBindings() {
	engo.Input.RegisterButton(control.TurnLeft.String(), engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(control.TurnRight.String(), engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(control.ThrustButton.String(), engo.KeySpace)
}

// Buttons reads the registered bindings from engo's input manager
type Buttons struct{}

// Held implements control.Buttons
func (Buttons) Held(b control.Button) bool {
	return engo.Input.Button(b.String()).Down()
}
