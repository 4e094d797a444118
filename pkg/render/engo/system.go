// pkg/render/engo/system.go
package engo

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-lander/pkg/control"
	"github.com/opd-ai/go-lander/pkg/engine"
)

// LanderSystem advances the game once per engo frame and then pushes the
// new state to the render entities. Movement control, physics and
// particles all run inside game.Update, so their order does not depend on
// system priorities.
type LanderSystem struct {
	game     *engine.Game
	buttons  control.Buttons
	renderer *SceneRenderer
	hud      *HUD
}

// NewLanderSystem creates the system driving game
func NewLanderSystem(game *engine.Game, buttons control.Buttons, renderer *SceneRenderer, hud *HUD) *LanderSystem {
	return &LanderSystem{
		game:     game,
		buttons:  buttons,
		renderer: renderer,
		hud:      hud,
	}
}

// Update implements ecs.System
func (s *LanderSystem) Update(dt float32) {
	s.game.Update(float64(dt), s.buttons)

	state := s.game.GetGameState()
	if s.renderer != nil {
		s.renderer.Sync(state)
	}
	if s.hud != nil {
		s.hud.Update(state)
	}
}

// Remove implements ecs.System; the system owns no entities
func (s *LanderSystem) Remove(ecs.BasicEntity) {}
