// pkg/render/engo/hud.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/engine"
)

// HUD draws the lander status line in the top-left corner
type HUD struct {
	entity *sprite
	font   *common.Font
	text   string
}

// NewHUD creates the status line entity
func NewHUD(renderSystem *common.RenderSystem, font *common.Font) *HUD {
	hud := &HUD{font: font}
	hud.entity = &sprite{BasicEntity: ecs.NewBasic()}
	hud.entity.RenderComponent = common.RenderComponent{
		Drawable: common.Text{Font: font},
		Color:    color.White,
	}
	hud.entity.RenderComponent.SetZIndex(10)
	hud.entity.RenderComponent.SetShader(common.HUDShader)
	hud.entity.SpaceComponent = common.SpaceComponent{Position: engo.Point{X: 10, Y: 10}}
	renderSystem.Add(&hud.entity.BasicEntity, &hud.entity.RenderComponent, &hud.entity.SpaceComponent)
	return hud
}

// Update redraws the status line when its text changes
func (hud *HUD) Update(state *engine.GameState) {
	text := state.StatusLine()
	if text == hud.text {
		return
	}
	hud.text = text
	hud.entity.Drawable = common.Text{Font: hud.font, Text: text}
}
