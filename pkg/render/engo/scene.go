// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/engine"
	"github.com/opd-ai/go-lander/pkg/logging"
)

// LanderScene shows one game in an engo window
type LanderScene struct {
	ctx    context.Context
	game   *engine.Game
	logger *logging.Logger
	assets *AssetManager
}

// NewLanderScene creates a scene for game
func NewLanderScene(ctx context.Context, game *engine.Game, logger *logging.Logger) *LanderScene {
	return &LanderScene{
		ctx:    ctx,
		game:   game,
		logger: logger,
		assets: NewAssetManager(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *LanderScene) Type() string {
	return "LanderScene"
}

// Preload registers the key bindings (required by Engo)
func (scene *LanderScene) Preload() {
	SetupInputBindings()
}

// Setup builds the render entities and systems (required by Engo)
func (scene *LanderScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.logger.Warn(scene.ctx, "engo updater is not an ecs world")
		return
	}

	if err := scene.assets.LoadAssets(); err != nil {
		scene.logger.Error(scene.ctx, "failed to load assets", err)
		engo.Exit()
		return
	}

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	params := scene.game.Terrain.Params
	camera := NewCamera(params.Width, 2*params.HalfHeight,
		float64(engo.GameWidth()), float64(engo.GameHeight()))

	renderer := NewSceneRenderer(renderSystem, scene.assets, camera)
	renderer.Initialize(scene.game.Terrain)
	hud := NewHUD(renderSystem, scene.assets.HUDFont())

	world.AddSystem(NewLanderSystem(scene.game, Buttons{}, renderer, hud))

	scene.logger.Info(scene.ctx, "engo scene ready",
		"screen_width", engo.GameWidth(), "screen_height", engo.GameHeight())
}

// Exit is called when the window closes (required by Engo)
func (scene *LanderScene) Exit() {
	scene.logger.Info(scene.ctx, "engo scene closed", "ticks", scene.game.CurrentTick)
}

// Run opens the window and blocks until it is closed
func Run(ctx context.Context, game *engine.Game, logger *logging.Logger) {
	window := game.Config.Window
	engo.Run(engo.RunOptions{
		Title:      window.Title,
		Width:      window.Width,
		Height:     window.Height,
		Fullscreen: window.Fullscreen,
		VSync:      window.VSync,
	}, NewLanderScene(ctx, game, logger))
}
