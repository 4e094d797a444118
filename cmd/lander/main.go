// cmd/lander/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/engine"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/render"
	engorender "github.com/opd-ai/go-lander/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "", "Renderer type: 'engo' or 'terminal' (overrides config)")
	headless := flag.Bool("headless", false, "Run a scripted flight without a window")
	seed := flag.Int64("seed", 0, "Terrain seed, 0 picks one at random (overrides config)")
	duration := flag.Float64("duration", 10, "Headless flight length in seconds")
	thrustSeconds := flag.Float64("thrust-seconds", 2, "Seconds of thrust at the start of a headless flight")
	flag.Parse()

	// The terminal frontend owns stdout, so logs go to stderr.
	logger := logging.NewLoggerTo(os.Stderr)
	ctx := logging.WithRunID(context.Background(), logging.GenerateRunID())

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file", "config_path", *configPath)
		return
	}

	gameConfig := loadConfig(ctx, logger, *configPath)
	if *renderer != "" {
		gameConfig.Window.Renderer = *renderer
	}
	if *seed != 0 {
		gameConfig.Terrain.Seed = *seed
	}
	if err := gameConfig.Validate(); err != nil {
		logger.Error(ctx, "Invalid configuration", err)
		os.Exit(1)
	}

	resolved := engine.ResolveSeed(gameConfig.Terrain.Seed)
	game, err := engine.NewGame(ctx, gameConfig, resolved, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create game", err, "seed", resolved)
		os.Exit(1)
	}

	switch {
	case *headless:
		err = runHeadless(ctx, game, logger, *duration, *thrustSeconds)
	case gameConfig.Window.Renderer == "terminal":
		err = runTerminal(ctx, game, logger)
	default:
		engorender.Run(ctx, game, logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Game stopped with error", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file if present and applies
// environment overrides on top
func loadConfig(ctx context.Context, logger *logging.Logger, path string) *config.GameConfig {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", path,
			)
			os.Exit(1)
		}
	}

	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}
	return gameConfig
}

// runHeadless flies a scripted thrust burst and logs the lander once a second
func runHeadless(ctx context.Context, game *engine.Game, logger *logging.Logger, duration, thrustSeconds float64) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	frameRate := game.Config.Window.FrameRate
	null := render.NewNullRenderer(logger)

	logger.Info(ctx, "Starting headless flight",
		"duration", duration,
		"thrust_seconds", thrustSeconds,
		"frame_rate", frameRate,
	)
	return game.RunScript(ctx, engine.ThrustFor(thrustSeconds), duration, 1/float64(frameRate),
		func(state *engine.GameState) {
			render.Draw(null, game.Terrain, state)
			logger.Info(ctx, "Lander status",
				"tick", state.Tick,
				"engine_power", state.Lander.EnginePower,
				"x", state.Lander.Position.X,
				"y", state.Lander.Position.Y,
				"touching", state.Touching,
			)
		})
}

// runTerminal plays the game in the current terminal
func runTerminal(ctx context.Context, game *engine.Game, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "creating terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "initialising terminal screen")
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	return render.NewTerminal(screen, game, game.Config.Window.FrameRate, logger).Run(ctx)
}
