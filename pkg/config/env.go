// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables recognised by ApplyEnvironmentOverrides
const (
	EnvWidth     = "LANDER_WINDOW_WIDTH"
	EnvHeight    = "LANDER_WINDOW_HEIGHT"
	EnvRenderer  = "LANDER_RENDERER"
	EnvFrameRate = "LANDER_FRAME_RATE"
	EnvSeed      = "LANDER_SEED"
	EnvNoise     = "LANDER_NOISE"
	EnvStep      = "LANDER_TERRAIN_STEP"
	EnvGravity   = "LANDER_GRAVITY"
	EnvPower     = "LANDER_INITIAL_POWER"
	EnvVSync     = "LANDER_VSYNC"
)

// ApplyEnvironmentOverrides replaces config values with any LANDER_*
// variables that are set. A set but malformed variable is an error.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	var err error
	if config.Window.Width, err = envInt(EnvWidth, config.Window.Width); err != nil {
		return err
	}
	if config.Window.Height, err = envInt(EnvHeight, config.Window.Height); err != nil {
		return err
	}
	if config.Window.FrameRate, err = envInt(EnvFrameRate, config.Window.FrameRate); err != nil {
		return err
	}
	if config.Window.VSync, err = envBool(EnvVSync, config.Window.VSync); err != nil {
		return err
	}
	if config.Terrain.Seed, err = envInt64(EnvSeed, config.Terrain.Seed); err != nil {
		return err
	}
	if config.Terrain.Step, err = envFloat(EnvStep, config.Terrain.Step); err != nil {
		return err
	}
	if config.Physics.Gravity, err = envFloat(EnvGravity, config.Physics.Gravity); err != nil {
		return err
	}
	if config.Control.InitialPower, err = envFloat(EnvPower, config.Control.InitialPower); err != nil {
		return err
	}
	config.Window.Renderer = getEnvOrDefault(EnvRenderer, config.Window.Renderer)
	config.Terrain.Noise = getEnvOrDefault(EnvNoise, config.Terrain.Noise)

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, value)
	}
	return parsed, nil
}

func envInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, value)
	}
	return parsed, nil
}

func envFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, value)
	}
	return parsed, nil
}

func envBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, key, value)
	}
	return parsed, nil
}
