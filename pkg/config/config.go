// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/opd-ai/go-lander/pkg/control"
	"github.com/opd-ai/go-lander/pkg/noise"
	"github.com/opd-ai/go-lander/pkg/physics"
	"github.com/opd-ai/go-lander/pkg/terrain"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// GameConfig contains configuration for a lander game
type GameConfig struct {
	Window  WindowConfig  `json:"window"`
	Terrain TerrainConfig `json:"terrain"`
	Control ControlConfig `json:"control"`
	Physics PhysicsConfig `json:"physics"`
}

// WindowConfig describes the display surface
type WindowConfig struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
	VSync      bool   `json:"vsync"`
	Renderer   string `json:"renderer"`  // "engo" or "terminal"
	FrameRate  int    `json:"frameRate"` // ticks per second outside engo
}

// TerrainConfig controls terrain generation
type TerrainConfig struct {
	Step        float64 `json:"step"`
	Noise       string  `json:"noise"`
	Seed        int64   `json:"seed"` // 0 draws a seed at start-up
	Octaves     int     `json:"octaves"`
	Frequency   float64 `json:"frequency"`
	Lacunarity  float64 `json:"lacunarity"`
	Persistence float64 `json:"persistence"`
}

// ControlConfig holds the movement tuning constants
type ControlConfig struct {
	TorqueImpulse      float64 `json:"torqueImpulse"`
	ThrustGainRate     float64 `json:"thrustGainRate"`
	DecayRate          float64 `json:"decayRate"`
	ThrustImpulseScale float64 `json:"thrustImpulseScale"`
	ExhaustRateScale   float64 `json:"exhaustRateScale"`
	ExhaustSpeedScale  float64 `json:"exhaustSpeedScale"`
	ExhaustJitterBase  float64 `json:"exhaustJitterBase"`
	InitialPower       float64 `json:"initialPower"`
}

// PhysicsConfig contains physics-related configuration
type PhysicsConfig struct {
	Gravity            float64 `json:"gravity"` // downward acceleration
	LanderWidth        float64 `json:"landerWidth"`
	LanderHeight       float64 `json:"landerHeight"`
	LanderDensity      float64 `json:"landerDensity"`
	LanderFriction     float64 `json:"landerFriction"`
	LanderRestitution  float64 `json:"landerRestitution"`
	TerrainFriction    float64 `json:"terrainFriction"`
	TerrainRestitution float64 `json:"terrainRestitution"`
}

// LoadConfig loads a configuration from a file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	if config == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	tuning := control.DefaultTuning()
	noiseParams := noise.DefaultParams(0)

	return &GameConfig{
		Window: WindowConfig{
			Title:     "Lander",
			Width:     1280,
			Height:    720,
			VSync:     true,
			Renderer:  "engo",
			FrameRate: 60,
		},
		Terrain: TerrainConfig{
			Step:        terrain.DefaultStep,
			Noise:       string(noiseParams.Kind),
			Seed:        0,
			Octaves:     noiseParams.Octaves,
			Frequency:   noiseParams.Frequency,
			Lacunarity:  noiseParams.Lacunarity,
			Persistence: noiseParams.Persistence,
		},
		Control: ControlConfig{
			TorqueImpulse:      tuning.TorqueImpulse,
			ThrustGainRate:     tuning.ThrustGainRate,
			DecayRate:          tuning.DecayRate,
			ThrustImpulseScale: tuning.ThrustImpulseScale,
			ExhaustRateScale:   tuning.ExhaustRateScale,
			ExhaustSpeedScale:  tuning.ExhaustSpeedScale,
			ExhaustJitterBase:  tuning.ExhaustJitterBase,
			InitialPower:       0.2,
		},
		Physics: PhysicsConfig{
			Gravity:            50,
			LanderWidth:        40,
			LanderHeight:       40,
			LanderDensity:      1,
			LanderFriction:     1,
			LanderRestitution:  physics.PerfectlyInelastic,
			TerrainFriction:    1,
			TerrainRestitution: physics.PerfectlyElastic,
		},
	}
}

// Validate checks that every dimension, rate and step is usable
func (c *GameConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	checks := []struct {
		field string
		ok    bool
	}{
		{"window.width", c.Window.Width > 0},
		{"window.height", c.Window.Height > 0},
		{"window.frameRate", c.Window.FrameRate > 0},
		{"window.renderer", c.Window.Renderer == "engo" || c.Window.Renderer == "terminal"},
		{"terrain.step", c.Terrain.Step > 0 && c.Terrain.Step <= 1},
		{"terrain.octaves", c.Terrain.Octaves > 0},
		{"terrain.noise", c.Terrain.Noise == string(noise.KindPerlin) || c.Terrain.Noise == string(noise.KindOpenSimplex)},
		{"terrain.seed", c.Terrain.Seed >= 0},
		{"control.thrustGainRate", c.Control.ThrustGainRate >= 0},
		{"control.decayRate", c.Control.DecayRate >= 0},
		{"control.initialPower", c.Control.InitialPower >= 0},
		{"physics.landerWidth", c.Physics.LanderWidth > 0},
		{"physics.landerHeight", c.Physics.LanderHeight > 0},
		{"physics.landerDensity", c.Physics.LanderDensity > 0},
		{"physics.landerFriction", c.Physics.LanderFriction >= 0},
		{"physics.terrainFriction", c.Physics.TerrainFriction >= 0},
		{"physics.landerRestitution", c.Physics.LanderRestitution >= 0 && c.Physics.LanderRestitution <= 1},
		{"physics.terrainRestitution", c.Physics.TerrainRestitution >= 0 && c.Physics.TerrainRestitution <= 1},
	}

	for _, check := range checks {
		if !check.ok {
			return &ValidationError{Field: check.field}
		}
	}
	return nil
}

// ValidationError names the first field that failed validation
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidConfig, e.Field)
}

// Unwrap lets errors.Is match ErrInvalidConfig
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// TerrainParams returns the terrain domain: the window width and half its height
func (c *GameConfig) TerrainParams() terrain.Params {
	return terrain.Params{
		Width:      float64(c.Window.Width),
		HalfHeight: float64(c.Window.Height) / 2,
		Step:       c.Terrain.Step,
	}
}

// NoiseParams returns the sampler parameters for the given seed
func (c *GameConfig) NoiseParams(seed int64) noise.Params {
	return noise.Params{
		Kind:        noise.Kind(c.Terrain.Noise),
		Seed:        seed,
		Octaves:     c.Terrain.Octaves,
		Frequency:   c.Terrain.Frequency,
		Lacunarity:  c.Terrain.Lacunarity,
		Persistence: c.Terrain.Persistence,
	}
}

// Tuning returns the movement constants
func (c *GameConfig) Tuning() control.Tuning {
	return control.Tuning{
		TorqueImpulse:      c.Control.TorqueImpulse,
		ThrustGainRate:     c.Control.ThrustGainRate,
		DecayRate:          c.Control.DecayRate,
		ThrustImpulseScale: c.Control.ThrustImpulseScale,
		ExhaustRateScale:   c.Control.ExhaustRateScale,
		ExhaustSpeedScale:  c.Control.ExhaustSpeedScale,
		ExhaustJitterBase:  c.Control.ExhaustJitterBase,
	}
}

// GravityVector returns gravity as a world-space acceleration
func (c *GameConfig) GravityVector() physics.Vector2D {
	return physics.Vector2D{X: 0, Y: -c.Physics.Gravity}
}

// LanderMaterial returns the lander's surface response
func (c *GameConfig) LanderMaterial() physics.Material {
	return physics.Material{
		Friction:           c.Physics.LanderFriction,
		FrictionCombine:    physics.CombineMultiply,
		Restitution:        c.Physics.LanderRestitution,
		RestitutionCombine: physics.CombineAverage,
	}
}

// TerrainMaterial returns the ground's surface response
func (c *GameConfig) TerrainMaterial() physics.Material {
	return physics.Material{
		Friction:           c.Physics.TerrainFriction,
		FrictionCombine:    physics.CombineMultiply,
		Restitution:        c.Physics.TerrainRestitution,
		RestitutionCombine: physics.CombineAverage,
	}
}
