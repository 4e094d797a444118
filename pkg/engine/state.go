// pkg/engine/state.go
package engine

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-lander/pkg/particles"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// GameState is a copy of everything a frontend draws each frame
type GameState struct {
	Tick        uint64
	ElapsedTime float64
	Lander      LanderState
	Particles   []particles.Particle
	Touching    bool
}

// LanderState captures the lander body and its engine
type LanderState struct {
	Position        physics.Vector2D
	Velocity        physics.Vector2D
	Angle           float64
	AngularVelocity float64
	EnginePower     float64
	Width           float64
	Height          float64
}

// GetGameState returns a snapshot that stays valid after later updates
func (g *Game) GetGameState() *GameState {
	g.lock.RLock()
	defer g.lock.RUnlock()

	live := g.Exhaust.Particles()
	snapshot := make([]particles.Particle, len(live))
	copy(snapshot, live)

	body := g.LanderBody
	return &GameState{
		Tick:        g.CurrentTick,
		ElapsedTime: g.ElapsedTime,
		Lander: LanderState{
			Position:        body.Position,
			Velocity:        body.Velocity,
			Angle:           body.Angle,
			AngularVelocity: body.AngularVelocity,
			EnginePower:     g.Lander.EnginePower,
			Width:           body.HalfExtents.X * 2,
			Height:          body.HalfExtents.Y * 2,
		},
		Particles: snapshot,
		Touching:  g.touching,
	}
}

// StatusLine formats the lander readout shown by the frontends' HUDs
func (s *GameState) StatusLine() string {
	l := s.Lander
	return fmt.Sprintf("power %.2f  alt %4.0f  vx %6.1f  vy %6.1f  angle %4.0f  t %5.1fs",
		l.EnginePower, l.Position.Y, l.Velocity.X, l.Velocity.Y, l.Angle*180/math.Pi, s.ElapsedTime)
}
