// pkg/engine/game.go
package engine

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/control"
	"github.com/opd-ai/go-lander/pkg/event"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/noise"
	"github.com/opd-ai/go-lander/pkg/particles"
	"github.com/opd-ai/go-lander/pkg/physics"
	"github.com/opd-ai/go-lander/pkg/terrain"
)

// maxDeltaTime caps a single frame to keep the integrator stable after stalls
const maxDeltaTime = 0.1

// spawnInset is the lander's distance from the left edge at start-up
const spawnInset = 10

// Game owns the scene: terrain, lander, exhaust and the physics world
type Game struct {
	Config     *config.GameConfig
	Seed       int64
	World      *physics.World
	Terrain    *terrain.Terrain
	Ground     *physics.Body
	LanderBody *physics.Body
	Lander     *control.Lander
	Exhaust    *particles.Emitter
	Controller *control.Controller
	// EventBus handlers run on the goroutine calling Update, outside the
	// game lock. They must not call Update.
	EventBus   *event.Bus

	CurrentTick uint64
	ElapsedTime float64 // seconds of simulated time

	lock     sync.RWMutex
	ctx      context.Context
	logger   *logging.Logger
	firing   bool
	touching bool
}

// ResolveSeed returns seed, or a fresh seed in [0, 1000) when seed is zero
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return rand.Int64N(1000)
}

// NewGame builds the terrain and spawns the lander. The seed drives both
// the terrain noise and the exhaust particles.
func NewGame(ctx context.Context, cfg *config.GameConfig, seed int64, logger *logging.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "create game")
	}

	sampler, err := noise.New(cfg.NoiseParams(seed))
	if err != nil {
		return nil, logging.WrapError(err, "create noise sampler")
	}

	terr, err := terrain.Build(cfg.TerrainParams(), sampler)
	if err != nil {
		return nil, logging.WrapError(err, "build terrain")
	}

	game := &Game{
		Config:   cfg,
		Seed:     seed,
		World:    physics.NewWorld(cfg.GravityVector()),
		Terrain:  terr,
		EventBus: event.NewEventBus(),
		ctx:      ctx,
		logger:   logger,
	}

	game.initGround()
	game.initLander()
	game.registerEventHandlers()

	game.EventBus.Publish(event.NewTerrainEvent(game, seed, len(terr.Boundary), terr.Params.Width))
	game.EventBus.Publish(event.NewLanderEvent(event.LanderSpawned, game,
		game.LanderBody.Position, game.Lander.EnginePower))

	return game, nil
}

// SpawnPoint returns the lander's start position: the top-left corner of
// the terrain domain, inset from the left edge.
func SpawnPoint(params terrain.Params, origin physics.Vector2D) physics.Vector2D {
	return origin.Add(physics.Vector2D{X: spawnInset, Y: 2 * params.HalfHeight})
}

func (g *Game) initGround() {
	g.Ground = physics.NewStaticPolyline(g.Terrain.Origin, g.Terrain.Collider, g.Config.TerrainMaterial())
	g.World.Add(g.Ground)
}

func (g *Game) initLander() {
	p := g.Config.Physics
	g.LanderBody = physics.NewBox(
		SpawnPoint(g.Terrain.Params, g.Terrain.Origin),
		p.LanderWidth, p.LanderHeight, p.LanderDensity,
		g.Config.LanderMaterial(),
	)
	g.LanderBody.Angle = -math.Pi / 2
	g.World.Add(g.LanderBody)

	g.Exhaust = particles.NewEmitter(particles.ExhaustSettings(), uint64(g.Seed))
	g.Lander = control.NewLander(g.LanderBody, g.Config.Control.InitialPower, &g.Exhaust.Config)
	g.Controller = control.NewController(g.Config.Tuning(), g.Lander)
	g.firing = g.Lander.EnginePower > 0
}

// Update advances the scene by one frame: movement control, physics, then
// particles. Movement control sees the full deltaTime; physics, particles
// and ElapsedTime advance by at most maxDeltaTime. Events raised by the
// frame are published after the game lock is released, before Update
// returns, so handlers may call GetGameState.
func (g *Game) Update(deltaTime float64, buttons control.Buttons) {
	if deltaTime <= 0 || math.IsNaN(deltaTime) {
		return
	}
	step := min(deltaTime, maxDeltaTime)

	for _, e := range g.advance(deltaTime, step, buttons) {
		g.EventBus.Publish(e)
	}
}

// advance runs one frame under the game lock and returns the events it raised
func (g *Game) advance(deltaTime, step float64, buttons control.Buttons) []event.Event {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.Controller.Step(deltaTime, buttons)
	contacts := g.World.Step(step)
	g.Exhaust.Update(step, g.LanderBody.Position, g.LanderBody.Angle)

	g.CurrentTick++
	g.ElapsedTime += step

	var pending []event.Event
	if e := g.engineEvent(); e != nil {
		pending = append(pending, e)
	}
	if e := g.contactEvent(contacts); e != nil {
		pending = append(pending, e)
	}
	return pending
}

// engineEvent reports the engine starting or running dry
func (g *Game) engineEvent() event.Event {
	firing := g.Lander.EnginePower > 0
	if firing == g.firing {
		return nil
	}
	g.firing = firing

	eventType := event.EngineCutOff
	if firing {
		eventType = event.EngineIgnited
	}
	return event.NewLanderEvent(eventType, g, g.LanderBody.Position, g.Lander.EnginePower)
}

// contactEvent reports a touchdown once per continuous contact
func (g *Game) contactEvent(contacts []physics.Contact) event.Event {
	if len(contacts) == 0 {
		g.touching = false
		return nil
	}
	if g.touching {
		return nil
	}
	g.touching = true

	hardest := contacts[0]
	for _, c := range contacts[1:] {
		if c.ImpactSpeed > hardest.ImpactSpeed {
			hardest = c
		}
	}
	return event.NewContactEvent(g, hardest.ContactPoint, hardest.Normal, hardest.ImpactSpeed)
}

func (g *Game) registerEventHandlers() {
	g.EventBus.Subscribe(event.TerrainGenerated, g.handleTerrainEvent)
	g.EventBus.Subscribe(event.LanderContact, g.handleContactEvent)
	g.EventBus.Subscribe(event.EngineIgnited, g.handleEngineEvent)
	g.EventBus.Subscribe(event.EngineCutOff, g.handleEngineEvent)
}

func (g *Game) handleTerrainEvent(e event.Event) {
	if te, ok := e.(*event.TerrainEvent); ok {
		g.logger.Info(g.ctx, "terrain generated", "seed", te.Seed, "points", te.Points, "width", te.Width)
	}
}

func (g *Game) handleContactEvent(e event.Event) {
	if ce, ok := e.(*event.ContactEvent); ok {
		g.logger.Info(g.ctx, "lander touched down",
			"x", ce.Point.X, "y", ce.Point.Y, "impact_speed", ce.ImpactSpeed, "tick", g.CurrentTick)
	}
}

func (g *Game) handleEngineEvent(e event.Event) {
	if le, ok := e.(*event.LanderEvent); ok {
		state := "ignited"
		if le.GetType() == event.EngineCutOff {
			state = "cut off"
		}
		g.logger.Debug(g.ctx, "engine "+state, "power", le.EnginePower, "tick", g.CurrentTick)
	}
}
