// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-lander/pkg/physics"
)

// Type represents the type of event
type Type string

// Game lifecycle event types
const (
	TerrainGenerated Type = "terrain_generated"
	LanderSpawned    Type = "lander_spawned"
	EngineIgnited    Type = "engine_ignited"
	EngineCutOff     Type = "engine_cut_off"
	LanderContact    Type = "lander_contact"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// SubscriptionID identifies a registered handler
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscription
	nextID   SubscriptionID
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a handler; it reports whether the handler was found
func (b *Bus) Unsubscribe(eventType Type, id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish sends an event to all subscribed handlers, in subscription order
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := append([]subscription(nil), b.handlers[event.GetType()]...)
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// TerrainEvent reports a generated terrain
type TerrainEvent struct {
	BaseEvent
	Seed   int64
	Points int
	Width  float64
}

// NewTerrainEvent creates a terrain event
func NewTerrainEvent(source interface{}, seed int64, points int, width float64) *TerrainEvent {
	return &TerrainEvent{
		BaseEvent: BaseEvent{EventType: TerrainGenerated, Source: source},
		Seed:      seed,
		Points:    points,
		Width:     width,
	}
}

// LanderEvent reports a change in a lander's state
type LanderEvent struct {
	BaseEvent
	Position    physics.Vector2D
	EnginePower float64
}

// NewLanderEvent creates a lander event of the given type
func NewLanderEvent(eventType Type, source interface{}, position physics.Vector2D, power float64) *LanderEvent {
	return &LanderEvent{
		BaseEvent:   BaseEvent{EventType: eventType, Source: source},
		Position:    position,
		EnginePower: power,
	}
}

// ContactEvent reports the lander touching down after being airborne
type ContactEvent struct {
	BaseEvent
	Point       physics.Vector2D
	Normal      physics.Vector2D
	ImpactSpeed float64
}

// NewContactEvent creates a contact event
func NewContactEvent(source interface{}, point, normal physics.Vector2D, speed float64) *ContactEvent {
	return &ContactEvent{
		BaseEvent:   BaseEvent{EventType: LanderContact, Source: source},
		Point:       point,
		Normal:      normal,
		ImpactSpeed: speed,
	}
}
