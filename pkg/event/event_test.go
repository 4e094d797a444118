// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"

	"github.com/opd-ai/go-lander/pkg/physics"
)

func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

func TestBaseEvent_Accessors(t *testing.T) {
	tests := []struct {
		name      string
		eventType Type
		source    interface{}
	}{
		{"terrain event", TerrainGenerated, "engine"},
		{"contact event", LanderContact, 42},
		{"nil source", EngineCutOff, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &BaseEvent{EventType: tt.eventType, Source: tt.source}
			if e.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", e.GetType(), tt.eventType)
			}
			if e.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", e.GetSource(), tt.source)
			}
		})
	}
}

func TestBusSubscribe_ReturnsIncreasingIDs(t *testing.T) {
	bus := NewEventBus()
	handler := func(Event) {}

	first := bus.Subscribe(EngineIgnited, handler)
	second := bus.Subscribe(EngineIgnited, handler)
	third := bus.Subscribe(EngineCutOff, handler)

	if first != 1 || second != 2 || third != 3 {
		t.Errorf("IDs = %d, %d, %d, want 1, 2, 3", first, second, third)
	}

	bus.mu.RLock()
	defer bus.mu.RUnlock()
	if len(bus.handlers[EngineIgnited]) != 2 {
		t.Errorf("expected 2 ignition handlers, got %d", len(bus.handlers[EngineIgnited]))
	}
}

func TestBusPublish_CallsHandlersInOrder(t *testing.T) {
	bus := NewEventBus()
	var calls []int

	bus.Subscribe(EngineIgnited, func(Event) { calls = append(calls, 1) })
	bus.Subscribe(EngineIgnited, func(Event) { calls = append(calls, 2) })
	bus.Subscribe(EngineCutOff, func(Event) { calls = append(calls, 3) })

	bus.Publish(NewLanderEvent(EngineIgnited, nil, physics.Vector2D{}, 0.1))

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("calls = %v, want [1 2]", calls)
	}
}

func TestBusPublish_NoSubscribers_NoError(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(NewTerrainEvent(nil, 1, 101, 1280))
}

func TestBusUnsubscribe_RemovesOnlyTarget(t *testing.T) {
	bus := NewEventBus()
	var first, second int

	id := bus.Subscribe(LanderContact, func(Event) { first++ })
	bus.Subscribe(LanderContact, func(Event) { second++ })

	if !bus.Unsubscribe(LanderContact, id) {
		t.Fatal("Unsubscribe() = false, want true")
	}
	if bus.Unsubscribe(LanderContact, id) {
		t.Error("second Unsubscribe() = true, want false")
	}
	if bus.Unsubscribe(TerrainGenerated, 999) {
		t.Error("Unsubscribe() of unknown ID = true, want false")
	}

	bus.Publish(NewContactEvent(nil, physics.Vector2D{}, physics.Up, 3))
	if first != 0 || second != 1 {
		t.Errorf("first=%d second=%d, want 0 and 1", first, second)
	}
}

func TestBusPublish_HandlerMaySubscribe(t *testing.T) {
	bus := NewEventBus()
	bus.Subscribe(LanderSpawned, func(Event) {
		bus.Subscribe(LanderSpawned, func(Event) {})
	})

	bus.Publish(NewLanderEvent(LanderSpawned, nil, physics.Vector2D{}, 0))
}

func TestBus_ConcurrentAccess_ThreadSafe(t *testing.T) {
	bus := NewEventBus()
	var wg sync.WaitGroup
	var mu sync.Mutex
	count := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Subscribe(EngineIgnited, func(Event) {
				mu.Lock()
				count++
				mu.Unlock()
			})
			bus.Publish(NewLanderEvent(EngineCutOff, nil, physics.Vector2D{}, 0))
		}()
	}
	wg.Wait()

	bus.Publish(NewLanderEvent(EngineIgnited, nil, physics.Vector2D{}, 0))
	if count != 20 {
		t.Errorf("count = %d, want 20", count)
	}
}

func TestEventConstructors(t *testing.T) {
	te := NewTerrainEvent("src", 7, 101, 1280)
	if te.GetType() != TerrainGenerated || te.Seed != 7 || te.Points != 101 || te.Width != 1280 {
		t.Errorf("NewTerrainEvent() = %+v", te)
	}

	le := NewLanderEvent(EngineIgnited, "src", physics.Vector2D{X: 1, Y: 2}, 0.5)
	if le.GetType() != EngineIgnited || le.Position.X != 1 || le.EnginePower != 0.5 {
		t.Errorf("NewLanderEvent() = %+v", le)
	}

	ce := NewContactEvent("src", physics.Vector2D{X: 3}, physics.Up, 12)
	if ce.GetType() != LanderContact || ce.ImpactSpeed != 12 || ce.Normal != physics.Up {
		t.Errorf("NewContactEvent() = %+v", ce)
	}
}
