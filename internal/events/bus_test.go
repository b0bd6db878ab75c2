package events

import (
	"testing"
	"time"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	bus.Subscribe(func(Event) { order = append(order, 1) })
	bus.Subscribe(func(Event) { order = append(order, 2) })
	bus.Subscribe(func(Event) { order = append(order, 3) })

	bus.Publish(GameStarted{Timestamp: time.Now()})

	if len(order) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(order))
	}
	for i, v := range order {
		if v != i+1 {
			t.Errorf("delivery %d went to subscriber %d", i, v)
		}
	}
}

func TestPublishIsSynchronous(t *testing.T) {
	bus := NewBus()

	delivered := false
	bus.Subscribe(func(Event) { delivered = true })

	bus.Publish(GameReset{Timestamp: time.Now()})
	if !delivered {
		t.Error("Publish returned before the subscriber ran")
	}
}

func TestPublishPreservesEventOrder(t *testing.T) {
	bus := NewBus()

	var seen []Event
	bus.Subscribe(func(e Event) { seen = append(seen, e) })

	bus.Publish(LinesCleared{Count: 1, NewTotal: 1, NewLevel: 1})
	bus.Publish(ScoreUpdated{Score: 100, Delta: 100, Level: 1})

	if len(seen) != 2 {
		t.Fatalf("expected 2 events, got %d", len(seen))
	}
	if _, ok := seen[0].(LinesCleared); !ok {
		t.Errorf("first event = %T, want LinesCleared", seen[0])
	}
	if _, ok := seen[1].(ScoreUpdated); !ok {
		t.Errorf("second event = %T, want ScoreUpdated", seen[1])
	}
}

func TestSubscribeIgnoresNilHandler(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(nil)
	// Must not panic
	bus.Publish(GameStarted{Timestamp: time.Now()})
}

func TestPublishIgnoresNilEvent(t *testing.T) {
	bus := NewBus()
	called := false
	bus.Subscribe(func(Event) { called = true })
	bus.Publish(nil)
	if called {
		t.Error("nil event was delivered")
	}
}
