package events

// Handler receives every event published on a Bus.
type Handler func(Event)

// Bus fans events out to an ordered subscriber list. Dispatch is fully
// synchronous: Publish returns only after every subscriber has processed
// the event, so a subscriber reacting to an event always observes state
// already updated by subscribers registered before it. The bus is intended
// for single-threaded use on the game's tick loop.
type Bus struct {
	handlers []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe appends a handler. Handlers are invoked in subscription order.
func (b *Bus) Subscribe(h Handler) {
	if h == nil {
		return
	}
	b.handlers = append(b.handlers, h)
}

// Publish delivers e to all subscribers in order, synchronously.
func (b *Bus) Publish(e Event) {
	if e == nil {
		return
	}
	for _, h := range b.handlers {
		h(e)
	}
}
