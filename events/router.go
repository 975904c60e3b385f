package events

// Handler receives the events it subscribes to, with a dispatch context of type T
type Handler[T any] interface {
	// HandleEvent runs on the dispatching goroutine, once per matching event
	HandleEvent(ctx T, event GameEvent)

	// EventTypes lists the subscribed types; read once at registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for a fixed set of event types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event GameEvent) { h.Fn(ctx, event) }
func (h HandlerFunc[T]) EventTypes() []EventType            { return h.Types }

// Router drains one queue and fans each event out to its subscribers
// Subscribers of a type run in registration order; events are delivered oldest first
// Register and DispatchAll must be called from the same goroutine
type Router[T any] struct {
	subscribers map[EventType][]Handler[T]
	queue       *EventQueue
}

// NewRouter creates a router draining queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		subscribers: make(map[EventType][]Handler[T]),
		queue:       queue,
	}
}

// Register subscribes handler to every type it lists
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.subscribers[t] = append(r.subscribers[t], handler)
	}
}

// DispatchAll delivers every pending event and returns how many were consumed
func (r *Router[T]) DispatchAll(ctx T) int {
	pending := r.queue.Consume()
	for _, ev := range pending {
		for _, h := range r.subscribers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(pending)
}

// HasHandlers reports whether anything subscribes to t
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.subscribers[t]) > 0
}

// HandlerCount returns the number of subscribers to t
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.subscribers[t])
}
