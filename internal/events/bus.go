package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

// Handler reacts to a single event
type Handler func(ctx context.Context, event domain.Event)

// Bus fans events out to subscribers through a Queue
type Bus struct {
	queue    *Queue
	mu       sync.RWMutex
	handlers map[domain.EventType][]Handler
}

// Verify interface compliance at compile time
var _ ports.EventPublisher = (*Bus)(nil)

// NewBus creates a Bus dispatching on queue
func NewBus(queue *Queue) *Bus {
	return &Bus{
		queue:    queue,
		handlers: make(map[domain.EventType][]Handler),
	}
}

// Subscribe registers a handler for an event type
func (b *Bus) Subscribe(eventType domain.EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish enqueues the event for every subscriber of its type
func (b *Bus) Publish(event domain.Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		logging.Logger.Debug("No subscribers for event", "event", event.Type)
		if msg, ok := event.Payload.(domain.MessageReceivedPayload); ok && msg.Reply != nil {
			msg.Reply(nil, domain.ErrUnknownAction)
		}
		return
	}

	b.queue.Post(func(ctx context.Context) {
		for _, h := range handlers {
			dispatch(ctx, h, event)
		}
	})
}

// dispatch runs one handler. A panic is logged and, for dialog messages,
// answered with an error so the sender is not left waiting.
func dispatch(ctx context.Context, h Handler, event domain.Event) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		logging.Logger.Error("Event handler panicked", "event", event.Type, "panic", r)
		if msg, ok := event.Payload.(domain.MessageReceivedPayload); ok && msg.Reply != nil {
			msg.Reply(nil, fmt.Errorf("%w: %v", domain.ErrHandlerPanicked, r))
		}
	}()
	h(ctx, event)
}
