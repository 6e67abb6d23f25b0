package ports

import "github.com/renato0307/tabstash/internal/domain"

// EventPublisher accepts events for asynchronous, serialized handling
type EventPublisher interface {
	Publish(event domain.Event)
}
