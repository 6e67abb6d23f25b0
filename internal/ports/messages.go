package ports

import (
	"context"

	"github.com/renato0307/tabstash/internal/domain"
)

// MessageSender delivers dialog requests to the coordinator.
// Actions without a response return a nil Response.
type MessageSender interface {
	Send(ctx context.Context, req domain.Request) (*domain.Response, error)
}
