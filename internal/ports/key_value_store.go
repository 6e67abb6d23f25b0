package ports

import (
	"context"

	"github.com/renato0307/tabstash/internal/domain"
)

// KeyValueReader reads raw JSON values
type KeyValueReader interface {
	// Get returns domain.ErrKeyNotFound when the key is absent
	Get(ctx context.Context, scope domain.StorageScope, key string) ([]byte, error)
}

// KeyValueWriter writes and removes raw JSON values
type KeyValueWriter interface {
	Set(ctx context.Context, scope domain.StorageScope, key string, value []byte) error
	// Remove is a no-op when the key is absent
	Remove(ctx context.Context, scope domain.StorageScope, key string) error
}

// KeyValueStore is the composite interface
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
	Close() error
}
