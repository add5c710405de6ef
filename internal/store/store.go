package store

import "context"

// Store is a key-value persistence tier holding JSON-serialized state.
// The durable tier (Redis) survives application restarts, the ephemeral
// tier (in-process memory) does not.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
