package store

import "context"

// Store is the durable key/value mirror behind the session holder.
// Implementations: File for normal use, Redis for shared environments,
// Memory for tests.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
