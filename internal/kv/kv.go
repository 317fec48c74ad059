package kv

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("key not found")
)

// Store is a minimal key-value abstraction with per-key expiry. Cart
// and session state go through this interface so the stores can be
// exercised against an in-memory implementation in tests and backed by
// Redis in deployment.
type Store interface {
	// Get returns the value for key, or ErrNotFound if the key is
	// absent or expired.
	Get(ctx context.Context, key string) (string, error)
	// Set writes key to value. A zero ttl means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
