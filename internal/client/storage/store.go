// Package storage persists the client session between runs. A small
// key-value interface keeps the medium swappable; the shipped backend is a
// local sqlite database.
package storage

import "context"

// Store is the persistent key-value contract the session layer depends on.
// Get returns (nil, nil) for a missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
