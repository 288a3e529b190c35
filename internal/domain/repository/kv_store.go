// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by a KeyValueStore when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable blob store behind the persisted state.
// Each key is independent; there is no cross-key transaction.
type KeyValueStore interface {
	// Get returns the raw value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}
