// Package kv implements the durable key-value store and its typed helpers.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"guardian/internal/domain/repository"
)

// Load decodes the value stored under key into T.
// It returns def when the key is absent or the stored value is malformed.
// A backend failure is returned alongside def so callers can log it.
func Load[T any](ctx context.Context, store repository.KeyValueStore, key string, def T) (T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return def, nil
		}

		return def, err
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		slog.DebugContext(ctx, "Discarding malformed stored value", slog.String("key", key), slog.Any("error", err))

		return def, nil
	}

	return value, nil
}

// Save encodes value as JSON and writes it under key.
func Save[T any](ctx context.Context, store repository.KeyValueStore, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return store.Set(ctx, key, raw)
}
