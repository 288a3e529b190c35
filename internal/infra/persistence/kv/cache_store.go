package kv

import (
	"context"
	"slices"

	"guardian/internal/domain/repository"

	gocache "github.com/patrickmn/go-cache"
)

// cacheStore keeps values in process memory. Nothing survives a restart.
type cacheStore struct {
	cache *gocache.Cache
}

// NewCacheStore is the constructor for cacheStore.
func NewCacheStore() repository.KeyValueStore {
	return &cacheStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

func (s *cacheStore) Get(_ context.Context, key string) ([]byte, error) {
	value, found := s.cache.Get(key)
	if !found {
		return nil, repository.ErrKeyNotFound
	}

	raw, ok := value.([]byte)
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	return slices.Clone(raw), nil
}

func (s *cacheStore) Set(_ context.Context, key string, value []byte) error {
	s.cache.Set(key, slices.Clone(value), gocache.NoExpiration)

	return nil
}

func (s *cacheStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)

	return nil
}

func (s *cacheStore) Close() error {
	s.cache.Flush()

	return nil
}
