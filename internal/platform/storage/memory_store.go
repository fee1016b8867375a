package storage

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewMemoryStore returns a BlobStore that lives and dies with the process.
// Used by tests and by SHOP_STORE_EPHEMERAL deployments.
func NewMemoryStore() BlobStore {
	return &memoryStore{blobs: make(map[string]string)}
}

func (m *memoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.blobs[key]
	return value, ok, nil
}

func (m *memoryStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = value
	return nil
}
