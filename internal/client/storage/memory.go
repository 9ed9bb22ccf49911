package storage

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/usersconsole/internal/common"
)

// MemoryStore lives as long as the process. Used for tests and the
// "memory" driver.
type MemoryStore struct {
	mu     sync.Mutex
	data   map[string]string
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return "", common.ErrStorageClosed
	}
	v, ok := m.data[key]
	if !ok {
		return "", notFound(key)
	}
	return v, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	return m.SetMany(ctx, map[string]string{key: value})
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	return m.DeleteMany(ctx, key)
}

func (m *MemoryStore) SetMany(ctx context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return common.ErrStorageClosed
	}
	for k, v := range values {
		m.data[k] = v
	}
	return nil
}

func (m *MemoryStore) DeleteMany(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return common.ErrStorageClosed
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
