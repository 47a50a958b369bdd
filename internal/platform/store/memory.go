package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

// NewMemory returns a store that keeps encoded documents in process memory.
// Documents are stored as JSON so round-trips behave like the remote backends.
func NewMemory() Store {
	return &memoryStore{data: make(map[string]map[string][]byte)}
}

func (m *memoryStore) Get(_ context.Context, dataset, key string, dst any) error {
	m.mu.RLock()
	raw, ok := m.data[dataset][key]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %s/%s: %w", dataset, key, err)
	}
	return nil
}

func (m *memoryStore) Put(_ context.Context, dataset, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", dataset, key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ds, ok := m.data[dataset]
	if !ok {
		ds = make(map[string][]byte)
		m.data[dataset] = ds
	}
	ds[key] = raw
	return nil
}

func (m *memoryStore) Delete(_ context.Context, dataset, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[dataset], key)
	return nil
}

func (m *memoryStore) Keys(_ context.Context, dataset string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data[dataset]))
	for k := range m.data[dataset] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memoryStore) Ping(context.Context) error { return nil }

func (m *memoryStore) Close() error { return nil }
