package index

import (
	"context"
	"sync"
)

// memoryIndex keeps entries in an in-process map. It is the default backend
// and matches the lifetime of the service process.
type memoryIndex struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryIndex creates an empty in-memory element index.
func NewMemoryIndex() ElementIndex {
	return &memoryIndex{entries: make(map[string]Entry)}
}

func (m *memoryIndex) Put(_ context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ElementID] = entry
	return nil
}

func (m *memoryIndex) Resolve(_ context.Context, elementID string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[elementID]
	if !ok {
		return Entry{}, ErrElementNotFound
	}
	return entry, nil
}

func (m *memoryIndex) Close() error {
	return nil
}
