// Package kvstore provides named-blob persistence for application state.
package kvstore

import "sync"

// Store is a key-value store of serialized blobs. Callers own the
// serialization format and must tolerate absent or corrupt values.
type Store interface {
	// Get returns the blob stored under key. The second return value is
	// false when no value has ever been stored for the key.
	Get(key string) ([]byte, bool, error)
	// Put stores the blob under key, replacing any previous value.
	Put(key string, value []byte) error
	// Close releases any resources held by the store.
	Close() error
}

// Memory is an in-process Store. It is used in tests and as a fallback
// when the on-disk store cannot be opened; data does not survive restart.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Get returns the blob stored under key.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Put stores the blob under key.
func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.blobs[key] = stored
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error {
	return nil
}
