package session

import (
	"context"
	"sync"
)

// KV is a per-client key-value namespace. The SQL repository and the Redis
// state store both satisfy it.
type KV interface {
	Get(ctx context.Context, clientID, key string) (string, bool, error)
	Set(ctx context.Context, clientID, key, value string) error
	Delete(ctx context.Context, clientID, key string) error
}

// MemoryKV is an in-process KV, used by tests and single-node dev runs.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, clientID, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[clientID][key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, clientID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ns, ok := m.data[clientID]
	if !ok {
		ns = make(map[string]string)
		m.data[clientID] = ns
	}
	ns[key] = value
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, clientID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[clientID], key)
	return nil
}
