package credentials

import (
	"context"
	"sync"
)

// Memory is the process-local backend, used in tests and when running
// without any store at all.
type Memory struct {
	mu    sync.RWMutex
	users map[string]string
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]string)}
}

func (m *Memory) Exists(_ context.Context, name string) (bool, error) {
	m.mu.RLock()
	_, ok := m.users[name]
	m.mu.RUnlock()
	return ok, nil
}

func (m *Memory) Save(_ context.Context, name, password string) error {
	m.mu.Lock()
	m.users[name] = password
	m.mu.Unlock()
	return nil
}
