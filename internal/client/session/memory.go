package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the session in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	token    string
	username string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) SetSession(_ context.Context, token, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.username = token, username
	return nil
}

func (m *MemoryStore) Username(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.username, nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.username = "", ""
	return nil
}
