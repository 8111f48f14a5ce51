package token

import "sync"

// Memory is an in-process Store. The session does not survive a restart;
// it is used in tests and wherever durability is not wanted.
type Memory struct {
	mu    sync.RWMutex
	value string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value, m.value != ""
}

func (m *Memory) Set(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = ""
	return nil
}
