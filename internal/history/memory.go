package history

import (
	"sync"
	"time"
)

// Memory is an in-memory store for testing and history-less runs.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Append records an evaluated line.
func (m *Memory) Append(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.When == 0 {
		e.When = time.Now().Unix()
	}
	m.entries = append(m.entries, e)
	return nil
}

// Recent returns entries newest first.
func (m *Memory) Recent(limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]Entry, n)
	for i := 0; i < n; i++ {
		out[i] = m.entries[len(m.entries)-1-i]
	}
	return out, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}
