package kvstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests. GetErr and SetErr, when set,
// are returned by every call.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string

	GetErr error
	SetErr error

	// SetCalls counts Set invocations per key, failed ones included.
	SetCalls map[string]int
}

// NewMemoryStore returns a store seeded with values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	m := &MemoryStore{
		values:   make(map[string]string, len(values)),
		SetCalls: make(map[string]int),
	}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Get returns the value of key, or GetErr when set.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key and counts the call. SetErr, when set, is
// returned without storing anything.
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetCalls == nil {
		m.SetCalls = make(map[string]int)
	}
	m.SetCalls[key]++
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Value returns the raw stored value of key.
func (m *MemoryStore) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Calls returns how many times key was written.
func (m *MemoryStore) Calls(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SetCalls[key]
}
