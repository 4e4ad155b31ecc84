package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// Memory is a capacity- and TTL-bounded in-process cache. Eviction is by
// insertion order: when a new city arrives at capacity, the oldest inserted
// entry goes. Re-setting an existing city refreshes its payload and TTL but
// keeps its slot in the order.
type Memory struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]memoryEntry
	order    []string // insertion order, oldest first
}

func NewMemory(capacity int, ttl time.Duration) *Memory {
	return &Memory{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]memoryEntry, capacity),
	}
}

func (m *Memory) Get(_ context.Context, city string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[city]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		m.remove(city)
		return nil, false
	}
	return entry.payload, true
}

func (m *Memory) Set(_ context.Context, city string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[city]; ok {
		m.entries[city] = memoryEntry{payload: payload, expiresAt: time.Now().Add(m.ttl)}
		return
	}

	for len(m.entries) >= m.capacity && len(m.order) > 0 {
		m.remove(m.order[0])
	}

	m.entries[city] = memoryEntry{payload: payload, expiresAt: time.Now().Add(m.ttl)}
	m.order = append(m.order, city)
}

func (m *Memory) Len(_ context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	n := 0
	for _, entry := range m.entries {
		if now.Before(entry.expiresAt) {
			n++
		}
	}
	return n
}

// remove deletes an entry and its order slot. Caller holds the lock.
func (m *Memory) remove(city string) {
	delete(m.entries, city)
	for i, key := range m.order {
		if key == city {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}
