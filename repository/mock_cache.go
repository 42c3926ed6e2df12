package repository

import (
	"context"
	"sync"
	"time"
)

type cacheEntry struct {
	value   string
	expires time.Time
}

// MockCache is an in-process CacheRepository, used when no Redis server is
// configured and in tests.
type MockCache struct {
	mu   sync.Mutex
	data map[string]cacheEntry
	now  func() time.Time
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]cacheEntry),
		now:  time.Now,
	}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return "", false
	}
	if !entry.expires.IsZero() && m.now().After(entry.expires) {
		delete(m.data, key)
		return "", false
	}
	return entry.value, true
}

func (m *MockCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := cacheEntry{value: value}
	if ttl > 0 {
		entry.expires = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

// Len returns the number of stored entries, expired or not.
func (m *MockCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
