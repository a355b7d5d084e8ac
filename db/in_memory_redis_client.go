package db

import (
	"fmt"
	"path"
	"sort"
	"sync"
)

// InMemoryRedisClient is a process-local RedisClient. It backs the "memory"
// cache and stands in for Redis in tests.
type InMemoryRedisClient struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewInMemoryRedisClient initializes an empty store.
func NewInMemoryRedisClient() *InMemoryRedisClient {
	return &InMemoryRedisClient{
		data: make(map[string]string),
	}
}

func (m *InMemoryRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *InMemoryRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// Keys matches glob patterns the way Redis KEYS does for the '*', '?' and '[...]' forms.
func (m *InMemoryRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := []string{}
	for k := range m.data {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("bad key pattern %q: %w", pattern, err)
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *InMemoryRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Ping always succeeds.
func (m *InMemoryRedisClient) Ping() error {
	return nil
}
