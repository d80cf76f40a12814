package session

import (
	"context"
	"sync"
)

// MemoryCache is a process-local Cache used when no database is configured.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string][]byte)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	payload, ok := c.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), payload...), nil
}

func (c *MemoryCache) Set(_ context.Context, key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = append([]byte(nil), payload...)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}
