package cache

import (
	"context"
	"sync"

	"github.com/stayview/revgrid/backend-go/internal/domain"
)

const defaultMaxEntries = 10000

type MemoryStatusCache struct {
	mu         sync.RWMutex
	entries    map[string]domain.SmartInventoryStatus
	order      []string // insertion order, for FIFO eviction
	maxEntries int
}

// NewMemoryStatusCache returns an in-process StatusCache bounded at
// maxEntries (FIFO eviction once full). A non-positive maxEntries falls back
// to the default bound; the cache is never unbounded, since orphaned keys
// from inventory writes would otherwise accumulate for the process lifetime.
func NewMemoryStatusCache(maxEntries int) *MemoryStatusCache {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &MemoryStatusCache{
		entries:    make(map[string]domain.SmartInventoryStatus),
		maxEntries: maxEntries,
	}
}

func (c *MemoryStatusCache) Get(ctx context.Context, key string) (domain.SmartInventoryStatus, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status, ok := c.entries[key]
	return status, ok, nil
}

func (c *MemoryStatusCache) Set(ctx context.Context, key string, status domain.SmartInventoryStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		for len(c.entries) >= c.maxEntries && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = status

	return nil
}

func (c *MemoryStatusCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		return nil
	}

	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	return nil
}

func (c *MemoryStatusCache) Flush(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]domain.SmartInventoryStatus)
	c.order = nil

	return nil
}

// Len reports the current entry count. Used by tests and the admin surface.
func (c *MemoryStatusCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
