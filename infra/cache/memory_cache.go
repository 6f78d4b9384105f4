package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/onboarding/pkg/cache"
	"github.com/amirasaad/onboarding/pkg/domain/registration"
)

// MemoryCache implements cache.RequestCache in process memory.
type MemoryCache struct {
	entries map[string]cacheEntry
	mu      sync.RWMutex
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type cacheEntry struct {
	req       *registration.AccountRequest
	expiresAt time.Time
}

// NewMemoryCache creates a memory cache that sweeps expired entries every
// sweep interval. Call Close to stop the sweeper.
func NewMemoryCache(sweep time.Duration) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if sweep > 0 {
		go c.cleanup(sweep)
	}
	return c
}

// Get returns a deep copy of the cached request.
func (c *MemoryCache) Get(_ context.Context, requestID string) (*registration.AccountRequest, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[requestID]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.req.Clone(), true, nil
}

func (c *MemoryCache) Set(_ context.Context, req *registration.AccountRequest, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[req.RequestID] = cacheEntry{req: req.Clone(), expiresAt: c.now().Add(ttl)}
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, requestID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, requestID)
	return nil
}

// Close stops the sweeper.
func (c *MemoryCache) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *MemoryCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.purge()
		}
	}
}

func (c *MemoryCache) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

var _ cache.RequestCache = (*MemoryCache)(nil)
