package ais

import (
	"sync"
	"time"

	"seatime/internal/core/sample"
)

// cache is a short lived per MMSI sample cache
type cache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]cached
}

type cached struct {
	s  sample.Sample
	at time.Time
}

func newCache(ttl time.Duration) *cache {
	return &cache{ttl: ttl, items: map[string]cached{}}
}

func (c *cache) get(key string, now time.Time) (sample.Sample, bool) {
	if c.ttl <= 0 {
		return sample.Sample{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[key]
	if !ok {
		return sample.Sample{}, false
	}
	if now.Sub(it.at) >= c.ttl {
		delete(c.items, key)
		return sample.Sample{}, false
	}
	return it.s, true
}

func (c *cache) put(key string, s sample.Sample, now time.Time) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.items[key] = cached{s: s, at: now}
	c.mu.Unlock()
}
