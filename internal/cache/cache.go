// Package cache stores completed search responses for a fixed TTL so
// repeat queries skip the scrape entirely.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/mealscout/recipe-scout/internal/clock"
	"github.com/mealscout/recipe-scout/internal/recipe"
)

// entry pairs a stored response with its expiry and insertion order.
type entry struct {
	response recipe.SearchResponse
	expires  time.Time
	seq      uint64
}

// Cache is a capacity-bounded TTL map. Once full, the oldest-inserted
// entry is evicted; access order is not tracked. Safe for concurrent
// use.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	ttl      time.Duration
	capacity int
	clock    clock.Clock
	seq      uint64
}

// New builds a cache holding at most capacity entries for ttl each.
func New(ttl time.Duration, capacity int, clk clock.Clock) *Cache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if capacity <= 0 {
		capacity = 100
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &Cache{
		entries:  make(map[string]*entry, capacity),
		ttl:      ttl,
		capacity: capacity,
		clock:    clk,
	}
}

// Key normalizes search parameters into a cache key. Related terms are
// advisory scoring input and deliberately excluded.
func Key(p recipe.SearchParams) string {
	parts := []string{p.Ingredients, p.TimeAvailable, p.Cuisine, string(p.Strictness)}
	for i, s := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return strings.Join(parts, "|")
}

// Get returns the cached response for key, if present and unexpired.
func (c *Cache) Get(key string) (recipe.SearchResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return recipe.SearchResponse{}, false
	}
	if !c.clock.Now().Before(e.expires) {
		delete(c.entries, key)
		return recipe.SearchResponse{}, false
	}
	return e.response, true
}

// Set stores a response under key, evicting the oldest entry when the
// cache is full.
func (c *Cache) Set(key string, resp recipe.SearchResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}
	c.seq++
	c.entries[key] = &entry{
		response: resp,
		expires:  c.clock.Now().Add(c.ttl),
		seq:      c.seq,
	}
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) evictOldestLocked() {
	var oldest string
	var oldestSeq uint64
	for key, e := range c.entries {
		if oldest == "" || e.seq < oldestSeq {
			oldest = key
			oldestSeq = e.seq
		}
	}
	if oldest != "" {
		delete(c.entries, oldest)
	}
}
