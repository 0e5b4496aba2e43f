package data

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"bufferstock/internal/model"
	"bufferstock/internal/solve"
)

// SolutionCache is an in-memory TTL cache of solved policies keyed by a hash
// of the full parameter set. Solving an infinite-horizon model takes hundreds
// of backward iterations, so the API reuses policies across requests with
// identical parameters.
type SolutionCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
}

type cacheEntry struct {
	policy    []*solve.Solution
	expiresAt time.Time
}

// NewSolutionCache builds a cache with the given TTL and starts its cleanup
// loop. A nil *SolutionCache is a valid no-op cache.
func NewSolutionCache(ttl time.Duration) *SolutionCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := &SolutionCache{
		store: make(map[string]*cacheEntry),
		ttl:   ttl,
	}
	go c.cleanup()
	return c
}

// Get retrieves a cached policy if present and not expired.
func (c *SolutionCache) Get(key string) ([]*solve.Solution, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.policy, true
}

// Set stores a solved policy.
func (c *SolutionCache) Set(key string, policy []*solve.Solution) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = &cacheEntry{policy: policy, expiresAt: time.Now().Add(c.ttl)}
}

// Clear removes all entries.
func (c *SolutionCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*cacheEntry)
}

// Len reports live entries (including not-yet-collected expired ones).
func (c *SolutionCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *SolutionCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.expiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

// Key derives a deterministic cache key from the solver-relevant parameters.
// Simulation fields are included too; they are cheap and keep the key logic
// obvious.
func Key(p model.Params) string {
	keyStr := fmt.Sprintf("%+v", p)
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
