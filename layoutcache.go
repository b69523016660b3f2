package pipesig

import (
	"sync"
	"sync/atomic"
)

// LayoutCache deduplicates pipeline layout objects across structurally
// identical signatures.
//
// Layout creation is expensive because it involves backend descriptor
// objects. The cache keys entries by Hash and verifies candidates with
// Compatible, so two signatures that differ only in naming share one
// layout object and hash collisions can never alias distinct layouts.
//
// L is the backend's layout type; the cache never inspects it.
//
// Thread safety:
// LayoutCache is safe for concurrent use. It uses RWMutex with
// double-check locking for efficient reads and safe writes.
//
// Usage:
//
//	cache := pipesig.NewLayoutCache[*backendLayout]()
//	layout, err := cache.GetOrCreate(desc, func() (*backendLayout, error) {
//	    return buildLayout(desc)
//	})
type LayoutCache[L any] struct {
	// mu protects entries.
	mu sync.RWMutex

	// entries buckets layouts by signature hash. A bucket holds more
	// than one entry only on a hash collision.
	entries map[uint64][]layoutCacheEntry[L]

	// hits counts cache hits (atomic for lock-free reads).
	hits atomic.Uint64

	// misses counts cache misses (atomic for lock-free reads).
	misses atomic.Uint64
}

// layoutCacheEntry pairs a layout with the descriptor it was built
// from. The descriptor is a private copy used for Compatible checks.
type layoutCacheEntry[L any] struct {
	desc   *SignatureDesc
	layout L
}

// NewLayoutCache creates an empty layout cache.
func NewLayoutCache[L any]() *LayoutCache[L] {
	return &LayoutCache[L]{
		entries: make(map[uint64][]layoutCacheEntry[L]),
	}
}

// GetOrCreate returns the layout cached for a signature compatible with
// desc, or calls create and caches the result.
//
// desc must already be validated. The cache stores its own copy of the
// descriptor, so the caller may reuse or mutate desc afterwards.
//
// If create fails, nothing is cached and the error is returned
// unchanged.
func (c *LayoutCache[L]) GetOrCreate(desc *SignatureDesc, create func() (L, error)) (L, error) {
	var zero L
	if desc == nil {
		return zero, ErrNilDescriptor
	}

	key := Hash(desc)

	// Fast path: read lock
	c.mu.RLock()
	if layout, ok := c.lookup(key, desc); ok {
		c.mu.RUnlock()
		c.hits.Add(1)
		return layout, nil
	}
	c.mu.RUnlock()

	// Slow path: write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()

	if layout, ok := c.lookup(key, desc); ok {
		c.hits.Add(1)
		return layout, nil
	}

	layout, err := create()
	if err != nil {
		return zero, err
	}

	c.entries[key] = append(c.entries[key], layoutCacheEntry[L]{
		desc:   desc.clone(),
		layout: layout,
	})
	c.misses.Add(1)

	return layout, nil
}

// lookup scans the hash bucket for a compatible entry.
// Callers must hold mu.
func (c *LayoutCache[L]) lookup(key uint64, desc *SignatureDesc) (L, bool) {
	for _, e := range c.entries[key] {
		if Compatible(e.desc, desc) {
			return e.layout, true
		}
	}
	var zero L
	return zero, false
}

// Stats returns the number of cache hits and misses.
// These values are read atomically and may not be perfectly
// synchronized with each other.
func (c *LayoutCache[L]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// HitRate returns the cache hit rate in [0.0, 1.0].
// Returns 0.0 if no requests have been made.
func (c *LayoutCache[L]) HitRate() float64 {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

// Size returns the number of cached layouts.
func (c *LayoutCache[L]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, bucket := range c.entries {
		n += len(bucket)
	}
	return n
}

// Clear removes all cached layouts and resets statistics.
//
// Clear does not destroy the layout objects; release backend resources
// separately if needed.
func (c *LayoutCache[L]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[uint64][]layoutCacheEntry[L])
	c.hits.Store(0)
	c.misses.Store(0)
}
