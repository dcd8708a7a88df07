// Package cache provides a bounded, TTL-based template cache with LRU eviction.
package cache

import (
	"sync"
	"time"

	"github.com/jonathan/resume-engine/internal/types"
)

// Default cache tuning values
const (
	DefaultMaxSize = 100
	DefaultTTL     = 30 * time.Minute
)

// Entry is the bookkeeping wrapper around a cached template
type Entry struct {
	Value        *types.ResumeTemplate
	Timestamp    time.Time
	AccessCount  int
	LastAccessed time.Time
}

// Stats is a point-in-time snapshot of cache effectiveness. Reads are
// eventually consistent with concurrent writers; get/set semantics are exact.
type Stats struct {
	Size    int     `json:"size"`
	MaxSize int     `json:"max_size"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// TemplateCache is a mutex-guarded template store with lazy TTL expiry and
// LRU-by-last-access eviction. It is the only shared mutable resource in the
// engine and is safe for concurrent use.
type TemplateCache struct {
	mu      sync.Mutex
	entries map[string]*Entry
	maxSize int
	ttl     time.Duration
	hits    int64
	misses  int64
	now     func() time.Time // overridable for tests
}

// Option configures a TemplateCache
type Option func(*TemplateCache)

// WithMaxSize bounds the number of cached templates
func WithMaxSize(n int) Option {
	return func(c *TemplateCache) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithTTL sets the entry time-to-live
func WithTTL(ttl time.Duration) Option {
	return func(c *TemplateCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock overrides the time source. Tests use this to exercise expiry
// without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *TemplateCache) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a TemplateCache with the given options
func New(opts ...Option) *TemplateCache {
	c := &TemplateCache{
		entries: make(map[string]*Entry),
		maxSize: DefaultMaxSize,
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached template for id, or nil if absent or expired.
// A hit refreshes the entry's last-access time and access count; both hits
// and misses feed the running stats.
func (c *TemplateCache) Get(id string) *types.ResumeTemplate {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		c.misses++
		return nil
	}
	if c.expired(entry) {
		delete(c.entries, id)
		c.misses++
		return nil
	}

	entry.LastAccessed = c.now()
	entry.AccessCount++
	c.hits++
	return entry.Value
}

// Set stores a template under id. Inserting a new key at capacity first
// evicts the entry with the oldest last-access time.
func (c *TemplateCache) Set(id string, template *types.ResumeTemplate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[id]; !exists && len(c.entries) >= c.maxSize {
		c.evictLRU()
	}

	now := c.now()
	c.entries[id] = &Entry{
		Value:        template,
		Timestamp:    now,
		AccessCount:  0,
		LastAccessed: now,
	}
}

// Has reports whether a fresh entry exists for id. Expired entries are
// removed and reported absent. Has does not touch access bookkeeping or
// hit/miss counters.
func (c *TemplateCache) Has(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return false
	}
	if c.expired(entry) {
		delete(c.entries, id)
		return false
	}
	return true
}

// Delete removes the entry for id, reporting whether it was present
func (c *TemplateCache) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[id]
	delete(c.entries, id)
	return ok
}

// Clear removes every entry and resets the hit/miss counters
func (c *TemplateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*Entry)
	c.hits = 0
	c.misses = 0
}

// Cleanup removes every expired entry and returns how many were removed.
// Expiry is otherwise lazy; callers may invoke this periodically.
func (c *TemplateCache) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for id, entry := range c.entries {
		if c.expired(entry) {
			delete(c.entries, id)
			removed++
		}
	}
	return removed
}

// Size returns the current entry count, including not-yet-collected expired
// entries.
func (c *TemplateCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetStats returns a snapshot of cache effectiveness
func (c *TemplateCache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Stats{
		Size:    len(c.entries),
		MaxSize: c.maxSize,
		Hits:    c.hits,
		Misses:  c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		stats.HitRate = float64(c.hits) / float64(total)
	}
	return stats
}

// expired reports whether entry has outlived the TTL. Callers must hold mu.
func (c *TemplateCache) expired(entry *Entry) bool {
	return c.now().Sub(entry.Timestamp) > c.ttl
}

// evictLRU removes the entry with the oldest last-access time. Callers must
// hold mu.
func (c *TemplateCache) evictLRU() {
	var oldestID string
	var oldest time.Time
	first := true
	for id, entry := range c.entries {
		if first || entry.LastAccessed.Before(oldest) {
			oldestID = id
			oldest = entry.LastAccessed
			first = false
		}
	}
	if oldestID != "" {
		delete(c.entries, oldestID)
	}
}
