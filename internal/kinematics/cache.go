package kinematics

import "sync"

// SequenceCache stores computed sequence results keyed by session id.
// Several downstream consumers read the same result, so the analyzer
// consults an injected cache rather than recomputing. There is no
// automatic expiry: whenever a session's underlying frames change, the
// caller must Evict the stale entry.
type SequenceCache interface {
	Get(sessionID string) (*SequenceResult, bool)
	Put(sessionID string, res *SequenceResult)
	Evict(sessionID string)
}

// MemoryCache is a mutex-guarded in-memory SequenceCache. It is safe for
// concurrent use and holds entries until they are explicitly evicted.
type MemoryCache struct {
	mu      sync.RWMutex
	results map[string]*SequenceResult
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{results: make(map[string]*SequenceResult)}
}

// Get returns the cached result for a session, if any.
func (c *MemoryCache) Get(sessionID string) (*SequenceResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.results[sessionID]
	return res, ok
}

// Put stores a result, replacing any existing entry for the session.
func (c *MemoryCache) Put(sessionID string, res *SequenceResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[sessionID] = res
}

// Evict removes a session's entry. Evicting an absent session is a
// no-op.
func (c *MemoryCache) Evict(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.results, sessionID)
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

// Clear drops every entry.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = make(map[string]*SequenceResult)
}
