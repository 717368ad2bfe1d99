package store

import "sync/atomic"

// Cache is an in-memory snapshot of every item, keyed by fully qualified
// "owner/name" address. It is rebuilt wholesale by a full repository scan
// after any mutation and never patched incrementally, so it cannot drift
// from filesystem truth between rebuilds.
//
// The snapshot is an immutable map swapped atomically: a reader never
// observes a half-built mapping, even if a rebuild races it.
type Cache struct {
	snap atomic.Pointer[map[string]string]
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	c := &Cache{}
	empty := make(map[string]string)
	c.snap.Store(&empty)
	return c
}

// Lookup returns the cached content for a fully qualified address.
func (c *Cache) Lookup(address string) (string, bool) {
	content, ok := (*c.snap.Load())[address]
	return content, ok
}

// Items returns the current snapshot. Callers must treat it as read-only.
func (c *Cache) Items() map[string]string {
	return *c.snap.Load()
}

// Len returns the number of cached items.
func (c *Cache) Len() int {
	return len(*c.snap.Load())
}

// Replace swaps in a new snapshot.
func (c *Cache) Replace(items map[string]string) {
	c.snap.Store(&items)
}
