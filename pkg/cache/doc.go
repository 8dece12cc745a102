// Package cache provides a bounded, in-memory LRU cache for memoising pure
// computations.
//
// Entries never expire: the cache is meant for results that cannot go stale,
// such as canonical locale tags. The entry limit bounds memory when keys come
// from untrusted input (for example Accept-Language headers).
//
// # Usage
//
//	c := cache.NewMemory[[]string](cache.WithMaxEntries(512))
//
//	tags, err := c.GetOrSet(key, func() ([]string, error) {
//		return db.Canonicalize(raw)
//	})
//
// GetOrSet collapses concurrent misses for the same key into a single call
// of the compute function. Failed computations are not cached.
//
// All methods are safe for concurrent use.
package cache
