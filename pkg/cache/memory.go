package cache

import (
	"container/list"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultMaxEntries is the entry limit used when none is configured.
const DefaultMaxEntries = 1024

type entry[V any] struct {
	value V
	key   string
}

// Memory is an LRU cache with a fixed entry limit.
//
// It uses a hash map for O(1) lookups and a doubly-linked list for O(1)
// eviction. The most recently used entries are at the front of the list.
type Memory[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	group    singleflight.Group
	max      int
	mu       sync.Mutex
}

// Option configures the in-memory cache.
type Option func(*options)

type options struct {
	maxEntries int
}

// WithMaxEntries sets the maximum number of entries. When the limit is
// reached the least recently used entry is evicted. Values below one fall
// back to DefaultMaxEntries.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		o.maxEntries = n
	}
}

// NewMemory creates a new in-memory cache.
func NewMemory[V any](opts ...Option) *Memory[V] {
	o := &options{maxEntries: DefaultMaxEntries}
	for _, opt := range opts {
		opt(o)
	}
	if o.maxEntries < 1 {
		o.maxEntries = DefaultMaxEntries
	}

	return &Memory[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		max:      o.maxEntries,
	}
}

// Get retrieves a value by key and marks it as recently used.
// Returns ErrNotFound if the key does not exist.
func (m *Memory[V]) Get(key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	m.eviction.MoveToFront(elem)
	return elem.Value.(*entry[V]).value, nil
}

// Set stores a value, evicting the least recently used entry when full.
func (m *Memory[V]) Set(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		elem.Value.(*entry[V]).value = value
		m.eviction.MoveToFront(elem)
		return
	}

	if len(m.items) >= m.max {
		if oldest := m.eviction.Back(); oldest != nil {
			m.eviction.Remove(oldest)
			delete(m.items, oldest.Value.(*entry[V]).key)
		}
	}

	m.items[key] = m.eviction.PushFront(&entry[V]{key: key, value: value})
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.eviction.Remove(elem)
		delete(m.items, key)
	}
}

// Len returns the number of cached entries.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Clear removes all entries.
func (m *Memory[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]*list.Element)
	m.eviction.Init()
}

// GetOrSet returns the cached value for key, or calls fn and caches its
// result on a miss. Concurrent misses for the same key share one call to fn.
// Errors from fn are returned and not cached.
func (m *Memory[V]) GetOrSet(key string, fn func() (V, error)) (V, error) {
	if v, err := m.Get(key); err == nil {
		return v, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		val, err := fn()
		if err != nil {
			return nil, err
		}
		m.Set(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	val, _ := v.(V)
	return val, nil
}
