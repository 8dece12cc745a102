package locale

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/msgkit/pkg/cache"
)

// CachedDatabase memoises the answers of another Database, keyed by the exact
// input tag list. Locale data does not change at runtime, so entries never
// expire; the underlying LRU bounds memory instead.
type CachedDatabase struct {
	next  Database
	cache *cache.Memory[[]string]
}

// NewCachedDatabase wraps next with a bounded cache.
func NewCachedDatabase(next Database, opts ...cache.Option) *CachedDatabase {
	return &CachedDatabase{
		next:  next,
		cache: cache.NewMemory[[]string](opts...),
	}
}

// Canonicalize implements Database.
func (c *CachedDatabase) Canonicalize(tags []string) ([]string, error) {
	out, err := c.cache.GetOrSet(cacheKey("canonical", tags), func() ([]string, error) {
		return c.next.Canonicalize(tags)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(out), nil
}

// Supported implements Database.
func (c *CachedDatabase) Supported(tags []string, m Matcher) ([]string, error) {
	out, err := c.cache.GetOrSet(cacheKey("supported:"+m.String(), tags), func() ([]string, error) {
		return c.next.Supported(tags, m)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(out), nil
}

func cacheKey(op string, tags []string) string {
	return op + "\x00" + strings.Join(tags, "\x00")
}
