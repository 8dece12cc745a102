package cache_test

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit/pkg/cache"
)

func TestMemory_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		_, err := c.Get("missing")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int]()
		c.Set("key", 42)

		val, err := c.Get("key")
		require.NoError(t, err)
		require.Equal(t, 42, val)
	})

	t.Run("overwrites existing value", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		c.Set("key", "a")
		c.Set("key", "b")

		val, err := c.Get("key")
		require.NoError(t, err)
		require.Equal(t, "b", val)
		require.Equal(t, 1, c.Len())
	})
}

func TestMemory_Eviction(t *testing.T) {
	t.Parallel()

	t.Run("evicts least recently used entry", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int](cache.WithMaxEntries(2))
		c.Set("a", 1)
		c.Set("b", 2)

		// Touch "a" so that "b" becomes the eviction candidate.
		_, err := c.Get("a")
		require.NoError(t, err)

		c.Set("c", 3)

		require.Equal(t, 2, c.Len())
		_, err = c.Get("b")
		require.ErrorIs(t, err, cache.ErrNotFound)
		_, err = c.Get("a")
		require.NoError(t, err)
		_, err = c.Get("c")
		require.NoError(t, err)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int](cache.WithMaxEntries(0))
		for i := range cache.DefaultMaxEntries + 10 {
			c.Set("k"+strconv.Itoa(i), i)
		}
		require.Equal(t, cache.DefaultMaxEntries, c.Len())
	})
}

func TestMemory_DeleteAndClear(t *testing.T) {
	t.Parallel()

	c := cache.NewMemory[int]()
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	c.Delete("missing")
	_, err := c.Get("a")
	require.ErrorIs(t, err, cache.ErrNotFound)
	require.Equal(t, 1, c.Len())

	c.Clear()
	require.Equal(t, 0, c.Len())
}

func TestMemory_GetOrSet(t *testing.T) {
	t.Parallel()

	t.Run("computes once and caches", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		var calls atomic.Int32
		fn := func() (string, error) {
			calls.Add(1)
			return "value", nil
		}

		for range 3 {
			v, err := c.GetOrSet("key", fn)
			require.NoError(t, err)
			require.Equal(t, "value", v)
		}
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("does not cache errors", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		boom := errors.New("boom")

		_, err := c.GetOrSet("key", func() (string, error) { return "", boom })
		require.ErrorIs(t, err, boom)
		require.Equal(t, 0, c.Len())

		v, err := c.GetOrSet("key", func() (string, error) { return "ok", nil })
		require.NoError(t, err)
		require.Equal(t, "ok", v)
	})

	t.Run("deduplicates concurrent misses", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int]()
		var calls atomic.Int32
		release := make(chan struct{})

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := c.GetOrSet("key", func() (int, error) {
					calls.Add(1)
					<-release
					return 7, nil
				})
				assert.NoError(t, err)
				assert.Equal(t, 7, v)
			}()
		}

		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		require.LessOrEqual(t, calls.Load(), int32(8))
		require.GreaterOrEqual(t, calls.Load(), int32(1))
		v, err := c.Get("key")
		require.NoError(t, err)
		require.Equal(t, 7, v)
	})
}
