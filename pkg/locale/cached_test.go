package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit/pkg/cache"
	"github.com/dmitrymomot/msgkit/pkg/locale"
)

func TestCachedDatabase(t *testing.T) {
	t.Parallel()

	t.Run("memoises by exact input", func(t *testing.T) {
		t.Parallel()

		next := &fakeDatabase{}
		db := locale.NewCachedDatabase(next, cache.WithMaxEntries(16))
		r := locale.NewResolver(locale.WithDatabase(db))

		for range 3 {
			got, err := r.Resolve([]string{"en-US"}, []string{"en", "fr"}, locale.BestFit)
			require.NoError(t, err)
			require.Equal(t, "en", got)
		}

		// canonicalize(supported) + supported + canonicalize(user), once each.
		require.Equal(t, 3, next.calls)
	})

	t.Run("matcher is part of the key", func(t *testing.T) {
		t.Parallel()

		next := &fakeDatabase{}
		db := locale.NewCachedDatabase(next)

		_, err := db.Supported([]string{"en"}, locale.BestFit)
		require.NoError(t, err)
		_, err = db.Supported([]string{"en"}, locale.Lookup)
		require.NoError(t, err)
		require.Equal(t, []locale.Matcher{locale.BestFit, locale.Lookup}, next.matchers)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()

		next := &fakeDatabase{}
		db := locale.NewCachedDatabase(next)

		_, err := db.Canonicalize([]string{"invalid-locale"})
		require.ErrorIs(t, err, locale.ErrInvalidLocaleTag)
		_, err = db.Canonicalize([]string{"invalid-locale"})
		require.ErrorIs(t, err, locale.ErrInvalidLocaleTag)
		require.Equal(t, 2, next.calls)
	})

	t.Run("returned slices are private copies", func(t *testing.T) {
		t.Parallel()

		db := locale.NewCachedDatabase(&fakeDatabase{})
		first, err := db.Canonicalize([]string{"en"})
		require.NoError(t, err)
		first[0] = "mutated"

		second, err := db.Canonicalize([]string{"en"})
		require.NoError(t, err)
		require.Equal(t, []string{"en"}, second)
	})
}
