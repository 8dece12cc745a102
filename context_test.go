package msgkit_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit"
	"github.com/dmitrymomot/msgkit/pkg/logger"
	"github.com/dmitrymomot/msgkit/pkg/parts"
)

func TestContext(t *testing.T) {
	t.Parallel()

	k := newKit(t)

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()

		_, ok := msgkit.KitFrom(context.Background())
		require.False(t, ok)
		_, ok = msgkit.LocaleFrom(context.Background())
		require.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		ctx := msgkit.WithLocale(msgkit.WithKit(context.Background(), k), "nl-NL")
		got, ok := msgkit.KitFrom(ctx)
		require.True(t, ok)
		require.Same(t, k, got)

		loc, ok := msgkit.LocaleFrom(ctx)
		require.True(t, ok)
		require.Equal(t, "nl-NL", loc)
	})

	t.Run("translator errors", func(t *testing.T) {
		t.Parallel()

		_, err := msgkit.TranslatorFrom(context.Background())
		require.ErrorIs(t, err, msgkit.ErrNoKit)

		_, err = msgkit.TranslatorFrom(msgkit.WithKit(context.Background(), k))
		require.ErrorIs(t, err, msgkit.ErrNoLocale)

		_, err = msgkit.TranslatorFrom(msgkit.WithLocale(msgkit.WithKit(context.Background(), k), ""))
		require.ErrorIs(t, err, msgkit.ErrNoLocale)
	})

	t.Run("nested locale overrides outer", func(t *testing.T) {
		t.Parallel()

		outer := msgkit.WithLocale(msgkit.WithKit(context.Background(), k), "nl-NL")
		inner := msgkit.WithLocale(outer, "fr-FR")

		args := map[string]any{"name": "Ada"}
		require.Equal(t, "Hallo \u2068Ada\u2069!", msgkit.S(outer, "hello", args))
		require.Equal(t, "Bonjour \u2068Ada\u2069 !", msgkit.S(inner, "hello", args))
	})
}

func TestT(t *testing.T) {
	t.Parallel()

	k := newKit(t)
	ctx := msgkit.WithLocale(msgkit.WithKit(context.Background(), k), "fr-FR")
	c := msgkit.T("hello", map[string]any{"name": "Ada"}, parts.Overrides{"b": parts.Rename("em")})

	require.Equal(t, "Bonjour <em>Ada</em> !", renderString(t, ctx, c))

	err := c.Render(context.Background(), io.Discard)
	require.ErrorIs(t, err, msgkit.ErrNoKit)
}

func TestS_WithoutKit(t *testing.T) {
	t.Parallel()

	require.Equal(t, "nameInput.label", msgkit.S(context.Background(), "nameInput.label", nil))
}

func TestLogLocale(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), msgkit.LogLocale()))

	log.InfoContext(context.Background(), "no locale")
	require.NotContains(t, buf.String(), `"locale"`)

	buf.Reset()
	log.InfoContext(msgkit.WithLocale(context.Background(), "nl-NL"), "with locale")
	require.Contains(t, buf.String(), `"locale":"nl-NL"`)
}
