package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit/pkg/logger"
)

type ctxKey struct{}

func fromCtx(ctx context.Context) (slog.Attr, bool) {
	v, ok := ctx.Value(ctxKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("locale", v), true
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected slog.Level
	}{
		{in: "debug", expected: slog.LevelDebug},
		{in: "INFO", expected: slog.LevelInfo},
		{in: "warn", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "", expected: slog.LevelInfo},
		{in: "verbose", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, logger.ParseLevel(tt.in))
		})
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		slog.New(logger.NewHandler(&buf, logger.Config{})).Info("hello")
		require.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("text format and level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.NewHandler(&buf, logger.Config{Level: "warn", Format: "text"}))
		log.Info("dropped")
		log.Warn("kept")
		require.NotContains(t, buf.String(), "dropped")
		require.Contains(t, buf.String(), "msg=kept")
	})
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil, fromCtx))

	log.InfoContext(context.WithValue(context.Background(), ctxKey{}, "nl-NL"), "first")
	require.Contains(t, buf.String(), `"locale":"nl-NL"`)

	buf.Reset()
	log.With("component", "render").WithGroup("g").InfoContext(context.WithValue(context.Background(), ctxKey{}, "fr-FR"), "second", "k", "v")
	require.Contains(t, buf.String(), `"component":"render"`)
	require.Contains(t, buf.String(), `"locale":"fr-FR"`)

	buf.Reset()
	log.Info("third")
	require.NotContains(t, buf.String(), "locale")
}

func TestNewWithSentry_WithoutDSN(t *testing.T) {
	t.Parallel()

	log, flush := logger.NewWithSentry(logger.Config{})
	require.NotNil(t, log)
	require.NotPanics(t, flush)
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
	require.NotPanics(t, func() { log.Error("ignored") })
}
