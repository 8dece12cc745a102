package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level stored as a Sentry log: "warn" or "error".
	MinLevel string `env:"SENTRY_MIN_LEVEL" envDefault:"warn"`
}

// flushTimeout bounds how long the returned flush func waits for Sentry.
const flushTimeout = 2 * time.Second

// NewWithSentry creates a logger that writes to stdout and, when a DSN is
// configured, to Sentry. Errors become Sentry issues. The returned func
// flushes buffered Sentry events and must be called before exit.
func NewWithSentry(cfg Config, extractors ...ContextExtractor) (*slog.Logger, func()) {
	stdout := NewHandler(os.Stdout, cfg)
	noop := func() {}

	if cfg.Sentry.DSN == "" {
		return slog.New(NewLogHandlerDecorator(stdout, extractors...)), noop
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stdout, extractors...)), noop
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if ParseLevel(cfg.Sentry.MinLevel) >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	log := slog.New(NewLogHandlerDecorator(newMultiHandler(stdout, sentryHandler), extractors...))
	return log, func() { sentry.Flush(flushTimeout) }
}
