// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// Context extractors add request-scoped values to every record logged with a
// context:
//
//	log := logger.New(logger.Config{Level: "debug"},
//		middlewares.RequestIDExtractor(),
//		msgkit.LogLocale(),
//	)
//	log.InfoContext(r.Context(), "page rendered")
//	// {"level":"INFO","msg":"page rendered","request_id":"…","locale":"nl-NL"}
//
// Config carries env tags, so it can be filled by github.com/caarlos0/env:
//
//	LOG_LEVEL=debug LOG_FORMAT=text SENTRY_DSN=https://…
//
// NewWithSentry fans records out to stdout and Sentry when a DSN is set and
// falls back to stdout alone otherwise. Errors become Sentry issues; warnings
// are stored as Sentry logs unless SENTRY_MIN_LEVEL is "error".
//
// NewNope returns a logger that discards everything. Libraries in this module
// use it when no logger is configured.
package logger
