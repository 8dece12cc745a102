// Package middlewares provides net/http middleware for msgkit applications.
//
// Every middleware has the func(http.Handler) http.Handler shape, so it
// plugs into chi or a plain http.ServeMux.
//
// # I18n
//
// I18n negotiates the request locale and stores it, together with the Kit,
// in the request context where msgkit.T and msgkit.S read it.
//
//	r := chi.NewRouter()
//	r.Use(middlewares.I18n(kit,
//	    middlewares.WithI18nCookie("lang", 365*24*time.Hour),
//	))
//
// An explicit choice from the "lang" query parameter or cookie is tried
// first, then the Accept-Language header. Client input that cannot be
// resolved falls back to the default locale; it never fails the request.
// The resolved locale is echoed as Content-Language.
//
// # Request ID
//
// RequestID assigns a unique ID to each request. An upstream X-Request-ID or
// X-Correlation-ID is kept; otherwise a UUIDv7 is generated.
//
// Use RequestIDExtractor with the logger for automatic request_id in logs:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor(), msgkit.LogLocale())
//
// # Recover
//
// Recover catches panics, logs them as a PanicError with a stack trace and
// answers 500 Internal Server Error.
//
//	r.Use(middlewares.Recover(middlewares.WithRecoverLogger(log)))
package middlewares
