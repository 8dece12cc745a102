// Command playground serves a small localized page exercising msgkit:
// locale negotiation, catalog lookup, markup overrides and bidi-safe
// interpolation.
package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/msgkit"
	"github.com/dmitrymomot/msgkit/middlewares"
	"github.com/dmitrymomot/msgkit/pkg/catalog"
	"github.com/dmitrymomot/msgkit/pkg/locale"
	"github.com/dmitrymomot/msgkit/pkg/logger"
	"github.com/dmitrymomot/msgkit/pkg/render"
)

//go:embed messages
var messagesFS embed.FS

// localeCookieMaxAge is how long an explicit locale choice is remembered.
const localeCookieMaxAge = 365 * 24 * time.Hour

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, flush := logger.NewWithSentry(cfg.Log,
		middlewares.RequestIDExtractor(),
		msgkit.LogLocale(),
	)
	defer flush()

	kit, err := newKit(cfg, log)
	if err != nil {
		return err
	}

	srv := newServer(newRouter(kit, log))
	return serve(context.Background(), log, srv, cfg.HTTPAddr(), cfg.ShutdownTimeout)
}

func newKit(cfg Config, log *slog.Logger) (*msgkit.Kit, error) {
	messages, err := fs.Sub(messagesFS, "messages")
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(
		catalog.WithDefaultLocale(cfg.DefaultLocale),
		catalog.WithYAMLDir(messages),
		catalog.WithMissingKeyHandler(func(loc, namespace, key string) {
			log.Warn("missing message",
				slog.String("locale", loc),
				slog.String("namespace", namespace),
				slog.String("key", key),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	matcher, err := locale.ParseMatcher(cfg.Matcher)
	if err != nil {
		return nil, err
	}

	var renderOpts []render.Option
	if cfg.SanitizeMessages {
		renderOpts = append(renderOpts, render.WithPolicy(render.MessagePolicy()))
	}

	kit, err := msgkit.New(
		msgkit.WithDefaultLocale(cfg.DefaultLocale),
		msgkit.WithLocales(cfg.Locales...),
		msgkit.WithFormatter(cat),
		msgkit.WithMatcher(matcher),
		msgkit.WithLogger(log),
		msgkit.WithRenderOptions(renderOpts...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kit: %w", err)
	}
	return kit, nil
}

func newRouter(kit *msgkit.Kit, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middlewares.Recover(middlewares.WithRecoverLogger(log)),
		middlewares.RequestID(),
		middlewares.I18n(kit,
			middlewares.WithI18nCookie(middlewares.DefaultLocaleParam, localeCookieMaxAge),
			middlewares.WithI18nLogger(log),
		),
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/", &pageHandler{kit: kit, log: log})
	return r
}
