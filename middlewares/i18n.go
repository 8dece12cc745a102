package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/msgkit"
	"github.com/dmitrymomot/msgkit/internal"
	"github.com/dmitrymomot/msgkit/pkg/locale"
	"github.com/dmitrymomot/msgkit/pkg/logger"
)

// DefaultLocaleParam is the query parameter and cookie name read by default.
const DefaultLocaleParam = "lang"

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	Extractor    internal.Extractor
	CookieName   string
	CookieMaxAge time.Duration
	Logger       *slog.Logger
	extractorSet bool
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nExtractor sets the chain that reads an explicit locale choice.
// Defaults to the "lang" query parameter, then the "lang" cookie.
func WithI18nExtractor(ext internal.Extractor) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// WithI18nCookie persists a locale chosen through the "lang" query parameter
// in the named cookie, which the default extractor then reads.
func WithI18nCookie(name string, maxAge time.Duration) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.CookieName = name
		cfg.CookieMaxAge = maxAge
	}
}

// WithI18nLogger sets the logger for rejected locale input.
func WithI18nLogger(l *slog.Logger) I18nOption {
	return func(cfg *I18nConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// I18n returns middleware that negotiates the request locale and stores it,
// together with kit, in the request context.
//
// An explicit choice from the extractor is tried first, then the
// Accept-Language preferences. Client input that cannot be resolved never
// fails the request: the default locale is served instead.
func I18n(kit *msgkit.Kit, opts ...I18nOption) func(http.Handler) http.Handler {
	cfg := &I18nConfig{
		Logger:       logger.NewNope(),
		CookieMaxAge: 365 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = DefaultLocaleParam
	}
	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			internal.FromQuery(DefaultLocaleParam),
			internal.FromCookie(cookieName),
		)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			prefs := locale.Preferences(r.Header.Get("Accept-Language"))

			loc, err := kit.ResolveLocale(prefs)
			if choice, ok := cfg.Extractor.Extract(r); ok {
				if explicit, cerr := kit.ResolveLocale(append([]string{choice}, prefs...)); cerr == nil {
					loc, err = explicit, nil
				} else {
					cfg.Logger.DebugContext(r.Context(), "ignoring locale choice",
						slog.String("choice", choice),
						slog.Any("error", cerr),
					)
				}
			}
			if err != nil {
				cfg.Logger.DebugContext(r.Context(), "falling back to default locale",
					slog.String("accept_language", r.Header.Get("Accept-Language")),
					slog.Any("error", err),
				)
				loc = kit.DefaultLocale()
			}

			if cfg.CookieName != "" && r.URL.Query().Get(DefaultLocaleParam) != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    loc,
					Path:     "/",
					MaxAge:   int(cfg.CookieMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			h := w.Header()
			h.Set("Content-Language", loc)
			h.Add("Vary", "Accept-Language")

			ctx := msgkit.WithLocale(msgkit.WithKit(r.Context(), kit), loc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLocale returns the locale resolved for r.
// Returns an empty string if the I18n middleware is not used.
func GetLocale(r *http.Request) string {
	loc, _ := msgkit.LocaleFrom(r.Context())
	return loc
}
