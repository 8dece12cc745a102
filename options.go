package msgkit

import (
	"log/slog"

	"github.com/dmitrymomot/msgkit/pkg/locale"
	"github.com/dmitrymomot/msgkit/pkg/render"
)

// Option configures a Kit.
type Option func(*Kit) error

// WithDefaultLocale sets the locale served when nothing else matches.
// Required.
func WithDefaultLocale(loc string) Option {
	return func(k *Kit) error {
		if loc == "" {
			return ErrNoDefaultLocale
		}
		k.defaultLocale = loc
		return nil
	}
}

// WithLocales adds locales the application can serve besides the default.
// Order is kept; duplicates and empty strings are ignored.
func WithLocales(locales ...string) Option {
	return func(k *Kit) error {
		k.extraLocales = append(k.extraLocales, locales...)
		return nil
	}
}

// WithFormatter sets the message formatter. Required.
func WithFormatter(f Formatter) Option {
	return func(k *Kit) error {
		if f == nil {
			return ErrNoFormatter
		}
		k.formatter = f
		return nil
	}
}

// WithResolver replaces the locale resolver.
// Defaults to one backed by a cached x/text database.
func WithResolver(r *locale.Resolver) Option {
	return func(k *Kit) error {
		if r != nil {
			k.resolver = r
		}
		return nil
	}
}

// WithMatcher sets the locale matching algorithm. Defaults to locale.BestFit.
func WithMatcher(m locale.Matcher) Option {
	return func(k *Kit) error {
		parsed, err := locale.ParseMatcher(string(m))
		if err != nil {
			return err
		}
		k.matcher = parsed
		return nil
	}
}

// WithLogger sets the logger for formatting failures and message fallbacks.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(k *Kit) error {
		if l != nil {
			k.logger = l
		}
		return nil
	}
}

// WithRenderOptions sets options applied to every rendered message.
func WithRenderOptions(opts ...render.Option) Option {
	return func(k *Kit) error {
		k.renderOpts = append(k.renderOpts, opts...)
		return nil
	}
}
