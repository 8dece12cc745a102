package msgkit

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/msgkit/pkg/locale"
	"github.com/dmitrymomot/msgkit/pkg/logger"
	"github.com/dmitrymomot/msgkit/pkg/parts"
	"github.com/dmitrymomot/msgkit/pkg/render"
)

// Formatter turns a message key and arguments into the flat part sequence
// for a locale. catalog.Catalog implements it.
type Formatter interface {
	FormatToParts(locale, key string, args map[string]any) ([]parts.Part, error)
}

// Kit holds the immutable i18n configuration of an application.
// It is safe for concurrent use.
type Kit struct {
	defaultLocale string
	extraLocales  []string
	locales       []string
	formatter     Formatter
	resolver      *locale.Resolver
	matcher       locale.Matcher
	logger        *slog.Logger
	renderOpts    []render.Option
}

// New creates a Kit. WithDefaultLocale and WithFormatter are required.
// Malformed locale tags fail here rather than on the first request.
func New(opts ...Option) (*Kit, error) {
	k := &Kit{
		matcher: locale.BestFit,
		logger:  logger.NewNope(),
	}

	for _, opt := range opts {
		if err := opt(k); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if k.defaultLocale == "" {
		return nil, ErrNoDefaultLocale
	}
	if k.formatter == nil {
		return nil, ErrNoFormatter
	}
	if k.resolver == nil {
		k.resolver = locale.NewResolver(locale.WithDatabase(
			locale.NewCachedDatabase(locale.NewTextDatabase()),
		))
	}

	def, err := k.resolver.Canonicalize([]string{k.defaultLocale})
	if err != nil {
		return nil, fmt.Errorf("invalid default locale: %w", err)
	}
	k.defaultLocale = def[0]
	if k.locales, err = k.buildLocales(); err != nil {
		return nil, fmt.Errorf("invalid locales: %w", err)
	}
	if _, err := k.resolver.Resolve([]string{k.defaultLocale}, k.locales, k.matcher); err != nil {
		return nil, fmt.Errorf("invalid locales: %w", err)
	}

	k.renderOpts = append([]render.Option{render.WithLogger(k.logger)}, k.renderOpts...)
	return k, nil
}

// DefaultLocale returns the canonical default locale.
func (k *Kit) DefaultLocale() string {
	return k.defaultLocale
}

// Locales returns the supported locales, default first.
func (k *Kit) Locales() []string {
	return slices.Clone(k.locales)
}

// ResolveLocale negotiates the locale to serve for the client's preferences,
// most preferred first. Without preferences the default locale is returned.
func (k *Kit) ResolveLocale(userLocales []string) (string, error) {
	prefs := make([]string, 0, len(userLocales))
	for _, l := range userLocales {
		if l != "" {
			prefs = append(prefs, l)
		}
	}
	if len(prefs) == 0 {
		return k.defaultLocale, nil
	}
	return k.resolver.Resolve(prefs, k.locales, k.matcher)
}

// Translator returns a Translator bound to loc. loc is used as given;
// pass it through ResolveLocale first when it comes from a client.
func (k *Kit) Translator(loc string) *Translator {
	if loc == "" {
		loc = k.defaultLocale
	}
	return &Translator{kit: k, locale: loc}
}

// buildLocales returns the canonical default followed by the canonical extra
// locales, duplicates removed.
func (k *Kit) buildLocales() ([]string, error) {
	tags := []string{k.defaultLocale}
	for _, l := range k.extraLocales {
		if l != "" {
			tags = append(tags, l)
		}
	}
	return k.resolver.Canonicalize(tags)
}
