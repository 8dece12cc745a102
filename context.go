package msgkit

import (
	"context"
	"io"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/msgkit/pkg/logger"
	"github.com/dmitrymomot/msgkit/pkg/parts"
)

type kitKey struct{}

type localeKey struct{}

// WithKit stores k in ctx.
func WithKit(ctx context.Context, k *Kit) context.Context {
	return context.WithValue(ctx, kitKey{}, k)
}

// KitFrom returns the Kit stored in ctx.
func KitFrom(ctx context.Context) (*Kit, bool) {
	k, ok := ctx.Value(kitKey{}).(*Kit)
	return k, ok && k != nil
}

// WithLocale stores the resolved locale in ctx. An inner WithLocale overrides
// an outer one for everything rendered below it.
func WithLocale(ctx context.Context, loc string) context.Context {
	return context.WithValue(ctx, localeKey{}, loc)
}

// LocaleFrom returns the locale stored in ctx.
func LocaleFrom(ctx context.Context) (string, bool) {
	loc, ok := ctx.Value(localeKey{}).(string)
	return loc, ok && loc != ""
}

// TranslatorFrom returns a Translator for the kit and locale stored in ctx.
func TranslatorFrom(ctx context.Context) (*Translator, error) {
	k, ok := KitFrom(ctx)
	if !ok {
		return nil, ErrNoKit
	}
	loc, ok := LocaleFrom(ctx)
	if !ok {
		return nil, ErrNoLocale
	}
	return k.Translator(loc), nil
}

// T renders the message for the kit and locale of the render context.
func T(key string, args map[string]any, overrides parts.Overrides) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tr, err := TranslatorFrom(ctx)
		if err != nil {
			return err
		}
		return tr.Component(key, args, overrides).Render(ctx, w)
	})
}

// S returns the message as plain text for use in attributes.
// Without a kit or locale in ctx the key is returned.
func S(ctx context.Context, key string, args map[string]any) string {
	tr, err := TranslatorFrom(ctx)
	if err != nil {
		return key
	}
	return tr.String(key, args)
}

// LogLocale is a logger.ContextExtractor adding the request locale to log records.
func LogLocale() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		loc, ok := LocaleFrom(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("locale", loc), true
	}
}
