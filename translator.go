package msgkit

import (
	"context"
	"io"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/msgkit/pkg/parts"
	"github.com/dmitrymomot/msgkit/pkg/render"
)

// Translator formats messages for a single locale.
type Translator struct {
	kit    *Kit
	locale string
}

// Locale returns the locale the translator formats for.
func (t *Translator) Locale() string {
	return t.locale
}

// Parts returns the flat part sequence of the message.
func (t *Translator) Parts(key string, args map[string]any) ([]parts.Part, error) {
	return t.kit.formatter.FormatToParts(t.locale, key, args)
}

// String returns the message as plain text. Interpolated values keep their
// bidi isolation characters. If formatting fails, the error is logged and
// the key is returned.
func (t *Translator) String(key string, args map[string]any) string {
	ps, err := t.Parts(key, args)
	if err != nil {
		t.kit.logger.Error("failed to format message",
			slog.String("locale", t.locale),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return key
	}
	return parts.Concat(ps)
}

// Nodes formats the message and rebuilds its markup into a node tree.
func (t *Translator) Nodes(key string, args map[string]any, overrides parts.Overrides) ([]parts.Node, error) {
	ps, err := t.Parts(key, args)
	if err != nil {
		return nil, err
	}
	return parts.Build(ps, overrides)
}

// Component renders the message as HTML. Errors surface from Render.
func (t *Translator) Component(key string, args map[string]any, overrides parts.Overrides) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		nodes, err := t.Nodes(key, args, overrides)
		if err != nil {
			t.kit.logger.ErrorContext(ctx, "failed to build message",
				slog.String("locale", t.locale),
				slog.String("key", key),
				slog.Any("error", err),
			)
			return err
		}
		return render.Component(nodes, t.kit.renderOpts...).Render(ctx, w)
	})
}
