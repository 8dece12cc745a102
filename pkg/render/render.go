package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/msgkit/pkg/parts"
)

// Element is a substitute that receives the merged attributes of the markup
// it replaces. Its children are available through templ.GetChildren.
type Element func(attrs templ.Attributes) templ.Component

// voidElements are written without a closing tag; their children are dropped.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

type renderer struct {
	logger   *slog.Logger
	policy   *bluemonday.Policy
	fallback func(source string) templ.Component
}

// Component renders ns as HTML.
func Component(ns []parts.Node, opts ...Option) templ.Component {
	r := newRenderer(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if r.policy == nil {
			return r.nodes(ctx, w, ns)
		}

		var buf bytes.Buffer
		if err := r.nodes(ctx, &buf, ns); err != nil {
			return err
		}
		_, err := io.WriteString(w, r.policy.Sanitize(buf.String()))
		return err
	})
}

// Text renders ns as plain text.
func Text(ns []parts.Node) string {
	return parts.PlainText(ns)
}

func (r *renderer) nodes(ctx context.Context, w io.Writer, ns []parts.Node) error {
	for _, n := range ns {
		if err := r.node(ctx, w, n); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) node(ctx context.Context, w io.Writer, n parts.Node) error {
	switch n.Kind {
	case parts.NodeText:
		_, err := io.WriteString(w, templ.EscapeString(n.Value))
		return err

	case parts.NodeGroup:
		return r.nodes(ctx, w, n.Children)

	case parts.NodeFallback:
		r.logger.WarnContext(ctx, "rendering message fallback", slog.String("source", n.Value))
		return r.fallback(n.Value).Render(ctx, w)

	case parts.NodeElement:
		if n.Component == nil {
			return r.tag(ctx, w, n)
		}
		return r.substitute(ctx, w, n)

	default:
		return fmt.Errorf("%w: node kind %s", ErrUnsupportedComponent, n.Kind)
	}
}

func (r *renderer) substitute(ctx context.Context, w io.Writer, n parts.Node) error {
	var comp templ.Component
	switch c := n.Component.(type) {
	case Element:
		comp = c(templ.Attributes(n.Attrs))
	case func(templ.Attributes) templ.Component:
		comp = c(templ.Attributes(n.Attrs))
	case templ.Component:
		comp = c
	default:
		return fmt.Errorf("%w: %T for <%s>", ErrUnsupportedComponent, n.Component, n.Tag)
	}
	if comp == nil {
		return fmt.Errorf("%w: nil component for <%s>", ErrUnsupportedComponent, n.Tag)
	}

	children := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.nodes(ctx, w, n.Children)
	})
	return comp.Render(templ.WithChildren(ctx, children), w)
}

func (r *renderer) tag(ctx context.Context, w io.Writer, n parts.Node) error {
	if !validName(n.Tag) {
		return fmt.Errorf("%w: %q", ErrInvalidTag, n.Tag)
	}

	var buf bytes.Buffer
	buf.WriteString("<" + n.Tag)
	for _, key := range slices.Sorted(maps.Keys(n.Attrs)) {
		if !validName(key) || isEventHandler(key) {
			return fmt.Errorf("%w: %q on <%s>", ErrInvalidAttribute, key, n.Tag)
		}
		var value string
		switch v := n.Attrs[key].(type) {
		case nil:
			continue
		case bool:
			if v {
				buf.WriteString(" " + key)
			}
			continue
		case string:
			value = v
		default:
			value = fmt.Sprint(v)
		}
		if _, ok := urlAttributes[strings.ToLower(key)]; ok {
			value = string(templ.URL(value))
		}
		buf.WriteString(" " + key + `="` + templ.EscapeString(value) + `"`)
	}
	buf.WriteString(">")
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if _, void := voidElements[n.Tag]; void {
		return nil
	}
	if err := r.nodes(ctx, w, n.Children); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// urlAttributes carry URLs; their values pass through templ.URL, which
// replaces unsafe schemes such as javascript:.
var urlAttributes = map[string]struct{}{
	"action": {}, "background": {}, "cite": {}, "codebase": {}, "data": {},
	"formaction": {}, "href": {}, "icon": {}, "longdesc": {}, "manifest": {},
	"ping": {}, "poster": {}, "src": {}, "xlink:href": {},
}

func isEventHandler(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// validName accepts HTML tag and attribute names made of ASCII letters,
// digits, '-', '_' and ':', starting with a letter.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '_' || c == ':'):
		default:
			return false
		}
	}
	return true
}

func defaultFallback(source string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(parts.FallbackText(source)))
		return err
	})
}
