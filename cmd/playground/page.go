package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/dmitrymomot/msgkit"
	"github.com/dmitrymomot/msgkit/middlewares"
	"github.com/dmitrymomot/msgkit/pkg/parts"
)

// greetingOverrides renders the <b> markup of "hello" as <strong>.
var greetingOverrides = parts.Overrides{
	"b": parts.Rename("strong"),
}

type pageHandler struct {
	kit    *msgkit.Kit
	log    *slog.Logger
	visits atomic.Int64
}

func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		name = "World"
	}
	count := h.visits.Add(1)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page(h.kit, middlewares.GetLocale(r), name, count).Render(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render page", slog.Any("error", err))
	}
}

func page(kit *msgkit.Kit, loc, name string, count int64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := msgkit.S(ctx, "title", nil)
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html><html lang=\"%s\"><head><meta charset=\"utf-8\"><title>%s</title></head><body><main><h1>",
			templ.EscapeString(loc), templ.EscapeString(title)); err != nil {
			return err
		}
		if err := msgkit.T("hello", map[string]any{"name": name}, greetingOverrides).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</h1><p>"); err != nil {
			return err
		}
		if err := msgkit.T("visits", map[string]any{"count": count}, nil).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</p>"); err != nil {
			return err
		}
		if err := nameForm(name).Render(ctx, w); err != nil {
			return err
		}
		if err := switcher(kit, loc).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

func nameForm(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<form method=\"get\"><label for=\"name\">%s</label> <input id=\"name\" name=\"name\" value=\"%s\" placeholder=\"%s\"> <button type=\"submit\">%s</button></form>",
			templ.EscapeString(msgkit.S(ctx, "nameInput.label", nil)),
			templ.EscapeString(name),
			templ.EscapeString(msgkit.S(ctx, "nameInput.placeholder", nil)),
			templ.EscapeString(msgkit.S(ctx, "nameInput.submit", nil)),
		)
		return err
	})
}

// switcher lists every supported locale, each named in its own language.
func switcher(kit *msgkit.Kit, current string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<nav aria-label=\"%s\"><ul>",
			templ.EscapeString(msgkit.S(ctx, "switcher.label", nil))); err != nil {
			return err
		}
		for _, loc := range kit.Locales() {
			attr := ""
			if loc == current {
				attr = " aria-current=\"true\""
			}
			if _, err := fmt.Fprintf(w, "<li><a href=\"?%s=%s\" hreflang=\"%s\"%s>%s</a></li>",
				middlewares.DefaultLocaleParam,
				templ.EscapeString(loc),
				templ.EscapeString(loc),
				attr,
				templ.EscapeString(selfName(loc)),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul></nav>")
		return err
	})
}

func selfName(loc string) string {
	tag, err := language.Parse(loc)
	if err != nil {
		return loc
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return loc
}
