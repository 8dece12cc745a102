package render

import (
	"log/slog"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/msgkit/pkg/logger"
)

// Option configures how nodes are rendered.
type Option func(*renderer)

// WithLogger sets the logger that reports fallback nodes.
func WithLogger(l *slog.Logger) Option {
	return func(r *renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithPolicy sanitizes the rendered HTML with policy.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *renderer) {
		r.policy = policy
	}
}

// WithFallback replaces the default "[source]" rendering of fallback nodes.
func WithFallback(fn func(source string) templ.Component) Option {
	return func(r *renderer) {
		if fn != nil {
			r.fallback = fn
		}
	}
}

// MessagePolicy allows the inline formatting usually found in translated
// messages and nothing else. Links keep href only and get rel="nofollow".
func MessagePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"b", "strong", "i", "em", "u", "s", "small", "mark",
		"sub", "sup", "code", "kbd", "abbr", "span", "br",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("title").OnElements("abbr")
	p.AllowAttrs("class").Globally()
	p.RequireNoFollowOnLinks(true)
	return p
}

func newRenderer(opts []Option) *renderer {
	r := &renderer{logger: logger.NewNope()}
	for _, opt := range opts {
		opt(r)
	}
	if r.fallback == nil {
		r.fallback = defaultFallback
	}
	return r
}
