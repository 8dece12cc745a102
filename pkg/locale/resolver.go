package locale

import (
	"fmt"
	"sync"
)

// Resolver negotiates one application locale from a client's ranked
// preferences. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	db Database
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDatabase sets the locale database the resolver consults.
func WithDatabase(db Database) Option {
	return func(r *Resolver) {
		if db != nil {
			r.db = db
		}
	}
}

// NewResolver creates a Resolver. Without options it uses NewTextDatabase().
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.db == nil {
		r.db = NewTextDatabase()
	}
	return r
}

var defaultResolver = sync.OnceValue(func() *Resolver { return NewResolver() })

// Resolve negotiates a locale using the default x/text backed resolver.
// See Resolver.Resolve.
func Resolve(userLocales, supportedLocales []string, m Matcher) (string, error) {
	return defaultResolver().Resolve(userLocales, supportedLocales, m)
}

// Resolve returns the supported locale that best serves userLocales.
//
// userLocales is ordered by preference; supportedLocales lists what the
// application can serve, most preferred first. The result is always a
// canonical member of supportedLocales:
//
//   - if the runtime supports none of them, the first supported locale;
//   - otherwise the most specific fallback-chain entry of the first user
//     preference that matches anything;
//   - otherwise the first runtime-supported locale.
//
// Empty inputs fail with ErrInvalidArgument, malformed tags with ErrInvalidLocaleTag.
func (r *Resolver) Resolve(userLocales, supportedLocales []string, m Matcher) (string, error) {
	if err := requireTags("user locales", userLocales); err != nil {
		return "", err
	}
	if err := requireTags("supported locales", supportedLocales); err != nil {
		return "", err
	}
	m, err := m.normalize()
	if err != nil {
		return "", err
	}

	canonical, err := r.db.Canonicalize(supportedLocales)
	if err != nil {
		return "", err
	}
	if len(canonical) == 0 {
		return "", fmt.Errorf("%w: no canonical form for supported locales", ErrInvalidLocaleTag)
	}

	runtime, err := r.db.Supported(canonical, m)
	if err != nil {
		return "", err
	}
	runtime = intersect(canonical, runtime)
	if len(runtime) == 0 {
		return canonical[0], nil
	}

	available := make(map[string]struct{}, len(runtime))
	for _, tag := range runtime {
		available[tag] = struct{}{}
	}

	for _, raw := range userLocales {
		base, err := r.db.Canonicalize([]string{StripExtensions(raw)})
		if err != nil {
			return "", err
		}
		if len(base) == 0 {
			continue
		}
		for _, candidate := range FallbackChain(base[0]) {
			if _, ok := available[candidate]; ok {
				return candidate, nil
			}
		}
	}

	return runtime[0], nil
}

// Canonicalize returns the canonical form of tags through the resolver's
// database, in input order with duplicates removed.
func (r *Resolver) Canonicalize(tags []string) ([]string, error) {
	if err := requireTags("tags", tags); err != nil {
		return nil, err
	}
	return r.db.Canonicalize(tags)
}

func requireTags(name string, tags []string) error {
	if len(tags) == 0 {
		return fmt.Errorf("%w: %s must be a non-empty list", ErrInvalidArgument, name)
	}
	for i, tag := range tags {
		if tag == "" {
			return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidArgument, name, i)
		}
	}
	return nil
}

// intersect keeps the entries of subset that belong to set, in set order.
func intersect(set, subset []string) []string {
	keep := make(map[string]struct{}, len(subset))
	for _, tag := range subset {
		keep[tag] = struct{}{}
	}
	out := make([]string, 0, len(subset))
	for _, tag := range set {
		if _, ok := keep[tag]; ok {
			out = append(out, tag)
		}
	}
	return out
}
