package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Database is the platform locale database consulted by the Resolver.
// Implementations must be safe for concurrent use and free of side effects.
type Database interface {
	// Canonicalize returns the canonical form of every tag in input order,
	// dropping duplicates. A malformed tag fails with ErrInvalidLocaleTag.
	Canonicalize(tags []string) ([]string, error)

	// Supported returns the subset of canonical tags the runtime can serve,
	// preserving input order.
	Supported(tags []string, m Matcher) ([]string, error)
}

// TextDatabase is a Database backed by golang.org/x/text.
// Availability defaults to the locales x/text ships display data for.
type TextDatabase struct {
	available map[string]struct{}
	matcher   language.Matcher
}

// DatabaseOption configures a TextDatabase.
type DatabaseOption func(*textDatabaseConfig)

type textDatabaseConfig struct {
	available    []language.Tag
	availableSet bool
}

// WithAvailable replaces the set of locales the runtime is able to serve.
func WithAvailable(tags ...language.Tag) DatabaseOption {
	return func(cfg *textDatabaseConfig) {
		cfg.available = make([]language.Tag, len(tags))
		copy(cfg.available, tags)
		cfg.availableSet = true
	}
}

// NewTextDatabase creates a TextDatabase. The returned value is immutable.
func NewTextDatabase(opts ...DatabaseOption) *TextDatabase {
	cfg := &textDatabaseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.availableSet {
		cfg.available = display.Supported.Tags()
	}

	available := make(map[string]struct{}, len(cfg.available))
	for _, tag := range cfg.available {
		available[tag.String()] = struct{}{}
	}

	return &TextDatabase{
		available: available,
		matcher:   language.NewMatcher(cfg.available),
	}
}

// Canonicalize normalizes case and known aliases of each tag.
func (db *TextDatabase) Canonicalize(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, raw := range tags {
		tag, err := parseTag(raw)
		if err != nil {
			return nil, err
		}
		canonical := tag.String()
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}
	return out, nil
}

// Supported filters tags down to those the runtime can serve.
// Lookup accepts a tag when it or one of its truncations is available;
// BestFit additionally accepts tags the x/text matcher maps with high confidence.
func (db *TextDatabase) Supported(tags []string, m Matcher) ([]string, error) {
	m, err := m.normalize()
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(tags))
	for _, raw := range tags {
		tag, err := parseTag(raw)
		if err != nil {
			return nil, err
		}
		if db.lookup(tag.String()) || (m == BestFit && db.bestFit(tag)) {
			out = append(out, raw)
		}
	}
	return out, nil
}

func (db *TextDatabase) lookup(tag string) bool {
	for _, candidate := range FallbackChain(StripExtensions(tag)) {
		if _, ok := db.available[candidate]; ok {
			return true
		}
	}
	return false
}

func (db *TextDatabase) bestFit(tag language.Tag) bool {
	_, _, confidence := db.matcher.Match(tag)
	return confidence >= language.High
}

func parseTag(raw string) (language.Tag, error) {
	if raw == "" {
		return language.Und, fmt.Errorf("%w: empty tag", ErrInvalidLocaleTag)
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %s", ErrInvalidLocaleTag, raw, err)
	}
	return tag, nil
}
