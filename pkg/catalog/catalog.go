package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/msgkit/pkg/cache"
	"github.com/dmitrymomot/msgkit/pkg/parts"
)

const (
	// DefaultLocale is used when WithDefaultLocale is not given.
	DefaultLocale = "en"
	// DefaultNamespace holds keys that are not qualified with "namespace:".
	DefaultNamespace = "messages"
)

// Catalog stores messages as part lists, keyed by "locale:namespace:key.path".
type Catalog struct {
	messages          map[string][]parts.Part
	defaultLocale     string
	defaultNamespace  string
	locales           []string
	missingKeyHandler func(locale, namespace, key string)
	printers          *cache.Memory[*message.Printer]
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// New creates a Catalog. All messages are loaded here; the result is immutable.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages:         make(map[string][]parts.Part),
		defaultLocale:    DefaultLocale,
		defaultNamespace: DefaultNamespace,
		printers:         cache.NewMemory[*message.Printer](cache.WithMaxEntries(64)),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	c.locales = c.buildLocales()
	return c, nil
}

// WithDefaultLocale sets the locale used when a key is missing in the requested one.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) error {
		canonical, err := canonicalLocale(locale)
		if err != nil {
			return err
		}
		c.defaultLocale = canonical
		return nil
	}
}

// WithDefaultNamespace sets the namespace of unqualified keys.
func WithDefaultNamespace(namespace string) Option {
	return func(c *Catalog) error {
		if namespace == "" {
			return ErrEmptyNamespace
		}
		c.defaultNamespace = namespace
		return nil
	}
}

// WithMessages adds messages for a locale and namespace. Leaves may be a
// string, a []parts.Part or a list of part maps as decoded from YAML or JSON.
func WithMessages(locale, namespace string, messages map[string]any) Option {
	return func(c *Catalog) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}

		flat, err := flattenMessages(messages, "")
		if err != nil {
			return err
		}
		return c.add(locale, namespace, flat)
	}
}

// WithMissingKeyHandler sets a handler called when a key is found in neither
// the requested locale chain nor the default locale.
func WithMissingKeyHandler(handler func(locale, namespace, key string)) Option {
	return func(c *Catalog) error {
		c.missingKeyHandler = handler
		return nil
	}
}

// DefaultLocale returns the fallback locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Locales lists the locales with messages, default locale first, the rest sorted.
func (c *Catalog) Locales() []string {
	return slices.Clone(c.locales)
}

func (c *Catalog) add(locale, namespace string, flat map[string][]parts.Part) error {
	canonical, err := canonicalLocale(locale)
	if err != nil {
		return err
	}
	for key, ps := range flat {
		c.messages[buildKey(canonical, namespace, key)] = ps
	}
	return nil
}

// canonicalLocale normalizes case and aliases of a locale tag, so "pt-br"
// and "pt-BR" name the same messages.
func canonicalLocale(locale string) (string, error) {
	if locale == "" {
		return "", ErrEmptyLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %s", ErrInvalidLocale, locale, err)
	}
	return tag.String(), nil
}

func (c *Catalog) buildLocales() []string {
	set := make(map[string]struct{})
	for k := range c.messages {
		locale, _, _ := strings.Cut(k, ":")
		set[locale] = struct{}{}
	}
	delete(set, c.defaultLocale)

	return append([]string{c.defaultLocale}, slices.Sorted(maps.Keys(set))...)
}

func buildKey(locale, namespace, key string) string {
	return locale + ":" + namespace + ":" + key
}

// splitKey separates an optional "namespace:" qualifier from key.
func (c *Catalog) splitKey(key string) (string, string) {
	if ns, rest, ok := strings.Cut(key, ":"); ok && ns != "" {
		return ns, rest
	}
	return c.defaultNamespace, key
}
