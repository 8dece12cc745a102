package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/msgkit/pkg/locale"
	"github.com/dmitrymomot/msgkit/pkg/parts"
)

// FormatToParts returns the message stored under key for locale with args
// substituted. A key that cannot be found yields a single fallback part.
func (c *Catalog) FormatToParts(loc, key string, args map[string]any) ([]parts.Part, error) {
	if loc == "" {
		return nil, ErrEmptyLocale
	}

	namespace, path := c.splitKey(key)
	ps, found := c.lookup(loc, namespace, path)
	if !found {
		if c.missingKeyHandler != nil {
			c.missingKeyHandler(loc, namespace, path)
		}
		return []parts.Part{parts.Fallback(key)}, nil
	}

	return c.substitute(loc, ps, args), nil
}

func (c *Catalog) lookup(loc, namespace, key string) ([]parts.Part, bool) {
	loc = locale.StripExtensions(loc)
	if canonical, err := canonicalLocale(loc); err == nil {
		loc = canonical
	}
	for _, candidate := range locale.FallbackChain(loc) {
		if ps, ok := c.messages[buildKey(candidate, namespace, key)]; ok {
			return ps, true
		}
	}
	ps, ok := c.messages[buildKey(c.defaultLocale, namespace, key)]
	return ps, ok
}

func (c *Catalog) substitute(loc string, ps []parts.Part, args map[string]any) []parts.Part {
	out := make([]parts.Part, 0, len(ps))
	for _, p := range ps {
		if p.Type == parts.TypeString {
			if name, ok := wholePlaceholder(p.Value); ok {
				out = append(out, c.isolate(loc, name, args)...)
				continue
			}
		}

		p.Value = c.replace(loc, p.Value, args)
		if len(p.Options) > 0 {
			opts := make(map[string]any, len(p.Options))
			for k, v := range p.Options {
				if s, ok := v.(string); ok {
					v = c.replace(loc, s, args)
				}
				opts[k] = v
			}
			p.Options = opts
		}
		if len(p.Parts) > 0 {
			p.Parts = c.substitute(loc, p.Parts, args)
		}
		out = append(out, p)
	}
	return out
}

// isolate formats one interpolated argument wrapped in bidi isolation.
func (c *Catalog) isolate(loc, name string, args map[string]any) []parts.Part {
	v, ok := args[name]
	if !ok {
		return []parts.Part{parts.Fallback("$" + name)}
	}

	var value parts.Part
	if isNumber(v) {
		value = c.numberPart(loc, name, v)
	} else {
		value = parts.String(fmt.Sprint(v))
	}

	return []parts.Part{
		parts.Bidi(parts.FirstStrongIsolate),
		value,
		parts.Bidi(parts.PopDirectionalIsolate),
	}
}

// replace substitutes every {{name}} in s that has an argument, scanning
// left to right once. Substituted values are never rescanned. Unknown
// placeholders stay as they are.
func (c *Catalog) replace(loc, s string, args map[string]any) string {
	if len(args) == 0 || !strings.Contains(s, "{{") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for {
		open := strings.Index(s, "{{")
		if open < 0 {
			break
		}
		end := strings.Index(s[open+2:], "}}")
		if end < 0 {
			break
		}
		token := s[open : open+2+end+2]
		b.WriteString(s[:open])

		name, ok := placeholderName(token)
		if !ok {
			b.WriteString("{{")
			s = s[open+2:]
			continue
		}
		s = s[open+len(token):]

		v, found := args[name]
		if !found {
			b.WriteString(token)
			continue
		}
		if isNumber(v) {
			b.WriteString(c.printer(loc).Sprint(number.Decimal(v)))
		} else {
			b.WriteString(fmt.Sprint(v))
		}
	}
	b.WriteString(s)
	return b.String()
}

// wholePlaceholder reports whether s is exactly one placeholder.
func wholePlaceholder(s string) (string, bool) {
	if strings.Count(s, "{{") != 1 {
		return "", false
	}
	return placeholderName(s)
}

// placeholderName returns the trimmed name of a "{{ name }}" token.
func placeholderName(token string) (string, bool) {
	if !strings.HasPrefix(token, "{{") || !strings.HasSuffix(token, "}}") {
		return "", false
	}
	name := strings.TrimSpace(token[2 : len(token)-2])
	if name == "" || strings.ContainsAny(name, "{}") {
		return "", false
	}
	return name, true
}

// numberPart prints v for loc and splits the result into Intl style pieces:
// minusSign, integer, group, decimal, fraction and literal.
func (c *Catalog) numberPart(loc, name string, v any) parts.Part {
	p := c.printer(loc)
	formatted := p.Sprint(number.Decimal(v))
	decimal := decimalSeparator(p)

	var pieces []parts.Part
	var run strings.Builder
	runType := ""
	afterDecimal := false

	flush := func() {
		if run.Len() > 0 {
			pieces = append(pieces, parts.Part{Type: parts.Type(runType), Value: run.String()})
			run.Reset()
		}
	}
	push := func(typ, s string) {
		if typ != runType {
			flush()
			runType = typ
		}
		run.WriteString(s)
	}

	for i, r := range formatted {
		switch {
		case unicode.IsDigit(r) && afterDecimal:
			push("fraction", string(r))
		case unicode.IsDigit(r):
			push("integer", string(r))
		case i == 0 && (r == '-' || r == '−'):
			push("minusSign", string(r))
		case string(r) == decimal && !afterDecimal:
			afterDecimal = true
			push("decimal", string(r))
		case !afterDecimal:
			push("group", string(r))
		default:
			push("literal", string(r))
		}
	}
	flush()

	return parts.Number(loc, "$"+name, pieces...)
}

// decimalSeparator reports how p prints the decimal point.
func decimalSeparator(p *message.Printer) string {
	s := p.Sprint(number.Decimal(1.5))
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return string(r)
		}
	}
	return "."
}

func (c *Catalog) printer(loc string) *message.Printer {
	p, _ := c.printers.GetOrSet(loc, func() (*message.Printer, error) {
		tag, err := language.Parse(locale.StripExtensions(loc))
		if err != nil {
			tag = language.Make(c.defaultLocale)
		}
		return message.NewPrinter(tag), nil
	})
	return p
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}
