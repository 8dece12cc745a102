package parts

// Type identifies what a Part carries.
type Type string

const (
	TypeText     Type = "text"          // literal message text
	TypeString   Type = "string"        // interpolated string argument
	TypeBidi     Type = "bidiIsolation" // isolation character around an argument
	TypeMarkup   Type = "markup"        // open, close or standalone element
	TypeNumber   Type = "number"        // formatted number with pieces in Parts
	TypeDateTime Type = "datetime"      // formatted date/time with pieces in Parts
	TypeFallback Type = "fallback"      // expression that could not be resolved
)

// MarkupKind tells open, close and standalone markup apart.
type MarkupKind string

const (
	KindOpen       MarkupKind = "open"
	KindClose      MarkupKind = "close"
	KindStandalone MarkupKind = "standalone"
)

// Bidi isolation characters wrapped around interpolated values.
const (
	FirstStrongIsolate    = "\u2068"
	PopDirectionalIsolate = "\u2069"
)

// Part is one flat span of formatter output.
//
// Markup parts use Name and Kind; Options holds the attributes declared at the
// call site. Number and datetime parts carry their formatted pieces in Parts.
// Fallback parts carry the unresolved expression in Source.
type Part struct {
	Type    Type           `json:"type" yaml:"type"`
	Value   string         `json:"value,omitempty" yaml:"value,omitempty"`
	Source  string         `json:"source,omitempty" yaml:"source,omitempty"`
	Locale  string         `json:"locale,omitempty" yaml:"locale,omitempty"`
	Dir     string         `json:"dir,omitempty" yaml:"dir,omitempty"`
	Name    string         `json:"name,omitempty" yaml:"name,omitempty"`
	Kind    MarkupKind     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
	Parts   []Part         `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// IsMarkup reports whether p is a markup part of the given kind.
func (p Part) IsMarkup(kind MarkupKind) bool {
	return p.Type == TypeMarkup && p.Kind == kind
}

// Text returns a literal text part.
func Text(value string) Part {
	return Part{Type: TypeText, Value: value}
}

// String returns an interpolated string part.
func String(value string) Part {
	return Part{Type: TypeString, Value: value}
}

// Open starts markup. Options are the call-site attributes of the element.
func Open(name string, options map[string]any) Part {
	return Part{Type: TypeMarkup, Kind: KindOpen, Name: name, Options: options}
}

// Close ends the markup opened with the same name.
func Close(name string) Part {
	return Part{Type: TypeMarkup, Kind: KindClose, Name: name}
}

// Standalone is markup without content, such as a line break.
func Standalone(name string, options map[string]any) Part {
	return Part{Type: TypeMarkup, Kind: KindStandalone, Name: name, Options: options}
}

// Bidi returns an isolation part. value is FirstStrongIsolate or PopDirectionalIsolate.
func Bidi(value string) Part {
	return Part{Type: TypeBidi, Value: value}
}

// Number wraps the formatted pieces of a number, e.g. integer, group and fraction.
func Number(locale, source string, pieces ...Part) Part {
	return Part{Type: TypeNumber, Locale: locale, Source: source, Parts: pieces}
}

// DateTime wraps the formatted pieces of a date or time.
func DateTime(locale, source string, pieces ...Part) Part {
	return Part{Type: TypeDateTime, Locale: locale, Source: source, Parts: pieces}
}

// Fallback marks an expression the formatter could not resolve.
func Fallback(source string) Part {
	return Part{Type: TypeFallback, Source: source}
}
