package parts

import "maps"

// Override replaces the element built for a markup name.
//
// Exactly one of Tag or Component is meaningful: Tag renames the element,
// Component substitutes an opaque renderable value that the presentation
// layer knows how to draw. Attrs are the substitute's own attributes; they are
// merged under the attributes declared on the markup part.
type Override struct {
	Tag       string
	Component any
	Attrs     map[string]any
}

// Overrides maps markup names to their replacement.
type Overrides map[string]Override

// Rename renders markup under a different tag name.
func Rename(tag string) Override {
	return Override{Tag: tag}
}

// Substitute renders markup with component, passing attrs as defaults.
func Substitute(component any, attrs map[string]any) Override {
	return Override{Component: component, Attrs: attrs}
}

// resolve returns the tag, component and merged attributes for markup p.
// Attributes declared on p win over attributes carried by the override.
func (o Overrides) resolve(p Part) (string, any, map[string]any) {
	ov, ok := o[p.Name]
	if !ok {
		return p.Name, nil, cloneAttrs(p.Options)
	}

	tag := p.Name
	if ov.Tag != "" {
		tag = ov.Tag
	}
	if len(ov.Attrs) == 0 {
		return tag, ov.Component, cloneAttrs(p.Options)
	}

	attrs := make(map[string]any, len(ov.Attrs)+len(p.Options))
	maps.Copy(attrs, ov.Attrs)
	maps.Copy(attrs, p.Options)
	return tag, ov.Component, attrs
}

func cloneAttrs(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}
