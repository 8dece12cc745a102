// Package render draws parts.Node trees as HTML through templ.
//
// Component returns a templ.Component, so a translated message can be used
// directly inside a templ template:
//
//	nodes, _ := parts.Build(ps, parts.Overrides{"b": parts.Rename("strong")})
//	@render.Component(nodes)
//
// Text is escaped with templ.EscapeString. Elements without a substitute are
// written as plain tags with their attributes sorted by name. A substitute may
// be a render.Element, which receives the merged attributes, or any
// templ.Component; either way the element's children are available through
// templ.GetChildren.
//
// WithPolicy runs the rendered message through a bluemonday policy when the
// message catalog is not fully trusted.
package render
