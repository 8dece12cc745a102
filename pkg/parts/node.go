package parts

import "strings"

// NodeKind identifies a Node variant.
type NodeKind uint8

const (
	// NodeText is a literal value.
	NodeText NodeKind = iota + 1
	// NodeElement is markup: a tag or substituted component with children.
	NodeElement
	// NodeGroup wraps the pieces of a composite part such as a number.
	NodeGroup
	// NodeFallback is a visible placeholder for an unresolved expression.
	NodeFallback
)

func (k NodeKind) String() string {
	switch k {
	case NodeText:
		return "text"
	case NodeElement:
		return "element"
	case NodeGroup:
		return "group"
	case NodeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Node is one element of the rebuilt tree.
//
// Value holds the literal for NodeText and the unresolved source for
// NodeFallback. Tag, Component and Attrs are set on NodeElement only.
type Node struct {
	Kind      NodeKind
	Value     string
	Tag       string
	Component any
	Attrs     map[string]any
	Children  []Node
}

// TextNode returns a literal node.
func TextNode(value string) Node {
	return Node{Kind: NodeText, Value: value}
}

// FallbackText is how a fallback node reads in plain text.
func FallbackText(source string) string {
	return "[" + source + "]"
}

// PlainText concatenates the visible text of ns, rendering fallbacks as [source].
func PlainText(ns []Node) string {
	var b strings.Builder
	writeText(&b, ns)
	return b.String()
}

func writeText(b *strings.Builder, ns []Node) {
	for _, n := range ns {
		switch n.Kind {
		case NodeText:
			b.WriteString(n.Value)
		case NodeFallback:
			b.WriteString(FallbackText(n.Value))
		default:
			writeText(b, n.Children)
		}
	}
}

// Concat joins the values of ps into the formatted string. Bidi isolation
// characters are kept and markup contributes nothing. Fallbacks read {source}.
func Concat(ps []Part) string {
	var b strings.Builder
	writeParts(&b, ps)
	return b.String()
}

func writeParts(b *strings.Builder, ps []Part) {
	for _, p := range ps {
		switch {
		case p.Type == TypeMarkup:
		case p.Type == TypeFallback:
			b.WriteString("{" + p.Source + "}")
		case len(p.Parts) > 0:
			writeParts(b, p.Parts)
		default:
			b.WriteString(p.Value)
		}
	}
}
