package parts

import "fmt"

// Build rebuilds the whole of ps into a node tree.
func Build(ps []Part, overrides Overrides) ([]Node, error) {
	return BuildRange(ps, overrides, 0, len(ps))
}

// BuildRange rebuilds ps[start:stop] into a node tree.
//
// Output order is the input order after nesting; nothing is reordered or
// deduplicated. A close part without an open in the current range ends the
// range early.
func BuildRange(ps []Part, overrides Overrides, start, stop int) ([]Node, error) {
	if start < 0 || stop > len(ps) || start > stop {
		return nil, fmt.Errorf("%w: [%d:%d] over %d parts", ErrInvalidRange, start, stop, len(ps))
	}
	return build(ps, overrides, start, stop)
}

func build(ps []Part, overrides Overrides, start, stop int) ([]Node, error) {
	var nodes []Node

	for i := start; i < stop; i++ {
		p := ps[i]

		switch {
		case p.Type == TypeBidi:
			continue

		case p.Type == TypeText || p.Type == TypeString:
			if p.Value != "" {
				nodes = append(nodes, TextNode(p.Value))
			}

		case p.Type == TypeMarkup:
			switch p.Kind {
			case KindOpen:
				j := matchingClose(ps, i, stop)
				if j < 0 {
					return nil, fmt.Errorf("%w: %q opened at %d", ErrUnclosedMarkup, p.Name, i)
				}
				children, err := build(ps, overrides, i+1, j)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, element(p, overrides, children))
				i = j

			case KindClose:
				return nodes, nil

			case KindStandalone:
				nodes = append(nodes, element(p, overrides, nil))

			default:
				return nil, fmt.Errorf("%w: markup %q with kind %q at %d", ErrUnhandledSpanKind, p.Name, p.Kind, i)
			}

		case len(p.Parts) > 0:
			children, err := build(p.Parts, overrides, 0, len(p.Parts))
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, Node{Kind: NodeGroup, Children: children})

		case p.Type == TypeFallback:
			nodes = append(nodes, Node{Kind: NodeFallback, Value: p.Source})

		case p.Value != "":
			nodes = append(nodes, TextNode(p.Value))

		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrUnhandledSpanKind, p.Type, i)
		}
	}

	return nodes, nil
}

// matchingClose returns the index of the close paired with the open at i,
// or -1 when it is not within stop. Only parts with the same name count.
func matchingClose(ps []Part, i, stop int) int {
	name := ps[i].Name
	depth := 0
	for j := i; j < stop; j++ {
		p := ps[j]
		if p.Type != TypeMarkup || p.Name != name {
			continue
		}
		switch p.Kind {
		case KindOpen:
			depth++
		case KindClose:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func element(p Part, overrides Overrides, children []Node) Node {
	tag, component, attrs := overrides.resolve(p)
	return Node{
		Kind:      NodeElement,
		Tag:       tag,
		Component: component,
		Attrs:     attrs,
		Children:  children,
	}
}
