// Package parts models the flat, annotated part sequence a message formatter
// produces and rebuilds it into a renderable node tree.
//
// A formatted message such as "Hello {#b}{$name}{/b}" arrives as a flat list:
//
//	text("Hello ") open(b) bidi("⁨") string("John") bidi("⁩") close(b)
//
// Build pairs every open markup part with its matching close and nests the
// enclosed parts as children:
//
//	nodes, err := parts.Build(ps, parts.Overrides{
//		"b": parts.Rename("strong"),
//	})
//
// The resulting []Node is framework agnostic. Package render turns it into a
// templ.Component; PlainText flattens it into plain text.
//
// Matching is done per tag name with a depth counter, so the same tag may be
// re-opened before its outer close. Recursion depth equals markup nesting
// depth. An open part without a matching close fails with ErrUnclosedMarkup;
// a part the builder does not understand fails with ErrUnhandledSpanKind.
// Fallback parts never fail: they become NodeFallback nodes so a broken
// argument degrades one message instead of the whole page.
package parts
