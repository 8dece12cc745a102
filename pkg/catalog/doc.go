// Package catalog is a file-backed message formatter that produces part
// sequences ready for parts.Build.
//
// Messages are stored already split into parts, one list per key:
//
//	# en-US/messages.yaml
//	hello:
//	  - {type: text, value: "Hello "}
//	  - {type: markup, kind: open, name: b}
//	  - {type: string, value: "{{name}}"}
//	  - {type: markup, kind: close, name: b}
//	nameInput:
//	  label: Your name
//
// A plain string leaf is a single text part. Nested keys are flattened with
// dots, so the second message above is "nameInput.label". Keys may be
// qualified with a namespace, "errors:notFound"; unqualified keys use
// DefaultNamespace.
//
// FormatToParts substitutes {{name}} placeholders from the arguments. A string
// part that is exactly one placeholder becomes an isolated value: the value is
// wrapped in bidi isolation parts, numbers are printed for the locale through
// golang.org/x/text/message and split into number pieces, and a missing
// argument turns into a fallback part. Lookup walks the locale's fallback
// chain, then the default locale. A key found nowhere yields a single fallback
// part and calls the missing-key handler.
//
// A Catalog is immutable after New and safe for concurrent use.
package catalog
