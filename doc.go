// Package msgkit connects locale negotiation, a message formatter and the
// part-to-tree builder into one application-facing API.
//
// A Kit is configured once at startup:
//
//	kit, err := msgkit.New(
//		msgkit.WithDefaultLocale("en-US"),
//		msgkit.WithLocales("nl-NL", "fr-FR"),
//		msgkit.WithFormatter(cat),
//		msgkit.WithLogger(log),
//	)
//
// Per request, the locale is negotiated from the client's preferences and
// stored in the context together with the kit:
//
//	loc, err := kit.ResolveLocale(locale.Preferences(r.Header.Get("Accept-Language")))
//	ctx := msgkit.WithLocale(msgkit.WithKit(r.Context(), kit), loc)
//
// The middlewares package does this for net/http servers.
//
// # Translating
//
// A Translator formats messages for one locale:
//
//	tr := kit.Translator("nl-NL")
//	tr.String("hello", map[string]any{"name": "John"})   // "Hallo ⁨John⁩!"
//	tr.Component("hello", args, parts.Overrides{"b": parts.Rename("strong")})
//
// String keeps the bidi isolation characters around interpolated values.
// Component rebuilds markup into elements and renders them through templ.
//
// Inside templ templates, T and S read the kit and locale from the render
// context:
//
//	<p>@msgkit.T("hello", args, overrides)</p>
//	<input placeholder={ msgkit.S(ctx, "nameInput.placeholder", nil) }/>
//
// WithLocale may be applied again deeper in the context to render part of a
// page in another locale.
package msgkit
