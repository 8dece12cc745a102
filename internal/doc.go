// Package internal holds request plumbing shared by the middlewares.
//
// Extractor chains value sources over an *http.Request and returns the first
// non-empty hit:
//
//	ext := internal.NewExtractor(
//		internal.FromQuery("lang"),
//		internal.FromCookie("lang"),
//	)
//	v, ok := ext.Extract(r)
package internal
