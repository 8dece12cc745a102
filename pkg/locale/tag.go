package locale

import "strings"

// StripExtensions removes the Unicode ("-u-") and transform ("-t-") extension
// sequences from a BCP 47 tag. Extensions trail the tag, so everything from
// the first singleton onwards is dropped.
func StripExtensions(tag string) string {
	lower := strings.ToLower(tag)
	cut := len(tag)
	for _, sep := range []string{"-u-", "-t-"} {
		if i := strings.Index(lower, sep); i >= 0 && i < cut {
			cut = i
		}
	}
	return tag[:cut]
}

// FallbackChain returns the tag followed by its truncations, most specific
// first: "zh-Hant-HK" yields ["zh-Hant-HK", "zh-Hant", "zh"].
func FallbackChain(tag string) []string {
	if tag == "" {
		return nil
	}

	subtags := strings.Split(tag, "-")
	chain := make([]string, 0, len(subtags))
	for i := len(subtags); i >= 1; i-- {
		chain = append(chain, strings.Join(subtags[:i], "-"))
	}
	return chain
}
