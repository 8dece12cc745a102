package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// weightedTag is one Accept-Language entry with its quality value.
type weightedTag struct {
	tag     string
	quality float64
}

// Preferences parses an Accept-Language header into a list of locale tags
// ordered by descending quality. Entries with equal quality keep header order.
// Wildcards, zero-quality entries and tags x/text cannot parse are dropped,
// so the result can be handed to Resolve as is.
//
// Example header: "nl-NL,en;q=0.8,*;q=0.1,de;q=0.9"
// Returns: ["nl-NL", "de", "en"]
func Preferences(header string) []string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart == "" || langPart == "*" || quality == 0 {
			continue
		}
		if _, err := language.Parse(langPart); err != nil {
			continue
		}
		tags = append(tags, weightedTag{tag: langPart, quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.tag)
	}
	return out
}
