package locale

import (
	"fmt"
	"strings"
)

// Matcher selects the matching semantics used when asking the locale database
// which tags the runtime can serve.
type Matcher string

const (
	// BestFit lets the database use its best judgement, including
	// likely-subtag and script equivalences. It is the default.
	BestFit Matcher = "best fit"
	// Lookup restricts matching to the BCP 47 lookup algorithm (tag truncation).
	Lookup Matcher = "lookup"
)

// ParseMatcher parses a matcher name. Both "best fit" and "best-fit" are
// accepted; an empty string selects BestFit.
func ParseMatcher(s string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "best fit", "best-fit", "bestfit":
		return BestFit, nil
	case "lookup":
		return Lookup, nil
	default:
		return "", fmt.Errorf("%w: unknown matcher %q", ErrInvalidArgument, s)
	}
}

func (m Matcher) normalize() (Matcher, error) {
	switch m {
	case "":
		return BestFit, nil
	case BestFit, Lookup:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown matcher %q", ErrInvalidArgument, string(m))
	}
}

func (m Matcher) String() string {
	if m == "" {
		return string(BestFit)
	}
	return string(m)
}
