package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit/pkg/locale"
)

func TestStripExtensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tag      string
		expected string
	}{
		{name: "no extension", tag: "en-US", expected: "en-US"},
		{name: "unicode extension", tag: "en-US-u-ca-gregorian", expected: "en-US"},
		{name: "transform extension", tag: "en-US-t-m0-phonebk", expected: "en-US"},
		{name: "both extensions", tag: "en-US-u-ca-gregorian-t-m0-phonebk", expected: "en-US"},
		{name: "transform before unicode", tag: "de-t-m0-ungegn-u-nu-latn", expected: "de"},
		{name: "upper case singleton", tag: "en-US-U-CA-GREGORIAN", expected: "en-US"},
		{name: "private use kept", tag: "en-US-x-custom", expected: "en-US-x-custom"},
		{
			name:     "long tag with private use after extensions",
			tag:      "en-US-u-ca-gregorian-nu-latn-cu-usd-t-m0-phonebk-x-very-long-extension",
			expected: "en-US",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, locale.StripExtensions(tt.tag))
		})
	}
}

func TestFallbackChain(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"zh-Hant-HK", "zh-Hant", "zh"}, locale.FallbackChain("zh-Hant-HK"))
	require.Equal(t, []string{"en-US", "en"}, locale.FallbackChain("en-US"))
	require.Equal(t, []string{"en"}, locale.FallbackChain("en"))
	require.Empty(t, locale.FallbackChain(""))
}

func TestParseMatcher(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "best fit", "best-fit", "Best Fit"} {
		m, err := locale.ParseMatcher(in)
		require.NoError(t, err, in)
		require.Equal(t, locale.BestFit, m)
	}

	m, err := locale.ParseMatcher("lookup")
	require.NoError(t, err)
	require.Equal(t, locale.Lookup, m)

	_, err = locale.ParseMatcher("fuzzy")
	require.ErrorIs(t, err, locale.ErrInvalidArgument)
}
