package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUSD(t *testing.T) {
	tests := map[string]string{
		"0":          "$0.00",
		"5":          "$5.00",
		"210.7":      "$210.70",
		"632.1":      "$632.10",
		"999.999":    "$1,000.00",
		"12552.9":    "$12,552.90",
		"1234567.89": "$1,234,567.89",
		"-40.5":      "-$40.50",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatUSD(decimal.RequireFromString(in)), in)
	}
}

func TestFormatSqftAndInches(t *testing.T) {
	assert.Equal(t, "27.78", FormatSqft(4000.0/144))
	assert.Equal(t, "0.00", FormatSqft(0))
	assert.Equal(t, `6.75"`, FormatInches(6.75))
	assert.Equal(t, `40"`, FormatInches(40))
}

func TestFlags(t *testing.T) {
	for _, s := range []string{"YES", "yes", " Y ", "true"} {
		assert.True(t, ParseFlag(s), s)
	}
	for _, s := range []string{"NO", "Optional", "", "maybe"} {
		assert.False(t, ParseFlag(s), s)
	}
	assert.Equal(t, "YES", YesNo(true))
	assert.Equal(t, "NO", YesNo(false))
}

func TestParseSqft(t *testing.T) {
	assert.InDelta(t, 0.33, ParseSqft("0.33"), 1e-9)
	assert.Zero(t, ParseSqft("Variable"))
	assert.Zero(t, ParseSqft(""))
	assert.Zero(t, ParseSqft("-2"))
}

func TestOptionKeys(t *testing.T) {
	assert.Equal(t, CustomOptionKey, NormalizeOptionKey(" Custom "))
	assert.Equal(t, "FL.24", NormalizeOptionKey(" FL.24"))
	assert.True(t, IsCustomOption("CUSTOM"))
	assert.False(t, IsCustomOption(`36" x 101.8"`))

	v, err := ParseDimension(` 40" `)
	require.NoError(t, err)
	assert.Equal(t, 40.0, v)

	v, err = ParseDimension("")
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = ParseDimension("tall")
	assert.Error(t, err)
}

func TestQuoteFileName(t *testing.T) {
	assert.Equal(t, "Quote-ORD-20261018-1A2B3C4D.pdf", QuoteFileName("ORD-20261018-1A2B3C4D", "pdf"))
	assert.Equal(t, "Quote-ORD-20261018-1A2B3C4D.xlsx", QuoteFileName("ORD-20261018-1A2B3C4D", ".XLSX"))
	assert.Equal(t, "Quote-draft.pdf", QuoteFileName("  ", "pdf"))
	assert.Equal(t, "Quote-a_b_c.pdf", QuoteFileName("a b/c", "pdf"))
	assert.Equal(t, `attachment; filename="Quote-x.pdf"`, ContentDisposition("Quote-x.pdf"))
}
