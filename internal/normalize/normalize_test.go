package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Basic(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		keepSep bool
		want    string
	}{
		{"plain numeric", "12015020", false, "12015020"},
		{"whitespace trimmed", "  12015020  ", false, "12015020"},
		{"trailing .0 artifact", "12015020.0", false, "12015020"},
		{"separator stripped", "1201/5020", false, "12015020"},
		{"separator kept", "1201/5020", true, "1201/5020"},
		{"lower-cased", "AB12", false, "ab12"},
		{"typographic apostrophe", "12’015", false, "12015"},
		{"punctuation stripped", "12-01.50_20", false, "1201502" + "0"},
		{"empty", "", false, ""},
		{"nan placeholder", "nan", false, ""},
		{"NaN placeholder", "NaN", false, ""},
		{"none placeholder", "None", false, ""},
		{"null placeholder", "NULL", false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Code(tc.in, tc.keepSep))
		})
	}
}

func TestCode_TrailingZeroNotInside(t *testing.T) {
	// Only the float-coercion artifact at the end is removed.
	assert.Equal(t, "120105020", Code("1201.05020", false))
	assert.Equal(t, "120150", Code("12015.0.0", true))
}

func TestDescription_Basic(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"code prefix stripped", "12015020 - Cash and Bank", "cash and bank"},
		{"en dash prefix", "12015020 – Cash", "cash"},
		{"no prefix untouched", "Cash and Bank", "cash and bank"},
		{"punctuation collapsed", "Trade  Receivables -- (Net)", "trade receivables net"},
		{"typographic quotes", "Director’s Loan", "director s loan"},
		{"empty", "", ""},
		{"nan placeholder", "nan", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Description(tc.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"12015020 - Cash & Bank", "1201/5020.0", "  TRADE payables  ",
		"nan", "", "ABC-123/xyz", "Director’s “Loan” — net",
	}
	for _, in := range inputs {
		for _, keep := range []bool{true, false} {
			once := Code(in, keep)
			assert.Equal(t, once, Code(once, keep), "Code(%q, %v)", in, keep)
		}
		once := Description(in)
		assert.Equal(t, once, Description(once), "Description(%q)", in)
	}
}
