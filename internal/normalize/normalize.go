// Package normalize canonicalizes GL codes and account descriptions so that
// rows from different extracts join on equality.
package normalize

import (
	"regexp"
	"strings"
)

var (
	codeStripRe     = regexp.MustCompile(`[^a-z0-9]`)
	codeStripSepRe  = regexp.MustCompile(`[^a-z0-9/]`)
	descPrefixRe    = regexp.MustCompile(`^\d+\s*[-–—]\s*`)
	descCollapseRe  = regexp.MustCompile(`[^a-z0-9]+`)
	trailingZeroRe  = regexp.MustCompile(`\.0$`)
	nullPlaceholder = map[string]bool{"nan": true, "none": true, "null": true}
)

// typographic characters that show up in spreadsheet exports, folded to ASCII.
var asciiFolder = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
)

// Code canonicalizes a GL code for use as a join key. Numeric exports often
// carry a trailing ".0"; that artifact is removed before stripping. When
// keepSeparator is true the "/" segment separator survives, since source
// systems disagree on whether codes include one. Empty and placeholder
// values ("nan", "none", "null") normalize to "".
func Code(code string, keepSeparator bool) string {
	s := asciiFolder.Replace(code)
	s = strings.TrimSpace(s)
	s = trailingZeroRe.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	if keepSeparator {
		s = codeStripSepRe.ReplaceAllString(s, "")
	} else {
		s = codeStripRe.ReplaceAllString(s, "")
	}
	if nullPlaceholder[s] {
		return ""
	}
	return s
}

// Description canonicalizes an account description for fallback matching.
// A leading numeric-code prefix ("12015020 - Cash") is dropped, typographic
// quotes and dashes are folded to ASCII, and any run of non-alphanumeric
// characters collapses to a single space.
func Description(text string) string {
	s := asciiFolder.Replace(text)
	s = strings.TrimSpace(s)
	s = descPrefixRe.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	s = descCollapseRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if nullPlaceholder[s] {
		return ""
	}
	return s
}
