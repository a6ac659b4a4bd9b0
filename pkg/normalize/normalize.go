// Package normalize turns raw dictionary words into their canonical,
// accent-free upper-case form.
package normalize

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// No trailing NFC: the result stays decomposed minus its nonspacing marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// StripAccents removes diacritics (e.g. "école" -> "ecole").
func StripAccents(s string) string {
	result, _, err := transform.String(stripMarks, s)
	if err != nil {
		// transform.String only fails on invalid transformer state; keep input.
		return s
	}
	return result
}

// Upper applies full Unicode upper-casing, so "ß" becomes "SS".
// A cases.Caser is stateful, hence one per call.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Word returns the normalized form of a dictionary word.
func Word(s string) string {
	return Upper(StripAccents(s))
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Length counts code points, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
