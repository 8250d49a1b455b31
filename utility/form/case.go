package form

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToSlug lowercases s, drops apostrophes and turns spaces into hyphens.
// Other punctuation passes through untouched.
func ToSlug(s string) string {
	s = cases.Lower(language.Und).String(s)
	s = strings.ReplaceAll(s, "'", "")
	return strings.ReplaceAll(s, " ", "-")
}

// ToCapitalized upper-cases the first letter and lower-cases the rest.
func ToCapitalized(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + cases.Lower(language.Und).String(s[size:])
}

// ToConstantCase upper-cases s for use as an exported constant prefix.
func ToConstantCase(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ToLowerPrefix returns the first n characters of s, lower-cased.
func ToLowerPrefix(s string, n int) string {
	var prefix strings.Builder
	for i, r := range []rune(s) {
		if i == n {
			break
		}
		prefix.WriteRune(r)
	}

	return cases.Lower(language.Und).String(prefix.String())
}
