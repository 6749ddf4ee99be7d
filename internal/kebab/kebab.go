// Package kebab converts identifiers to kebab-case.
package kebab

import (
	"strings"
	"unicode"
)

// ToKebab converts s to kebab-case. It splits on case boundaries,
// underscores, spaces, and digit runs, keeps acronym runs together
// ("HTTPServer" becomes "http-server"), and collapses repeated
// separators.
func ToKebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	runes := []rune(s)
	lastSep := true // suppress a leading separator
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			if !lastSep {
				b.WriteByte('-')
				lastSep = true
			}
			continue

		case unicode.IsUpper(r):
			if !lastSep && boundaryBefore(runes, i) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			lastSep = false

		case unicode.IsDigit(r):
			if !lastSep && i > 0 && !unicode.IsDigit(runes[i-1]) {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			lastSep = false

		default:
			if !lastSep && i > 0 && unicode.IsDigit(runes[i-1]) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			lastSep = false
		}
	}

	return strings.Trim(b.String(), "-")
}

// boundaryBefore reports whether a word boundary falls before the
// uppercase rune at i. That is the case after a lowercase rune or digit
// ("fooBar"), and at the end of an acronym run where the next rune is
// lowercase ("HTTPServer" boundary before 'S').
func boundaryBefore(runes []rune, i int) bool {
	if i == 0 {
		return false
	}
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}
	return false
}
