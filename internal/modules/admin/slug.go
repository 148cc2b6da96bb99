package admin

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify turns a listing title into a URL slug. Accented characters
// lose their marks, anything outside [a-z0-9] collapses into a single
// dash and edge dashes are trimmed.
func Slugify(title string) string {
	decomposed := norm.NFD.String(strings.ToLower(title))

	var b strings.Builder
	dash := false
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark stripped
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
