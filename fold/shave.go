package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var shaver = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ShaveMarks removes all combining marks from s: decompose, drop the marks,
// recompose. The result loses accents and cedillas in every script, so "café"
// shaves to "cafe" and accented Greek loses its tonos. One way only.
func ShaveMarks(s string) string {
	out, _, err := transform.String(shaver, s)
	if err != nil {
		return s
	}
	return out
}

// ShaveMarksLatin removes combining marks only from Latin base characters,
// leaving accented Greek, Cyrillic, and other scripts intact.
func ShaveMarksLatin(s string) string {
	var b strings.Builder
	latinBase := false
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) && latinBase {
			continue
		}
		b.WriteRune(r)
		if !unicode.Is(unicode.Mn, r) {
			latinBase = r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
		}
	}
	return norm.NFC.String(b.String())
}

// Dewinize replaces the Windows 1252 symbol gremlins that leak into text
// advertised as latin-1 with ASCII-friendly substitutes.
func Dewinize(s string) string {
	return win1252.Apply(s)
}

// ASCII transliterates s toward plain ASCII: dewinize, shave marks off Latin
// letters, spell out sharp s, then apply compatibility composition.
// Best effort; code points with no compatibility mapping pass through.
func ASCII(s string) string {
	shaved := ShaveMarksLatin(Dewinize(s))
	shaved = strings.ReplaceAll(shaved, "ß", "ss")
	return norm.NFKC.String(shaved)
}
