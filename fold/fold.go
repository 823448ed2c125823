// Package fold provides Unicode normalization, canonical equivalence checks,
// and lossy transliteration helpers for comparing and cleaning text.
//
// Strings that look identical can be built from different code point
// sequences. "café" spelled with U+00E9 and spelled with "e" plus a combining
// acute are canonically equivalent yet unequal as raw strings, occupy map
// slots separately, and have different lengths. Normalizing both sides to the
// same form before comparing or keying is the fix, and Equivalent does
// exactly that.
package fold

import (
	"github.com/quellen/wordhoard/dict"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NFC composes s into canonical composed form.
func NFC(s string) string { return norm.NFC.String(s) }

// NFD decomposes s into canonical decomposed form.
func NFD(s string) string { return norm.NFD.String(s) }

// NFKC composes s into compatibility composed form. Compatibility mapping is
// lossy: formatting distinctions such as "½" or "㎏" are replaced by their
// plain counterparts.
func NFKC(s string) string { return norm.NFKC.String(s) }

// NFKD decomposes s into compatibility decomposed form.
func NFKD(s string) string { return norm.NFKD.String(s) }

// Equivalent reports whether a and b are canonically equivalent, comparing
// their NFC forms.
func Equivalent(a, b string) bool {
	return norm.NFC.String(a) == norm.NFC.String(b)
}

// CaselessEqual reports whether a and b are equal after normalization and
// Unicode case folding.
func CaselessEqual(a, b string) bool {
	return Casefold(norm.NFC.String(a)) == Casefold(norm.NFC.String(b))
}

// Casefold returns s in Unicode case folded form, suitable as a case
// insensitive map key. Folding is stronger than lowercasing: U+00B5 MICRO
// SIGN folds to the Greek letter mu and "ß" folds to "ss".
func Casefold(s string) string {
	return cases.Fold().String(s)
}

// Lower lowercases s under the casing rules of tag. Pass language.Und for
// language neutral rules.
func Lower(tag language.Tag, s string) string {
	return cases.Lower(tag).String(s)
}

// Upper uppercases s under the casing rules of tag.
func Upper(tag language.Tag, s string) string {
	return cases.Upper(tag).String(s)
}

// Keyed copies m into a new dict whose keys are normalized to NFC.
// Canonically equivalent spellings collapse into one entry; when spellings
// collide the last one written wins.
func Keyed[V any](m map[string]V) *dict.Dict[string, V] {
	d := dict.New[string, V]()
	for k, v := range m {
		d.Set(norm.NFC.String(k), v)
	}
	return d
}
