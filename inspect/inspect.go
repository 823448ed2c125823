// Package inspect reports what code points are: their U+ notation, Unicode
// name, general categories, and how much space they occupy in the UTF-8 and
// UTF-16 encoding forms.
package inspect

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/quellen/wordhoard/set"

	"golang.org/x/text/unicode/runenames"
)

// Info describes a single code point.
type Info struct {
	Rune       rune
	Code       string // U+XXXX notation
	Name       string // Unicode character name
	Categories []string
	Digit      bool // decimal digit (Nd)
	Number     bool // any numeric category (N)
	UTF8Len    int  // bytes in UTF-8, -1 for invalid runes
	UTF16Units int  // code units in UTF-16
}

// Rune describes r.
func Rune(r rune) Info {
	return Info{
		Rune:       r,
		Code:       fmt.Sprintf("U+%04X", r),
		Name:       runenames.Name(r),
		Categories: categories(r),
		Digit:      unicode.IsDigit(r),
		Number:     unicode.IsNumber(r),
		UTF8Len:    utf8.RuneLen(r),
		UTF16Units: utf16Units(r),
	}
}

// String describes every code point of s in order.
func String(s string) []Info {
	infos := make([]Info, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		infos = append(infos, Rune(r))
	}
	return infos
}

// Width returns the byte length and the code point count of s. The two
// disagree as soon as s leaves ASCII.
func Width(s string) (bytes, runes int) {
	return len(s), utf8.RuneCountInString(s)
}

// Find scans the assigned code points for characters whose name carries
// every word of query. Matching is word wise: "cat face" finds CAT FACE and
// GRINNING CAT FACE, not every name merely containing those letters.
func Find(query string) []Info {
	terms := strings.Fields(strings.ToUpper(query))
	if len(terms) == 0 {
		return nil
	}
	want := set.Of(terms...)

	var found []Info
	for r := rune(' '); r <= unicode.MaxRune; r++ {
		name := runenames.Name(r)
		if name == "" || !strings.Contains(name, terms[0]) {
			continue
		}
		if want.Subset(set.Of(strings.Fields(name)...)) {
			found = append(found, Rune(r))
		}
	}
	return found
}

func categories(r rune) []string {
	var cats []string
	for name, table := range unicode.Categories {
		if unicode.Is(table, r) {
			cats = append(cats, name)
		}
	}
	slices.Sort(cats)
	return cats
}

func utf16Units(r rune) int {
	if r > 0xffff {
		return 2
	}
	return 1
}
