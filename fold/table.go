package fold

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Table maps single code points to replacement text.
type Table map[rune]string

// Apply rewrites s, substituting every code point found in the table.
func (t Table) Apply(s string) string {
	if len(t) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := t[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseTable builds a Table from a YAML mapping of single code point keys to
// replacement strings.
func ParseTable(data []byte) (Table, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse replacement table: %w", err)
	}
	table := make(Table, len(raw))
	for key, repl := range raw {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) || r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("replacement table key %q: must be a single code point", key)
		}
		table[r] = repl
	}
	return table, nil
}

// LoadTable reads a YAML replacement table from r.
func LoadTable(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("load replacement table: %w", err)
	}
	return ParseTable(data)
}

// win1252 covers the cp1252 symbols most often mangled in transit. Single
// character stand-ins first, then the spelled out replacements.
var win1252 = Table{
	'‚': "'",
	'ƒ': "f",
	'„': `"`,
	'†': "*",
	'ˆ': "^",
	'‹': "<",
	'‘': "'",
	'’': "'",
	'“': `"`,
	'”': `"`,
	'•': "-",
	'–': "-",
	'—': "-",
	'˜': "~",
	'›': ">",

	'€': "<euro>",
	'…': "...",
	'Œ': "OE",
	'œ': "oe",
	'™': "(TM)",
	'‰': "<per mille>",
	'‡': "**",
}
