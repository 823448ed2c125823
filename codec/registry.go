package codec

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// strictUTF8 is UTF-8 with a validating decoder. The stock decoder replaces
// invalid bytes with U+FFFD; input declared as UTF-8 should fail loudly
// instead.
type strictUTF8 struct {
	encoding.Encoding
}

func (strictUTF8) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: encoding.UTF8Validator}
}

var builtins = map[string]Codec{}

func register(c Codec, names ...string) Codec {
	for _, name := range names {
		builtins[normalize(name)] = c
	}
	return c
}

var utf8Codec = Codec{"utf-8", strictUTF8{unicode.UTF8}}

func init() {
	register(utf8Codec, "utf-8", "utf8", "u8")
	register(Codec{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)}, "utf-16", "utf16", "u16")
	register(Codec{"utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}, "utf-16le", "utf-16-le")
	register(Codec{"utf-16be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}, "utf-16be", "utf-16-be")
	register(Codec{"latin-1", charmap.ISO8859_1}, "latin-1", "latin1", "iso-8859-1", "iso8859-1", "8859", "cp819")
	register(Codec{"cp1252", charmap.Windows1252}, "cp1252", "windows-1252", "win1252")
	register(Codec{"cp437", charmap.CodePage437}, "cp437", "ibm437", "437")
}

// normalize reduces an encoding name to a comparison key. "UTF-8", "utf8",
// and "utf_8" all collapse to "utf8".
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '.', ':':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// Default returns the UTF-8 codec. Go has no platform dependent default
// encoding: source files, strings, and the standard library all assume
// UTF-8.
func Default() Codec {
	return utf8Codec
}

// Lookup resolves name to a codec. Spelling is forgiving: case, dashes,
// underscores, dots, colons, and spaces are ignored. Names outside the
// builtin table are resolved against the IANA character set registry, so
// "KOI8-R" or "Shift_JIS" work too. Unresolvable names fail with
// ErrUnknownEncoding.
func Lookup(name string) (Codec, error) {
	if c, ok := builtins[normalize(name)]; ok {
		return c, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return Codec{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return Codec{name: strings.ToLower(name), enc: enc}, nil
}
