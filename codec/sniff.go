package codec

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16LE = []byte{0xff, 0xfe}
	bomUTF16BE = []byte{0xfe, 0xff}
)

// Codecs returned by Sniff strip the byte order mark when decoding.
var (
	sniffedUTF8    = Codec{"utf-8", unicode.UTF8BOM}
	sniffedUTF16LE = Codec{"utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)}
	sniffedUTF16BE = Codec{"utf-16be", unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)}
)

// Sniff inspects the leading bytes of b for a byte order mark and reports
// the codec it announces. Absence of a BOM proves nothing: most UTF-8 text
// carries none, so callers still need a declared encoding when Sniff
// reports false.
func Sniff(b []byte) (Codec, bool) {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return sniffedUTF8, true
	case bytes.HasPrefix(b, bomUTF16LE):
		return sniffedUTF16LE, true
	case bytes.HasPrefix(b, bomUTF16BE):
		return sniffedUTF16BE, true
	}
	return Codec{}, false
}
