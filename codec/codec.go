// Package codec converts between Go's UTF-8 strings and bytes in named text
// encodings.
//
// A byte sequence means nothing without the encoding that produced it, so
// every conversion here goes through an explicitly looked up codec. Decoding
// bytes with the wrong codec either fails outright or comes back as mojibake;
// both outcomes are demonstrated in the tests rather than papered over.
package codec

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

// Codec is a named text encoding. The zero Codec is not usable; obtain one
// from Lookup, Default, or Sniff.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// Name returns the codec's canonical name.
func (c Codec) Name() string {
	return c.name
}

func (c Codec) String() string {
	return c.name
}

// Encode converts s to bytes in c's encoding. Runes the encoding cannot
// represent fail the conversion.
func (c Codec) Encode(s string) ([]byte, error) {
	b, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.name, err)
	}
	return b, nil
}

// EncodeReplace converts s to bytes in c's encoding, substituting runes the
// encoding cannot represent with its replacement byte.
func (c Codec) EncodeReplace(s string) []byte {
	b, _ := encoding.ReplaceUnsupported(c.enc.NewEncoder()).Bytes([]byte(s))
	return b
}

// Decode interprets b as text in c's encoding and returns it as a UTF-8
// string. UTF-8 and BOM-expecting codecs reject bytes that violate the
// encoding; single byte charmaps define a meaning for almost every byte, so
// a wrong declaration surfaces as mojibake rather than an error.
func (c Codec) Decode(b []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", c.name, err)
	}
	return string(out), nil
}

// NewReader wraps r so that reads yield UTF-8 text decoded from c's
// encoding.
func (c Codec) NewReader(r io.Reader) io.Reader {
	return c.enc.NewDecoder().Reader(r)
}

// NewWriter wraps w so that UTF-8 text written to it is encoded into c's
// encoding.
func (c Codec) NewWriter(w io.Writer) io.Writer {
	return c.enc.NewEncoder().Writer(w)
}
