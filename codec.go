package mcast

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultCharset is used when no charset is configured.
const DefaultCharset = "UTF-8"

// Codec converts between datagram payload bytes and text in one charset.
// Malformed input is reported, never replaced.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// NewCodec looks up charset by its IANA name or alias. An empty name selects
// DefaultCharset.
func NewCodec(charset string) (*Codec, error) {
	if charset == "" {
		charset = DefaultCharset
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q: unsupported", charset)
	}
	name, err := ianaindex.IANA.Name(enc)
	if err != nil {
		name = charset
	}
	if name == "UTF-8" {
		enc = unicode.UTF8
	}
	return &Codec{name: name, enc: enc}, nil
}

func (c *Codec) Name() string {
	return c.name
}

func (c *Codec) isUTF8() bool {
	return c.enc == unicode.UTF8
}

func (c *Codec) Decode(b []byte) (string, error) {
	if c.isUTF8() {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, b); err != nil {
			return "", fmt.Errorf("decode %s: %w", c.name, err)
		}
		return string(b), nil
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", c.name, err)
	}
	// x/text decoders substitute U+FFFD for bad input; a lossless decode
	// encodes back to the original bytes.
	back, err := c.enc.NewEncoder().Bytes(out)
	if err != nil || !bytes.Equal(back, b) {
		return "", fmt.Errorf("decode %s: %w", c.name, ErrMalformedInput)
	}
	return string(out), nil
}

func (c *Codec) Encode(s string) ([]byte, error) {
	if c.isUTF8() {
		out, _, err := transform.Bytes(encoding.UTF8Validator, []byte(s))
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", c.name, err)
		}
		return out, nil
	}
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.name, err)
	}
	return out, nil
}
