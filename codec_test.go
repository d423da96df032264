package mcast_test

import (
	"errors"
	"testing"

	"github.com/blockcast/go-mcast"
	"golang.org/x/text/encoding"
)

func TestDefaultCodec(t *testing.T) {
	c, err := mcast.NewCodec("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name() != "UTF-8" {
		t.Errorf("unexpected charset: got %q, want %q", c.Name(), "UTF-8")
	}
	s, err := c.Decode([]byte("Grüße\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "Grüße\r\n" {
		t.Errorf("unexpected decode: %q", s)
	}
}

func TestCodecAlias(t *testing.T) {
	c, err := mcast.NewCodec("csUTF8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name() != "UTF-8" {
		t.Errorf("unexpected charset: got %q, want %q", c.Name(), "UTF-8")
	}
}

func TestCodecRejectsMalformedUTF8(t *testing.T) {
	c, err := mcast.NewCodec(mcast.DefaultCharset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Decode([]byte{'o', 'k', 0xff, 0xfe}); !errors.Is(err, encoding.ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	if _, err := c.Encode(string([]byte{0xc3})); !errors.Is(err, encoding.ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestLatin1Codec(t *testing.T) {
	c, err := mcast.NewCodec("ISO-8859-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := c.Encode("café")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "caf\xe9" {
		t.Errorf("unexpected encoding: %q", b)
	}
	s, err := c.Decode(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "café" {
		t.Errorf("unexpected decode: %q", s)
	}
}

func TestUnknownCharset(t *testing.T) {
	if _, err := mcast.NewCodec("no-such-charset"); err == nil {
		t.Errorf("expected error for unknown charset, got nil")
	}
}

func TestShiftJISCodec(t *testing.T) {
	c, err := mcast.NewCodec("Shift_JIS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := c.Encode("日本\r\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := c.Decode(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "日本\r\n" {
		t.Errorf("unexpected decode: %q", s)
	}
}

func TestShiftJISRejectsMalformed(t *testing.T) {
	c, err := mcast.NewCodec("Shift_JIS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := c.Decode([]byte{0x81, 0x20, 'o', 'k'})
	if !errors.Is(err, mcast.ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %q, %v", s, err)
	}
}
