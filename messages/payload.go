package messages

import (
	"errors"
	"fmt"
	"strings"
)

// MaxPayload is the largest UDP payload an IPv4 datagram can carry:
// 65535 minus the 20 byte IPv4 header and the 8 byte UDP header.
const MaxPayload = 65507

// Terminator ends every text payload put on the wire.
const Terminator = "\r\n"

var ErrPayloadTooLarge = errors.New("payload exceeds maximum UDP datagram size")

// CheckSize returns ErrPayloadTooLarge if b does not fit in one datagram.
func CheckSize(b []byte) error {
	if len(b) > MaxPayload {
		return fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(b), MaxPayload)
	}
	return nil
}

// TrimTerminator drops a single trailing CRLF or LF from s.
func TrimTerminator(s string) string {
	if strings.HasSuffix(s, Terminator) {
		return s[:len(s)-len(Terminator)]
	}
	return strings.TrimSuffix(s, "\n")
}

// Text is a free-form line of text sent as one datagram.
type Text string

func (t Text) MarshalText() ([]byte, error) {
	b := make([]byte, 0, len(t)+len(Terminator))
	b = append(b, t...)
	b = append(b, Terminator...)
	return b, CheckSize(b)
}

func (t *Text) UnmarshalText(b []byte) error {
	if err := CheckSize(b); err != nil {
		return err
	}
	*t = Text(TrimTerminator(string(b)))
	return nil
}
