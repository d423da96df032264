package mcast

import (
	"net"

	"github.com/blockcast/go-mcast/messages"
)

// MaxPayload is the theoretical maximum IPv4 UDP payload.
const MaxPayload = messages.MaxPayload

// Datagram is one received or sent message. For received datagrams Payload
// aliases the Buffer it was read into and is only valid until that Buffer is
// reset.
type Datagram struct {
	Payload []byte
	Addr    *net.UDPAddr
}

// Buffer is a fixed-size receive buffer owned by the caller and reused for
// every Receive.
type Buffer struct {
	b []byte
	n int
}

func NewBuffer() *Buffer {
	return &Buffer{b: make([]byte, MaxPayload)}
}

// Bytes returns the filled part of the buffer.
func (buf *Buffer) Bytes() []byte {
	return buf.b[:buf.n]
}

func (buf *Buffer) Len() int {
	return buf.n
}

func (buf *Buffer) Cap() int {
	return len(buf.b)
}

// Reset zeroes the previously filled bytes and empties the buffer.
func (buf *Buffer) Reset() {
	clear(buf.b[:buf.n])
	buf.n = 0
}

// space returns the whole backing array for a read.
func (buf *Buffer) space() []byte {
	return buf.b[:cap(buf.b)]
}

// fill records n bytes as read into space.
func (buf *Buffer) fill(n int) []byte {
	buf.n = n
	return buf.b[:n]
}
