package mcast

import (
	"errors"

	"github.com/blockcast/go-mcast/messages"
)

var (
	ErrNotMulticast      = errors.New("not a multicast address")
	ErrInterfaceNotFound = errors.New("network interface not found")
	ErrClosed            = errors.New("endpoint closed")
	ErrInterrupted       = errors.New("interrupted")
	ErrMalformedInput    = errors.New("malformed input for charset")
	ErrPayloadTooLarge   = messages.ErrPayloadTooLarge
)
