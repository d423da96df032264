package mcast

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// DefaultInterface is the loopback interface as Linux names it.
const DefaultInterface = "lo"

// reuseControl lets several processes on the host bind the same group port.
func reuseControl(network, address string, c syscall.RawConn) error {
	var serr error
	err := c.Control(func(fd uintptr) {
		// Reuse the address
		if err := unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
			serr = fmt.Errorf("could not set socket reuseaddr: %w", err)
			return
		}

		// Reuse the port
		if err := unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1); err != nil {
			serr = fmt.Errorf("could not set socket reuseport: %w", err)
		}
	})
	if err != nil {
		return err
	}
	return serr
}
