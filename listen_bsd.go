//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package mcast

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// DefaultInterface is the loopback interface as BSD and macOS name it.
const DefaultInterface = "lo0"

// reuseControl lets several processes on the host bind the same group port.
// On BSD SO_REUSEADDR already allows duplicate binds for multicast groups.
func reuseControl(network, address string, c syscall.RawConn) error {
	var serr error
	err := c.Control(func(fd uintptr) {
		if err := unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
			serr = fmt.Errorf("could not set socket reuseaddr: %w", err)
		}
	})
	if err != nil {
		return err
	}
	return serr
}
