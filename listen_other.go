//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package mcast

import "syscall"

const DefaultInterface = "lo0"

// reuseControl is a no-op where golang.org/x/sys/unix socket options are
// unavailable; the OS default bind semantics apply.
func reuseControl(network, address string, c syscall.RawConn) error {
	return nil
}
