package mcast

import (
	"fmt"
	"net"

	"go.uber.org/atomic"
)

// Membership ties an Endpoint to a multicast group on one interface. It is
// valid from a successful Join until Drop or until the endpoint is closed.
type Membership struct {
	ep    *Endpoint
	group net.IP
	iface *net.Interface
	valid atomic.Bool
}

func (m *Membership) Group() net.IP {
	return m.group
}

func (m *Membership) Interface() *net.Interface {
	return m.iface
}

// IsValid is polled between blocking receives; it turns false as soon as the
// membership is dropped or the socket is closed by anyone.
func (m *Membership) IsValid() bool {
	return m.valid.Load() && !m.ep.Closed()
}

// Drop leaves the group. Further calls are no-ops.
func (m *Membership) Drop() error {
	if !m.valid.CompareAndSwap(true, false) {
		return nil
	}
	if m.ep.Closed() {
		return nil
	}
	if err := m.ep.conn4.LeaveGroup(m.iface, &net.UDPAddr{IP: m.group}); err != nil {
		return fmt.Errorf("leave group %s on %s: %w", m.group, ifaceName(m.iface), err)
	}
	return nil
}

func (m *Membership) String() string {
	return fmt.Sprintf("<%s,%s>", m.group, ifaceName(m.iface))
}
