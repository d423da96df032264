package mcast

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/blockcast/go-mcast/messages"
	"go.uber.org/atomic"
	"golang.org/x/net/ipv4"
)

// Endpoint is a single UDP/IPv4 socket bound to the wildcard address on Port
// with address reuse enabled. It can join multicast groups and send to them.
type Endpoint struct {
	Port int
	// IFace selects the outgoing interface for multicast traffic. Nil leaves
	// the choice to the routing table.
	IFace *net.Interface
	// TTL is the multicast TTL; zero keeps the system default of 1.
	TTL int
	// DisableLoopback stops the host from delivering its own multicast
	// transmissions back to local listeners.
	DisableLoopback bool

	conn4  *ipv4.PacketConn
	closed atomic.Bool
}

// Open creates and binds the socket. On error nothing is left open.
func (e *Endpoint) Open(ctx context.Context) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if e.conn4 != nil {
		return errors.New("endpoint already open")
	}

	lc := net.ListenConfig{Control: reuseControl}
	addr := net.JoinHostPort(net.IPv4zero.String(), strconv.Itoa(e.Port))
	conn, err := lc.ListenPacket(ctx, "udp4", addr)
	if err != nil {
		return fmt.Errorf("failed to open endpoint on %s: %w", addr, err)
	}
	conn4 := ipv4.NewPacketConn(conn)

	if e.IFace != nil {
		if err := conn4.SetMulticastInterface(e.IFace); err != nil {
			conn4.Close()
			return fmt.Errorf("set multicast interface %s: %w", e.IFace.Name, err)
		}
	}
	if e.TTL > 0 {
		if err := conn4.SetMulticastTTL(e.TTL); err != nil {
			conn4.Close()
			return fmt.Errorf("set multicast ttl: %w", err)
		}
	}
	if e.DisableLoopback {
		if err := conn4.SetMulticastLoopback(false); err != nil {
			conn4.Close()
			return fmt.Errorf("disable multicast loopback: %w", err)
		}
	}

	e.conn4 = conn4
	if debug {
		dlog.Printf("endpoint open on %s (iface %s)", conn.LocalAddr(), ifaceName(e.IFace))
	}
	return nil
}

// Join subscribes the endpoint to group on ifi. The address is checked
// before the socket is touched.
func (e *Endpoint) Join(group net.IP, ifi *net.Interface) (*Membership, error) {
	if group.To4() == nil || !group.IsMulticast() {
		return nil, fmt.Errorf("%w: %s", ErrNotMulticast, group)
	}
	if e.conn4 == nil || e.closed.Load() {
		return nil, ErrClosed
	}
	if err := e.conn4.JoinGroup(ifi, &net.UDPAddr{IP: group}); err != nil {
		return nil, fmt.Errorf("join group %s on %s: %w", group, ifaceName(ifi), err)
	}
	m := &Membership{ep: e, group: group, iface: ifi}
	m.valid.Store(true)
	if debug {
		dlog.Printf("joined %s", m)
	}
	return m, nil
}

// Receive blocks until a datagram arrives and reads it into buf.
func (e *Endpoint) Receive(buf *Buffer) (Datagram, error) {
	if e.conn4 == nil || e.closed.Load() {
		return Datagram{}, ErrClosed
	}
	n, _, src, err := e.conn4.ReadFrom(buf.space())
	if err != nil {
		return Datagram{}, err
	}
	ua, _ := src.(*net.UDPAddr)
	if debug {
		dlog.Printf("recv %d bytes from %s", n, src)
	}
	return Datagram{Payload: buf.fill(n), Addr: ua}, nil
}

// Send transmits payload as one datagram to dst.
func (e *Endpoint) Send(payload []byte, dst *net.UDPAddr) (int, error) {
	if e.conn4 == nil || e.closed.Load() {
		return 0, ErrClosed
	}
	if err := messages.CheckSize(payload); err != nil {
		return 0, err
	}
	n, err := e.conn4.WriteTo(payload, nil, dst)
	if err != nil {
		return n, err
	}
	if debug {
		dlog.Printf("sent %d bytes to %s", n, dst)
	}
	return n, nil
}

// Closed reports whether Close has been called.
func (e *Endpoint) Closed() bool {
	return e.closed.Load()
}

// Close releases the socket. It is safe to call more than once and from
// another goroutine, which unblocks a pending Receive.
func (e *Endpoint) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	if e.conn4 == nil {
		return nil
	}
	if debug {
		dlog.Printf("endpoint %s closed", e.conn4.LocalAddr())
	}
	return e.conn4.Close()
}

// LocalAddr is the bound address, nil before Open.
func (e *Endpoint) LocalAddr() net.Addr {
	if e.conn4 == nil {
		return nil
	}
	return e.conn4.LocalAddr()
}

// SetReadDeadline bounds the next Receive.
func (e *Endpoint) SetReadDeadline(t time.Time) error {
	if e.conn4 == nil || e.closed.Load() {
		return ErrClosed
	}
	return e.conn4.SetReadDeadline(t)
}
