package mcast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	"github.com/blockcast/go-mcast/messages"
	"go.uber.org/atomic"
)

// Receiver joins a multicast group and writes every datagram it receives as
// one line of text to Out.
type Receiver struct {
	// Group is the multicast group, as an IPv4 address or host name.
	Group string
	Port  int
	// Interface names the interface the group is joined on. Empty lets the
	// system pick one.
	Interface string
	// Codec decodes payloads; nil means DefaultCharset.
	Codec *Codec
	// Out receives the decoded lines; nil means os.Stdout.
	Out    io.Writer
	Logger *log.Logger

	ep         *Endpoint
	membership *Membership
	buf        *Buffer
	received   atomic.Uint64
}

// Open validates the configuration, binds the socket and joins the group.
// Configuration errors are returned before any socket is created.
func (r *Receiver) Open(ctx context.Context) error {
	if r.ep != nil {
		return errors.New("receiver already open")
	}
	group, err := ResolveGroup(r.Group)
	if err != nil {
		return err
	}
	var ifi *net.Interface
	if r.Interface != "" {
		if ifi, err = LookupInterface(r.Interface); err != nil {
			return err
		}
	}
	if r.Codec == nil {
		if r.Codec, err = NewCodec(DefaultCharset); err != nil {
			return err
		}
	}

	ep := &Endpoint{Port: r.Port}
	if err := ep.Open(ctx); err != nil {
		return err
	}
	m, err := ep.Join(group, ifi)
	if err != nil {
		ep.Close()
		return err
	}

	r.ep = ep
	r.membership = m
	r.buf = NewBuffer()
	r.logger().Printf("Listening: key=%s", m)
	return nil
}

// Serve receives until the membership becomes invalid. Cancelling ctx closes
// the socket, which unblocks the pending receive and ends the loop without
// error.
func (r *Receiver) Serve(ctx context.Context) error {
	if r.membership == nil {
		return errors.New("receiver not open")
	}
	stop := context.AfterFunc(ctx, func() {
		r.ep.Close()
	})
	defer stop()

	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	for r.membership.IsValid() {
		d, err := r.ep.Receive(r.buf)
		if err != nil {
			if !r.membership.IsValid() {
				break
			}
			return fmt.Errorf("receive: %w", err)
		}
		text, err := r.Codec.Decode(d.Payload)
		if err != nil {
			return fmt.Errorf("datagram from %s: %w", d.Addr, err)
		}
		if _, err := fmt.Fprintln(out, messages.TrimTerminator(text)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		r.received.Inc()
		r.buf.Reset()
	}
	if debug {
		dlog.Printf("membership %s no longer valid after %d datagrams", r.membership, r.received.Load())
	}
	return nil
}

// Run opens the receiver, serves until the membership ends and always
// releases the socket.
func (r *Receiver) Run(ctx context.Context) error {
	if err := r.Open(ctx); err != nil {
		return err
	}
	defer r.Close()
	return r.Serve(ctx)
}

// Membership returns the current group membership, nil before Open.
func (r *Receiver) Membership() *Membership {
	return r.membership
}

// LocalAddr is the bound address, nil before Open.
func (r *Receiver) LocalAddr() net.Addr {
	if r.ep == nil {
		return nil
	}
	return r.ep.LocalAddr()
}

// Received is the number of datagrams emitted so far.
func (r *Receiver) Received() uint64 {
	return r.received.Load()
}

func (r *Receiver) Close() error {
	if r.ep == nil {
		return nil
	}
	return r.ep.Close()
}

func (r *Receiver) logger() *log.Logger {
	if r.Logger == nil {
		r.Logger = log.New(io.Discard, "", 0)
	}
	return r.Logger
}
