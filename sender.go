package mcast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"time"

	"github.com/blockcast/go-mcast/messages"
	"go.uber.org/atomic"
)

// DefaultInterval is the pause before each timestamp is sent.
const DefaultInterval = 5 * time.Second

// Sender periodically multicasts the current time as a line of text.
// Delivery is fire-and-forget.
type Sender struct {
	Group string
	Port  int
	// Interface selects the outgoing interface for multicast. Empty leaves
	// it to the routing table.
	Interface       string
	Interval        time.Duration
	TTL             int
	DisableLoopback bool
	// Layout formats the timestamp; empty means messages.DateLayout.
	Layout string
	Codec  *Codec
	// Clock defaults to time.Now.
	Clock  func() time.Time
	Logger *log.Logger

	ep   *Endpoint
	dst  *net.UDPAddr
	sent atomic.Uint64
}

// Open selects the outgoing interface and binds the socket.
func (s *Sender) Open(ctx context.Context) error {
	if s.ep != nil {
		return errors.New("sender already open")
	}
	dst, err := ResolveGroupAddr(s.Group, s.Port)
	if err != nil {
		return err
	}
	var ifi *net.Interface
	if s.Interface != "" {
		if ifi, err = LookupInterface(s.Interface); err != nil {
			return err
		}
	}
	if s.Codec == nil {
		if s.Codec, err = NewCodec(DefaultCharset); err != nil {
			return err
		}
	}

	ep := &Endpoint{
		Port:            s.Port,
		IFace:           ifi,
		TTL:             s.TTL,
		DisableLoopback: s.DisableLoopback,
	}
	if err := ep.Open(ctx); err != nil {
		return err
	}
	s.ep = ep
	s.dst = dst
	return nil
}

// Serve sends a timestamp after every Interval until ctx is cancelled, which
// returns an error wrapping ErrInterrupted. A failed send ends the loop.
func (s *Sender) Serve(ctx context.Context) error {
	if s.ep == nil {
		return errors.New("sender not open")
	}
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrInterrupted, context.Cause(ctx))
		case <-timer.C:
		}
		s.logger().Println("Sending data ...")
		if err := s.SendTimestamp(); err != nil {
			return err
		}
		timer.Reset(interval)
	}
}

// Run opens the sender, serves until interrupted and always releases the
// socket.
func (s *Sender) Run(ctx context.Context) error {
	if err := s.Open(ctx); err != nil {
		return err
	}
	defer s.Close()
	return s.Serve(ctx)
}

// SendTimestamp sends the current time once.
func (s *Sender) SendTimestamp() error {
	now := time.Now
	if s.Clock != nil {
		now = s.Clock
	}
	ts := &messages.Timestamp{Time: now(), Layout: s.Layout}
	b, err := ts.MarshalText()
	if err != nil {
		return err
	}
	return s.send(b)
}

// SendText sends text followed by the line terminator as one datagram.
func (s *Sender) SendText(text string) error {
	b, err := messages.Text(text).MarshalText()
	if err != nil {
		return err
	}
	return s.send(b)
}

func (s *Sender) send(text []byte) error {
	if s.ep == nil {
		return errors.New("sender not open")
	}
	payload, err := s.Codec.Encode(string(text))
	if err != nil {
		return err
	}
	if _, err := s.ep.Send(payload, s.dst); err != nil {
		return fmt.Errorf("send to %s: %w", s.dst, err)
	}
	s.sent.Inc()
	return nil
}

// Sent is the number of datagrams sent so far.
func (s *Sender) Sent() uint64 {
	return s.sent.Load()
}

func (s *Sender) Close() error {
	if s.ep == nil {
		return nil
	}
	return s.ep.Close()
}

func (s *Sender) logger() *log.Logger {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard, "", 0)
	}
	return s.Logger
}
