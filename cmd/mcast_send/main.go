// Command mcast_send multicasts the current date and time at a fixed
// interval.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/blockcast/go-mcast"
)

type cli struct {
	Group      string        `help:"Multicast group address" default:"224.14.51.6" env:"MCAST_GROUP"`
	Port       int           `help:"Local port to bind and group port to send to" default:"5555" env:"MCAST_PORT"`
	Interface  string        `help:"Outgoing interface for multicast (default: the loopback interface)" env:"MCAST_INTERFACE"`
	Interval   time.Duration `help:"Pause before each send" default:"5s" env:"MCAST_INTERVAL"`
	TTL        int           `help:"Multicast TTL, 0 keeps the system default" default:"0" env:"MCAST_TTL"`
	NoLoopback bool          `help:"Do not deliver own datagrams to listeners on this host" env:"MCAST_NO_LOOPBACK"`
	Charset    string        `help:"Character set of sent payloads" default:"UTF-8" env:"MCAST_CHARSET"`
}

func main() {
	var params cli
	kong.Parse(&params, kong.Description("Multicast the current time at a fixed interval."))

	if params.Interface == "" {
		params.Interface = mcast.DefaultInterface
	}
	codec, err := mcast.NewCodec(params.Charset)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := &mcast.Sender{
		Group:           params.Group,
		Port:            params.Port,
		Interface:       params.Interface,
		Interval:        params.Interval,
		TTL:             params.TTL,
		DisableLoopback: params.NoLoopback,
		Codec:           codec,
		Logger:          log.New(os.Stdout, "", 0),
	}
	err = s.Run(ctx)
	switch {
	case errors.Is(err, mcast.ErrInterrupted):
		fmt.Println(err)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
