// Command mcast_listen joins a multicast group and prints every datagram it
// receives as a line of text.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/blockcast/go-mcast"
)

type cli struct {
	Group     string `help:"Multicast group address" default:"224.14.51.6" env:"MCAST_GROUP"`
	Port      int    `help:"Local port to bind and receive on" default:"5555" env:"MCAST_PORT"`
	Interface string `help:"Interface to join the group on (default: the loopback interface)" env:"MCAST_INTERFACE"`
	Charset   string `help:"Character set of received payloads" default:"UTF-8" env:"MCAST_CHARSET"`
}

func main() {
	var params cli
	kong.Parse(&params, kong.Description("Print text datagrams received from a multicast group."))

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

	r := &mcast.Receiver{
		Group:     params.Group,
		Port:      params.Port,
		Interface: params.Interface,
		Codec:     codec,
		Out:       os.Stdout,
		Logger:    log.New(os.Stdout, "", 0),
	}
	if err := r.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
