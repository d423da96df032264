package mcast_test

import (
	"context"
	"net"
	"testing"

	"github.com/blockcast/go-mcast"
	"golang.org/x/net/nettest"
)

const testGroup = "224.14.51.6"

func multicastInterface(t *testing.T) *net.Interface {
	t.Helper()
	ifi, err := nettest.RoutedInterface("ip4", net.FlagUp|net.FlagMulticast)
	if err != nil {
		t.Skipf("no multicast capable interface: %v", err)
	}
	return ifi
}

// openPair returns a joined receiving endpoint and a sending endpoint that
// multicasts on the same interface, plus the group address to send to.
func openPair(t *testing.T) (*mcast.Endpoint, *mcast.Membership, *mcast.Endpoint, *net.UDPAddr) {
	t.Helper()
	ifi := multicastInterface(t)
	ctx := context.Background()

	rx := &mcast.Endpoint{}
	if err := rx.Open(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { rx.Close() })
	m, err := rx.Join(net.ParseIP(testGroup), ifi)
	if err != nil {
		t.Skipf("cannot join %s on %s: %v", testGroup, ifi.Name, err)
	}

	tx := &mcast.Endpoint{IFace: ifi}
	if err := tx.Open(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { tx.Close() })

	dst := &net.UDPAddr{
		IP:   net.ParseIP(testGroup),
		Port: rx.LocalAddr().(*net.UDPAddr).Port,
	}
	return rx, m, tx, dst
}
