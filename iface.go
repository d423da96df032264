package mcast

import (
	"fmt"
	"net"
)

// LookupInterface resolves a network interface by name. There is no
// fallback to another interface.
func LookupInterface(name string) (*net.Interface, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInterfaceNotFound, name, err)
	}
	return ifi, nil
}

// ResolveGroup resolves host to an IPv4 address and checks that it is a
// multicast group.
func ResolveGroup(host string) (net.IP, error) {
	addr, err := net.ResolveIPAddr("ip4", host)
	if err != nil {
		return nil, fmt.Errorf("resolve group %q: %w", host, err)
	}
	if !addr.IP.IsMulticast() {
		return nil, fmt.Errorf("%w: %s", ErrNotMulticast, addr.IP)
	}
	return addr.IP.To4(), nil
}

// ResolveGroupAddr is ResolveGroup plus a destination port.
func ResolveGroupAddr(host string, port int) (*net.UDPAddr, error) {
	ip, err := ResolveGroup(host)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d", port)
	}
	return &net.UDPAddr{IP: ip, Port: port}, nil
}

func ifaceName(ifi *net.Interface) string {
	if ifi == nil {
		return "default"
	}
	return ifi.Name
}
