// Package types defines common types used across the application.
package types

import (
	"net/netip"
	"time"
)

// Settings is the immutable runtime configuration handed to every component at construction.
type Settings struct {
	Interface      string        // Network interface managed by this session (e.g., "enp0s3")
	AllowedSubnet  netip.Prefix  // Subnet manual addresses must belong to (e.g., 192.168.56.0/24)
	DNSServer      netip.Addr    // Reserved address, also pushed as the DNS override
	Target         Target        // Host probed by the connectivity check
	SettleDelay    time.Duration // Wait after a successful reactivation
	ConnectTimeout time.Duration // curl --connect-timeout
	DHCPTimeout    time.Duration // DISCOVER/OFFER timeout for the discover command
	StatusBackend  string        // "iproute" or "netlink"
}

// Target describes the connectivity probe endpoint.
type Target struct {
	Scheme string `yaml:"scheme"`
	Domain string `yaml:"domain"`
	Port   int    `yaml:"port"`
}

// StaticIPConfig represents the IPv4 settings pushed to a connection profile in manual mode.
type StaticIPConfig struct {
	Address netip.Prefix // Host address with the allowed subnet's prefix length
	Gateway netip.Addr   // First host address of the allowed subnet
	DNS     netip.Addr   // Configured DNS server
}

// ConnectionProfile is the network manager's connection bound to an interface.
type ConnectionProfile struct {
	Name   string
	Device string
}

// InterfaceState is the live IPv4 assignment observed on an interface.
type InterfaceState struct {
	Name      string
	Addresses []netip.Prefix
}

// Primary returns the first assigned address, if any.
func (s InterfaceState) Primary() (netip.Prefix, bool) {
	if len(s.Addresses) == 0 {
		return netip.Prefix{}, false
	}
	return s.Addresses[0], true
}
