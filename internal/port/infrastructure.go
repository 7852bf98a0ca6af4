// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"time"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/vishvananda/netlink"
)

//go:generate mockgen -source=infrastructure.go -destination=../mock/mock_infrastructure.go -package=mock

// CommandExecutor is a port for running external programs.
// Arguments are passed as an array and never interpreted by a shell.
type CommandExecutor interface {
	// Output runs the command and returns its stdout trimmed of surrounding whitespace
	Output(ctx context.Context, name string, args ...string) (string, error)

	// Run runs the command with stdout and stderr streamed to the terminal
	Run(ctx context.Context, name string, args ...string) error
}

// DHCPClient is a port for DHCP client operations.
// This interface abstracts DHCP server discovery on an interface.
type DHCPClient interface {
	// DiscoverOffer performs a DHCP DISCOVER/OFFER exchange without requesting the lease
	DiscoverOffer(ctx context.Context, interfaceName string, timeout time.Duration) (*dhcpv4.DHCPv4, error)
}

// NetworkManager is a port for netlink interface operations.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)
}
