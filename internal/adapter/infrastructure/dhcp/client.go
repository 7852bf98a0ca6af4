// Package dhcp provides DHCP client adapter implementation.
package dhcp

import (
	"context"
	"fmt"
	"time"

	"golang-netswitch/internal/port"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
)

// ClientAdapter is an adapter that implements the DHCPClient port using insomniacslk/dhcp library.
type ClientAdapter struct{}

// Ensure ClientAdapter implements the DHCPClient port
var _ port.DHCPClient = (*ClientAdapter)(nil)

// NewClientAdapter creates a new DHCP client adapter.
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{}
}

// DiscoverOffer broadcasts a DISCOVER on the interface and returns the first OFFER.
// No REQUEST is sent, so the server does not commit a lease.
func (c *ClientAdapter) DiscoverOffer(ctx context.Context, interfaceName string, timeout time.Duration) (*dhcpv4.DHCPv4, error) {
	client, err := nclient4.New(interfaceName, nclient4.WithTimeout(timeout), nclient4.WithRetry(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create DHCP client: %w", err)
	}
	defer client.Close()

	offer, err := client.DiscoverOffer(ctx)
	if err != nil {
		return nil, fmt.Errorf("DHCP discover failed: %w", err)
	}

	return offer, nil
}
