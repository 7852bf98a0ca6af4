// Package dhcp switches the managed connection profile to DHCP and probes the segment for offers.
package dhcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/netip"
	"strings"
	"time"

	"golang-netswitch/internal/adapter/profile"
	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
)

// ErrNoOffer is returned when no DHCP server answered the DISCOVER.
var ErrNoOffer = errors.New("no DHCP offer received")

// Manager applies automatic addressing to a connection profile.
type Manager struct {
	settings   types.Settings
	conns      port.ConnectionManager
	workflow   *profile.Workflow
	dhcpClient port.DHCPClient
	out        io.Writer
}

// NewManager creates a DHCP manager. dhcpClient is only needed for Discover and may be nil.
func NewManager(settings types.Settings, conns port.ConnectionManager, workflow *profile.Workflow, dhcpClient port.DHCPClient, out io.Writer) *Manager {
	return &Manager{
		settings:   settings,
		conns:      conns,
		workflow:   workflow,
		dhcpClient: dhcpClient,
		out:        out,
	}
}

// Apply clears the static addressing of p, enables DHCP, reactivates p and reports the new address.
func (m *Manager) Apply(ctx context.Context, p types.ConnectionProfile) error {
	fmt.Fprintln(m.out, "\nSwitching to DHCP mode...")

	return m.workflow.Run(ctx, p, profile.Change{
		Name:    "dhcp",
		Apply:   m.conns.ConfigureDHCP,
		Applied: "DHCP configuration applied.",
		Failed:  "Failed to switch to DHCP mode.",
	})
}

// Discover broadcasts a single DISCOVER on the interface and prints the first offer.
// No REQUEST is sent, so nothing is leased and the interface is left untouched.
func (m *Manager) Discover(ctx context.Context) (*dhcpv4.DHCPv4, error) {
	if m.dhcpClient == nil {
		return nil, errors.New("no DHCP client configured")
	}

	iface := m.settings.Interface
	logger := logging.WithComponentAndInterface("dhcp", iface)
	fmt.Fprintf(m.out, "\nLooking for DHCP servers on '%s'...\n", iface)

	offer, err := m.dhcpClient.DiscoverOffer(ctx, iface, m.settings.DHCPTimeout)
	if err != nil {
		fmt.Fprintf(m.out, "No DHCP offer received on '%s'.\n", iface)
		logger.WithError(err).Warn("DHCP discover failed")
		return nil, fmt.Errorf("%w: %w", ErrNoOffer, err)
	}

	m.printOffer(offer)

	yourIP, ok := netip.AddrFromSlice(offer.YourIPAddr.To4())
	if !ok || !m.settings.AllowedSubnet.Contains(yourIP) {
		fmt.Fprintf(m.out, "Warning: the offered address is outside the allowed subnet %s.\n", m.settings.AllowedSubnet)
		logger.WithField("offered", offer.YourIPAddr.String()).Warn("Offer outside allowed subnet")
	}

	return offer, nil
}

func (m *Manager) printOffer(offer *dhcpv4.DHCPv4) {
	fmt.Fprintf(m.out, "Offer from server: %s\n", formatIP(offer.ServerIdentifier()))

	address := offer.YourIPAddr.String()
	if mask := offer.SubnetMask(); mask != nil {
		ones, _ := mask.Size()
		address = fmt.Sprintf("%s/%d", address, ones)
	}
	fmt.Fprintf(m.out, "Offered address: %s\n", address)
	fmt.Fprintf(m.out, "Router: %s\n", formatIPs(offer.Router()))
	fmt.Fprintf(m.out, "DNS: %s\n", formatIPs(offer.DNS()))
	fmt.Fprintf(m.out, "Lease time: %s\n", offer.IPAddressLeaseTime(0).Round(time.Second))
}

func formatIP(ip net.IP) string {
	if ip == nil {
		return "unknown"
	}
	return ip.String()
}

func formatIPs(ips []net.IP) string {
	if len(ips) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(ips))
	for _, ip := range ips {
		parts = append(parts, ip.String())
	}
	return strings.Join(parts, ", ")
}
