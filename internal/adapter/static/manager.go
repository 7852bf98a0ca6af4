// Package static switches the managed connection profile to a manually assigned address.
package static

import (
	"context"
	"fmt"
	"io"
	"net/netip"

	"golang-netswitch/internal/adapter/profile"
	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/pkg/subnet"
	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"
)

// Manager applies manual IPv4 addressing inside the allowed subnet.
type Manager struct {
	settings  types.Settings
	conns     port.ConnectionManager
	workflow  *profile.Workflow
	validator *subnet.Validator
	out       io.Writer
}

// NewManager creates a static IP manager.
func NewManager(settings types.Settings, conns port.ConnectionManager, workflow *profile.Workflow, out io.Writer) *Manager {
	return &Manager{
		settings:  settings,
		conns:     conns,
		workflow:  workflow,
		validator: subnet.NewValidator(settings.AllowedSubnet, settings.DNSServer, out),
		out:       out,
	}
}

// Settings derives the profile settings for ip: the allowed subnet's prefix length,
// its first host as gateway and the configured DNS server.
func (m *Manager) Settings(ip netip.Addr) types.StaticIPConfig {
	return types.StaticIPConfig{
		Address: netip.PrefixFrom(ip, m.settings.AllowedSubnet.Bits()),
		Gateway: subnet.Gateway(m.settings.AllowedSubnet),
		DNS:     m.settings.DNSServer,
	}
}

// Apply assigns ip to p, reactivates p and reports the new address.
// ip is validated again so callers outside the menu cannot bypass the subnet rules.
func (m *Manager) Apply(ctx context.Context, p types.ConnectionProfile, ip string) error {
	addr, err := m.validator.Validate(ip)
	if err != nil {
		fmt.Fprintln(m.out, m.validator.Message(err))
		return err
	}

	config := m.Settings(addr)
	logging.WithComponentAndInterface("static", p.Device).WithFields(map[string]interface{}{
		"address": config.Address.String(),
		"gateway": config.Gateway.String(),
		"dns":     config.DNS.String(),
	}).Debug("Derived static settings")

	fmt.Fprintf(m.out, "\nSetting static IP %s...\n", config.Address)

	return m.workflow.Run(ctx, p, profile.Change{
		Name: "static",
		Apply: func(ctx context.Context, name string) error {
			return m.conns.ConfigureStatic(ctx, name, config)
		},
		Applied: fmt.Sprintf("Static IP set to %s.", config.Address),
		Failed:  "Failed to set the static IP.",
	})
}
