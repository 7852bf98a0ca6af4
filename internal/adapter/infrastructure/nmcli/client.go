// Package nmcli provides the NetworkManager connection adapter implementation.
package nmcli

import (
	"context"
	"fmt"
	"strings"

	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"
)

const binary = "nmcli"

// ClientAdapter is an adapter that implements the ConnectionManager port by driving nmcli.
type ClientAdapter struct {
	exec port.CommandExecutor
}

// Ensure ClientAdapter implements the ConnectionManager port
var _ port.ConnectionManager = (*ClientAdapter)(nil)

// NewClientAdapter creates a new nmcli adapter on top of the given executor.
func NewClientAdapter(exec port.CommandExecutor) *ClientAdapter {
	return &ClientAdapter{exec: exec}
}

// ActiveConnection returns the active connection whose DEVICE field equals device.
func (c *ClientAdapter) ActiveConnection(ctx context.Context, device string) (string, error) {
	out, err := c.exec.Output(ctx, binary, "-t", "-f", "NAME,DEVICE", "connection", "show", "--active")
	if err != nil {
		return "", fmt.Errorf("failed to list active connections: %w", err)
	}

	for _, line := range strings.Split(out, "\n") {
		fields := splitTerse(strings.TrimRight(line, "\r"))
		if len(fields) < 2 {
			continue
		}
		if fields[len(fields)-1] == device && fields[0] != "" {
			logging.WithComponentAndInterface("nmcli", device).WithField("profile", fields[0]).Debug("Found active connection")
			return fields[0], nil
		}
	}

	return "", fmt.Errorf("%w for device %s", types.ErrNoActiveConnection, device)
}

// ConfigureDHCP clears the static fields of profile and switches it to automatic addressing.
func (c *ClientAdapter) ConfigureDHCP(ctx context.Context, profile string) error {
	return c.modify(ctx, profile,
		"ipv4.addresses", "",
		"ipv4.gateway", "",
		"ipv4.dns", "",
		"ipv4.method", "auto",
	)
}

// ConfigureStatic switches profile to manual addressing with the given settings.
func (c *ClientAdapter) ConfigureStatic(ctx context.Context, profile string, config types.StaticIPConfig) error {
	return c.modify(ctx, profile,
		"ipv4.method", "manual",
		"ipv4.addresses", config.Address.String(),
		"ipv4.gateway", config.Gateway.String(),
		"ipv4.dns", config.DNS.String(),
	)
}

// Down deactivates profile.
func (c *ClientAdapter) Down(ctx context.Context, profile string) error {
	if err := c.exec.Run(ctx, binary, "connection", "down", profile); err != nil {
		return fmt.Errorf("failed to bring connection %s down: %w", profile, err)
	}
	return nil
}

// Up activates profile.
func (c *ClientAdapter) Up(ctx context.Context, profile string) error {
	if err := c.exec.Run(ctx, binary, "connection", "up", profile); err != nil {
		return fmt.Errorf("failed to bring connection %s up: %w", profile, err)
	}
	return nil
}

func (c *ClientAdapter) modify(ctx context.Context, profile string, properties ...string) error {
	args := append([]string{"connection", "modify", profile}, properties...)
	if err := c.exec.Run(ctx, binary, args...); err != nil {
		return fmt.Errorf("failed to modify connection %s: %w", profile, err)
	}
	return nil
}

// splitTerse splits one line of nmcli terse output on unescaped colons.
// Backslash escapes (\: and \\) are resolved in the returned fields.
func splitTerse(line string) []string {
	var (
		fields  []string
		current strings.Builder
		escaped bool
	)
	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(fields, current.String())
}
