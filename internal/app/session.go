package app

import (
	"context"
	"io"
	"net/netip"

	"golang-netswitch/internal/console"
	"golang-netswitch/internal/pkg/subnet"
	"golang-netswitch/internal/types"
)

// exampleHostOffset picks the suggested host in the manual address prompt.
const exampleHostOffset = 40

// Session exposes the menu actions. The connection profile is resolved on first use
// and reused afterwards.
type Session struct {
	wire *Wire
}

// Ensure Session implements the menu actions
var _ console.Actions = (*Session)(nil)

// NewSession creates a session over wire.
func NewSession(wire *Wire) *Session {
	return &Session{wire: wire}
}

// Resolve looks up the connection profile. Failures are *types.FatalError.
func (s *Session) Resolve(ctx context.Context) (types.ConnectionProfile, error) {
	return s.wire.Resolver.Resolve(ctx)
}

// ConfigureDHCP switches the profile to DHCP.
func (s *Session) ConfigureDHCP(ctx context.Context) error {
	p, err := s.Resolve(ctx)
	if err != nil {
		return err
	}
	return s.wire.DHCP.Apply(ctx, p)
}

// ConfigureManual assigns ip to the profile.
func (s *Session) ConfigureManual(ctx context.Context, ip string) error {
	p, err := s.Resolve(ctx)
	if err != nil {
		return err
	}
	return s.wire.Static.Apply(ctx, p, ip)
}

// AccessTarget runs the connectivity probe.
func (s *Session) AccessTarget(ctx context.Context) error {
	return s.wire.Probe.Access(ctx)
}

// ShowCurrentIP prints the live address of the interface.
func (s *Session) ShowCurrentIP(ctx context.Context) error {
	return s.wire.Reporter.Show(ctx)
}

// Menu builds the interactive menu for this session. The profile is resolved after the
// banner is shown and before the first choice is read.
func (s *Session) Menu(in io.Reader, out io.Writer, clearScreen bool) *console.Menu {
	settings := s.wire.Settings
	validator := subnet.NewValidator(settings.AllowedSubnet, settings.DNSServer, out)

	return console.NewMenu(in, out, s, validator, console.Options{
		TargetName:  settings.Target.Domain,
		ExampleIP:   ExampleIP(settings.AllowedSubnet, settings.DNSServer).String(),
		ClearScreen: clearScreen,
		Prepare: func(ctx context.Context) error {
			_, err := s.Resolve(ctx)
			return err
		},
	})
}

// ExampleIP suggests an assignable host of allowed that is not reserved.
// It prefers the host 40 addresses past the network address and falls back to lower hosts
// in small subnets.
func ExampleIP(allowed netip.Prefix, reserved netip.Addr) netip.Addr {
	allowed = allowed.Masked()
	candidate := subnet.NetworkAddress(allowed)
	best := netip.Addr{}

	for i := 0; i < exampleHostOffset; i++ {
		next := candidate.Next()
		if !next.IsValid() || !subnet.IsAssignable(allowed, next) {
			break
		}
		candidate = next
		if candidate != reserved {
			best = candidate
		}
	}

	if !best.IsValid() {
		return subnet.Gateway(allowed)
	}
	return best
}
