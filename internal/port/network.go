// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"time"

	"golang-netswitch/internal/types"
)

//go:generate mockgen -source=network.go -destination=../mock/mock_network.go -package=mock

// ConnectionManager is the port for the OS network manager.
// Implementations operate on named connection profiles, never on the live interface directly.
type ConnectionManager interface {
	// ActiveConnection returns the name of the active profile bound to the device
	ActiveConnection(ctx context.Context, device string) (string, error)

	// ConfigureDHCP clears static address, gateway and DNS fields and switches the profile to auto
	ConfigureDHCP(ctx context.Context, profile string) error

	// ConfigureStatic switches the profile to manual with the given address, gateway and DNS
	ConfigureStatic(ctx context.Context, profile string, config types.StaticIPConfig) error

	// Down deactivates the profile
	Down(ctx context.Context, profile string) error

	// Up activates the profile
	Up(ctx context.Context, profile string) error
}

// AddressReader is the port for observing the live IPv4 state of an interface.
// Failures wrap types.ErrQueryFailed or types.ErrParseFailed.
type AddressReader interface {
	ReadIPv4(ctx context.Context, interfaceName string) (types.InterfaceState, error)
}

// StatusReporter prints the current IPv4 assignment of the managed interface.
type StatusReporter interface {
	Show(ctx context.Context) error
}

// Prober is the port for the HTTP connectivity check.
type Prober interface {
	// Probe requests url with verbose output streamed to the terminal
	Probe(ctx context.Context, url string, connectTimeout time.Duration) error
}
