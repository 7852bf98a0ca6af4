// Package profile resolves the connection profile bound to the managed interface and
// drives the mutate, reactivate and report workflow on it.
package profile

import (
	"context"
	"fmt"
	"io"

	"golang-netswitch/internal/adapter/infrastructure/network"
	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"
)

// Resolver maps the interface to its active connection profile, once per session.
type Resolver struct {
	device     string
	conns      port.ConnectionManager
	networkMgr port.NetworkManager
	out        io.Writer

	resolved *types.ConnectionProfile
}

// NewResolver creates a resolver for device. networkMgr may be nil to skip the link check.
func NewResolver(device string, conns port.ConnectionManager, networkMgr port.NetworkManager, out io.Writer) *Resolver {
	return &Resolver{
		device:     device,
		conns:      conns,
		networkMgr: networkMgr,
		out:        out,
	}
}

// Resolve returns the active profile for the device. Failures are *types.FatalError.
// The first successful lookup is reused for the rest of the session.
func (r *Resolver) Resolve(ctx context.Context) (types.ConnectionProfile, error) {
	if r.resolved != nil {
		return *r.resolved, nil
	}

	logger := logging.WithComponentAndInterface("resolver", r.device)
	fmt.Fprintf(r.out, "Looking up the connection for interface '%s'...\n", r.device)

	if r.networkMgr != nil {
		if err := network.InterfaceExists(r.networkMgr, r.device); err != nil {
			fmt.Fprintf(r.out, "Interface '%s' does not exist on this system.\n", r.device)
			logger.WithError(err).Error("Interface lookup failed")
			return types.ConnectionProfile{}, &types.FatalError{
				Reason: fmt.Sprintf("interface %s not found", r.device),
				Err:    err,
			}
		}
	}

	name, err := r.conns.ActiveConnection(ctx, r.device)
	if err != nil {
		fmt.Fprintf(r.out, "Could not find an active connection for '%s'.\n", r.device)
		fmt.Fprintln(r.out, "Make sure the interface has an active connection profile.")
		logger.WithError(err).Error("Connection lookup failed")
		return types.ConnectionProfile{}, &types.FatalError{
			Reason: fmt.Sprintf("no active connection profile for %s", r.device),
			Err:    err,
		}
	}

	fmt.Fprintf(r.out, "Connection found: '%s'\n", name)
	logger.WithField("profile", name).Info("Resolved connection profile")

	r.resolved = &types.ConnectionProfile{Name: name, Device: r.device}
	return *r.resolved, nil
}
