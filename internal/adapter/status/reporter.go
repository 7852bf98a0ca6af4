// Package status reports the live IPv4 assignment of the managed interface.
package status

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"
)

// Reporter prints the first IPv4 address of an interface.
type Reporter struct {
	iface  string
	reader port.AddressReader
	out    io.Writer
}

// Ensure Reporter implements the StatusReporter port
var _ port.StatusReporter = (*Reporter)(nil)

// NewReporter creates a reporter for iface.
func NewReporter(iface string, reader port.AddressReader, out io.Writer) *Reporter {
	return &Reporter{
		iface:  iface,
		reader: reader,
		out:    out,
	}
}

// Show prints address/prefix, or that none is configured. Query and parse failures
// are printed with distinct messages and returned.
func (r *Reporter) Show(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("status", r.iface)
	fmt.Fprintf(r.out, "\nChecking the IP address of '%s'...\n", r.iface)

	state, err := r.reader.ReadIPv4(ctx, r.iface)
	switch {
	case errors.Is(err, types.ErrParseFailed):
		fmt.Fprintf(r.out, "Failed to parse the IP address output for '%s'.\n", r.iface)
		logger.WithError(err).Warn("Unparseable address query output")
		return err
	case err != nil:
		fmt.Fprintf(r.out, "Failed to get IP information for '%s'.\n", r.iface)
		logger.WithError(err).Warn("Address query failed")
		return err
	}

	primary, ok := state.Primary()
	if !ok {
		fmt.Fprintf(r.out, "No IPv4 address configured on '%s'.\n", r.iface)
		return nil
	}

	fmt.Fprintf(r.out, "Assigned IP address: %s\n", primary)
	logger.WithField("address", primary.String()).Debug("Reported live address")
	return nil
}
