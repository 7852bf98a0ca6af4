// Package probe checks that the configured target is reachable from the current addressing.
package probe

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"
)

const separatorWidth = 40

// Manager runs the connectivity probe against the configured target.
type Manager struct {
	settings types.Settings
	prober   port.Prober
	out      io.Writer
}

// NewManager creates a probe manager.
func NewManager(settings types.Settings, prober port.Prober, out io.Writer) *Manager {
	return &Manager{
		settings: settings,
		prober:   prober,
		out:      out,
	}
}

// URL returns scheme://domain:port for the configured target. The scheme defaults to http.
func (m *Manager) URL() string {
	scheme := m.settings.Target.Scheme
	if scheme == "" {
		scheme = "http"
	}
	host := net.JoinHostPort(m.settings.Target.Domain, strconv.Itoa(m.settings.Target.Port))
	return scheme + "://" + host
}

// Access prints a banner and streams a verbose request against the target.
// The response is not interpreted; a failed request is returned as is.
func (m *Manager) Access(ctx context.Context) error {
	url := m.URL()
	separator := strings.Repeat("-", separatorWidth)

	fmt.Fprintf(m.out, "\nTrying to access: %s\n", url)
	fmt.Fprintln(m.out, separator)

	err := m.prober.Probe(ctx, url, m.settings.ConnectTimeout)

	fmt.Fprintln(m.out, separator)
	if err != nil {
		logging.WithComponentAndInterface("probe", m.settings.Interface).
			WithField("url", url).WithError(err).Warn("Connectivity probe failed")
	}
	return err
}
