// Package curl provides the connectivity probe adapter implementation.
package curl

import (
	"context"
	"strconv"
	"time"

	"golang-netswitch/internal/port"
)

// ProberAdapter is an adapter that implements the Prober port by running curl.
type ProberAdapter struct {
	exec port.CommandExecutor
}

// Ensure ProberAdapter implements the Prober port
var _ port.Prober = (*ProberAdapter)(nil)

// NewProberAdapter creates a new curl prober on top of the given executor.
func NewProberAdapter(exec port.CommandExecutor) *ProberAdapter {
	return &ProberAdapter{exec: exec}
}

// Probe runs a verbose request against url. Only the connection phase is time limited.
func (p *ProberAdapter) Probe(ctx context.Context, url string, connectTimeout time.Duration) error {
	timeout := strconv.FormatFloat(connectTimeout.Seconds(), 'f', -1, 64)
	return p.exec.Run(ctx, "curl", "-v", "--connect-timeout", timeout, url)
}
