package profile

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"
)

// Change describes the mutate phase of a configuration run.
type Change struct {
	// Name is a short label for logs, e.g. "dhcp"
	Name string
	// Apply mutates the named profile
	Apply func(ctx context.Context, profile string) error
	// Applied and Failed are printed after Apply succeeds or fails
	Applied string
	Failed  string
}

// Workflow applies a change to a profile, reactivates it and reports the live address.
// Each phase only runs when the previous one succeeded. Nothing is rolled back.
type Workflow struct {
	conns       port.ConnectionManager
	reporter    port.StatusReporter
	settleDelay time.Duration
	out         io.Writer
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewWorkflow creates a workflow that waits settleDelay after a successful reactivation.
func NewWorkflow(conns port.ConnectionManager, reporter port.StatusReporter, settleDelay time.Duration, out io.Writer) *Workflow {
	return &Workflow{
		conns:       conns,
		reporter:    reporter,
		settleDelay: settleDelay,
		out:         out,
		sleep:       sleepContext,
	}
}

// Run executes change against profile. Failures are returned as *types.PhaseError.
func (w *Workflow) Run(ctx context.Context, profile types.ConnectionProfile, change Change) error {
	logger := logging.WithComponentAndInterface(change.Name, profile.Device).WithField("profile", profile.Name)

	if err := change.Apply(ctx, profile.Name); err != nil {
		fmt.Fprintln(w.out, change.Failed)
		logger.WithError(err).Error("Failed to modify connection profile")
		return &types.PhaseError{Phase: types.PhaseMutate, Err: err}
	}
	fmt.Fprintln(w.out, change.Applied)
	logger.Info("Connection profile modified")

	if err := w.Reactivate(ctx, profile); err != nil {
		return &types.PhaseError{Phase: types.PhaseReactivate, Err: err}
	}

	if err := w.reporter.Show(ctx); err != nil {
		logger.WithError(err).Warn("Could not report the live address")
		return &types.PhaseError{Phase: types.PhaseReport, Err: err}
	}
	return nil
}

// Reactivate brings profile down, then up, then waits for the network to settle.
func (w *Workflow) Reactivate(ctx context.Context, profile types.ConnectionProfile) error {
	logger := logging.WithComponentAndInterface("reactivate", profile.Device).WithField("profile", profile.Name)
	fmt.Fprintln(w.out, "Reactivating the connection to apply the changes...")

	if err := w.conns.Down(ctx, profile.Name); err != nil {
		fmt.Fprintln(w.out, "Failed to reactivate the network.")
		logger.WithError(err).Error("Failed to bring connection down")
		return err
	}

	if err := w.conns.Up(ctx, profile.Name); err != nil {
		fmt.Fprintln(w.out, "Failed to reactivate the network.")
		logger.WithError(err).Error("Failed to bring connection up")
		return err
	}

	fmt.Fprintln(w.out, "Network reactivated successfully.")
	logger.WithField("settle_delay", w.settleDelay.String()).Debug("Waiting for the network to settle")

	return w.sleep(ctx, w.settleDelay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
