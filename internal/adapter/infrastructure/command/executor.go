// Package command provides the external program executor adapter implementation.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"
)

const noErrorOutput = "no error output"

// ExecutorAdapter is an adapter that implements the CommandExecutor port using os/exec.
// Failures are reported on out before being returned.
type ExecutorAdapter struct {
	out io.Writer
}

// Ensure ExecutorAdapter implements the CommandExecutor port
var _ port.CommandExecutor = (*ExecutorAdapter)(nil)

// NewExecutorAdapter creates a new executor that streams to and reports on out.
func NewExecutorAdapter(out io.Writer) *ExecutorAdapter {
	return &ExecutorAdapter{out: out}
}

// Output runs the command and returns its trimmed stdout.
func (e *ExecutorAdapter) Output(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := e.run(cmd, name, args, &stderr, false); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Run runs the command with its output streamed to the terminal.
// Only the last stderr line is repeated in the failure report, the rest was already shown.
func (e *ExecutorAdapter) Run(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer
	out := &lockedWriter{w: e.out}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = out
	cmd.Stderr = io.MultiWriter(out, &stderr)

	return e.run(cmd, name, args, &stderr, true)
}

// lockedWriter serializes the stdout and stderr copy goroutines of exec.Cmd.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func (e *ExecutorAdapter) run(cmd *exec.Cmd, name string, args []string, stderr *bytes.Buffer, streamed bool) error {
	line := FormatCommand(name, args...)
	logger := logging.WithComponent("exec").WithField("command", line)
	logger.Debug("Running command")

	err := cmd.Run()
	if err == nil {
		return nil
	}

	// exec.Error only comes from the PATH lookup
	var lookupErr *exec.Error
	if errors.As(err, &lookupErr) {
		fmt.Fprintf(e.out, "\nError: command '%s' not found. Make sure it is installed.\n", name)
		logger.WithError(err).Warn("Command not found")
		return fmt.Errorf("%w: %s", types.ErrCommandNotFound, name)
	}

	cmdErr := &types.CommandError{
		Command:  line,
		ExitCode: -1,
		Stderr:   strings.TrimSpace(stderr.String()),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		cmdErr.ExitCode = exitErr.ExitCode()
	}

	message := cmdErr.Stderr
	if streamed {
		message = lastLine(message)
	}
	if message == "" {
		message = noErrorOutput
	}
	fmt.Fprintf(e.out, "\nError running command: '%s'\n", line)
	fmt.Fprintf(e.out, "Error message: %s\n", message)
	logger.WithError(err).WithField("exit_code", cmdErr.ExitCode).Warn("Command failed")

	return cmdErr
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

// FormatCommand renders name and args as a copy-pasteable command line.
func FormatCommand(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n'\"\\$") {
			arg = strconv.Quote(arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
