package types

import (
	"errors"
	"fmt"
)

var (
	// ErrCommandNotFound is returned when the program to execute is not installed.
	ErrCommandNotFound = errors.New("command not found")

	// ErrNoActiveConnection is returned when no active profile is bound to the interface.
	ErrNoActiveConnection = errors.New("no active connection")

	// ErrQueryFailed is returned when the interface state could not be queried.
	ErrQueryFailed = errors.New("interface query failed")

	// ErrParseFailed is returned when the interface state query output cannot be interpreted.
	ErrParseFailed = errors.New("interface query output could not be parsed")
)

// CommandError describes an external command that exited with a nonzero status.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command %q exited with status %d: %s", e.Command, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Phase names a step of the configuration workflow.
type Phase string

const (
	PhaseMutate     Phase = "mutate"
	PhaseReactivate Phase = "reactivate"
	PhaseReport     Phase = "report"
)

// PhaseError is returned when a configuration workflow aborts at a given phase.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase failed: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// FatalError marks a precondition failure the process cannot continue from.
// Only the entry point decides how to exit on it.
type FatalError struct {
	Reason string
	Err    error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err carries a FatalError.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}
