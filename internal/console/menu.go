// Package console implements the interactive menu loop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/pkg/subnet"
	"golang-netswitch/internal/types"
)

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\033[H\033[2J"

// Actions are the operations reachable from the menu.
type Actions interface {
	ConfigureDHCP(ctx context.Context) error
	ConfigureManual(ctx context.Context, ip string) error
	AccessTarget(ctx context.Context) error
	ShowCurrentIP(ctx context.Context) error
}

// Options tune the menu rendering.
type Options struct {
	// TargetName is shown next to the probe entry
	TargetName string
	// ExampleIP is suggested in the manual address prompt
	ExampleIP   string
	ClearScreen bool
	// Prepare runs once after the banner and before the first menu; an error ends Run
	Prepare func(ctx context.Context) error
}

// Menu reads choices from in and dispatches them to the actions.
type Menu struct {
	in        *bufio.Reader
	out       io.Writer
	actions   Actions
	validator *subnet.Validator
	opts      Options
}

// NewMenu creates a menu. The validator screens manual addresses before they reach the actions.
func NewMenu(in io.Reader, out io.Writer, actions Actions, validator *subnet.Validator, opts Options) *Menu {
	return &Menu{
		in:        bufio.NewReader(in),
		out:       out,
		actions:   actions,
		validator: validator,
		opts:      opts,
	}
}

// Run shows the menu until the user exits or input ends.
// Only fatal errors, context cancellation and read failures are returned.
func (m *Menu) Run(ctx context.Context) error {
	logger := logging.WithComponent("menu")

	m.clear()
	fmt.Fprintln(m.out, "===== Network Switch =====")

	if m.opts.Prepare != nil {
		if err := m.opts.Prepare(ctx); err != nil {
			return err
		}
	}

	for {
		m.render()

		choice, err := m.prompt("\nEnter your choice [1-5]: ")
		if err != nil {
			return m.finish(err)
		}

		var actionErr error
		switch strings.TrimSpace(choice) {
		case "1":
			actionErr = m.actions.ConfigureDHCP(ctx)
		case "2":
			ip, err := m.promptIP()
			if err != nil {
				return m.finish(err)
			}
			actionErr = m.actions.ConfigureManual(ctx, ip)
		case "3":
			actionErr = m.actions.AccessTarget(ctx)
		case "4":
			actionErr = m.actions.ShowCurrentIP(ctx)
		case "5":
			fmt.Fprintln(m.out, "\nGoodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice, please try again.")
		}

		if actionErr != nil {
			if types.IsFatal(actionErr) {
				return actionErr
			}
			logger.WithError(actionErr).Debug("Action failed, returning to menu")
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := m.prompt("\nPress Enter to return to the menu..."); err != nil {
			return m.finish(err)
		}
		m.clear()
	}
}

func (m *Menu) render() {
	fmt.Fprintln(m.out, "\n----------------- MENU -----------------")
	fmt.Fprintln(m.out, "1. Automatic IP (DHCP)")
	fmt.Fprintln(m.out, "2. Manual IP configuration (static IP)")
	fmt.Fprintf(m.out, "3. Access website (%s)\n", m.opts.TargetName)
	fmt.Fprintln(m.out, "4. Show current IP configuration")
	fmt.Fprintln(m.out, "5. Exit")
}

// promptIP asks until the validator accepts the input.
func (m *Menu) promptIP() (string, error) {
	fmt.Fprintln(m.out, "\nEnter the static IP address for this client.")
	for {
		line, err := m.prompt(fmt.Sprintf("Enter IP (e.g. %s): ", m.opts.ExampleIP))
		if err != nil {
			return "", err
		}
		ip := strings.TrimSpace(line)
		if m.validator.IsValidIP(ip) {
			return ip, nil
		}
	}
}

// prompt prints label and reads one line. io.EOF is only returned when nothing was read.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)

	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out, "\nInput closed, exiting.")
		return nil
	}
	return fmt.Errorf("failed to read input: %w", err)
}

func (m *Menu) clear() {
	if m.opts.ClearScreen {
		fmt.Fprint(m.out, clearSequence)
	}
}
