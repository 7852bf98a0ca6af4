package cmd

import (
	"os"

	"golang-netswitch/internal/app"
	"golang-netswitch/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu (default)",
	RunE:  runMenu,
}

// runMenu starts the menu, which resolves the connection profile before the first choice.
// The menu leaves SIGINT alone so Ctrl-C ends the program while it waits for input.
func runMenu(cmd *cobra.Command, args []string) error {
	wire, cfg, err := newWire("menu", true)
	if err != nil {
		return err
	}

	logging.WithComponentAndInterface("menu", wire.Settings.Interface).Info("Starting interactive menu")
	return app.NewSession(wire).Menu(os.Stdin, os.Stdout, cfg.ClearScreen).Run(cmd.Context())
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
