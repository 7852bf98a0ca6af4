package cmd

import (
	"golang-netswitch/internal/app"

	"github.com/spf13/cobra"
)

var staticCmd = &cobra.Command{
	Use:     "static <ip>",
	Short:   "Assign a static address inside the allowed subnet",
	Example: "  netswitch static 192.168.56.40",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wire, _, err := newWire("static", true)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		return app.NewSession(wire).ConfigureManual(ctx, args[0])
	},
}

func init() {
	rootCmd.AddCommand(staticCmd)
}
