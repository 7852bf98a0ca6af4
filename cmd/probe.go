package cmd

import (
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Run a verbose HTTP request against the configured target",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wire, _, err := newWire("probe", false)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		return wire.Probe.Access(ctx)
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
