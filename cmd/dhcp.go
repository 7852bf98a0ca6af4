package cmd

import (
	"golang-netswitch/internal/app"

	"github.com/spf13/cobra"
)

var dhcpCmd = &cobra.Command{
	Use:   "dhcp",
	Short: "Switch the interface's connection profile to DHCP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wire, _, err := newWire("dhcp", true)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		return app.NewSession(wire).ConfigureDHCP(ctx)
	},
}

func init() {
	rootCmd.AddCommand(dhcpCmd)
}
