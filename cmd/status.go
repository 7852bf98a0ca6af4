package cmd

import (
	"golang-netswitch/internal/pkg/config"

	"github.com/spf13/cobra"
)

var backendFlag string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the IPv4 address assigned to the interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wire, _, err := newWire("status", false, func(cfg *config.Config) {
			if backendFlag != "" {
				cfg.StatusBackend = backendFlag
			}
		})
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		return wire.Reporter.Show(ctx)
	},
}

func init() {
	statusCmd.Flags().StringVar(&backendFlag, "backend", "", "Address source: iproute or netlink (default from config)")
	rootCmd.AddCommand(statusCmd)
}
