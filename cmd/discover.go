package cmd

import (
	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Look for a DHCP server on the interface without taking a lease",
	Long: `discover broadcasts a single DHCP DISCOVER on the interface and prints the
first OFFER. No REQUEST is sent, so the server does not commit a lease and the
interface configuration is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wire, _, err := newWire("discover", true)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		_, err = wire.DHCP.Discover(ctx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
