package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configFlag    string
	interfaceFlag string
)

var rootCmd = &cobra.Command{
	Use:   "netswitch",
	Short: "netswitch switches a lab interface between DHCP and a static address",
	Long: `netswitch drives NetworkManager (nmcli) to move one interface between DHCP
and a manually assigned address inside an allowed subnet, shows the live
address and probes a target host. Without a subcommand it starts the
interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML or INI); built-in defaults when empty")
	rootCmd.PersistentFlags().StringVarP(&interfaceFlag, "interface", "i", "", "Interface to manage, overrides the config file")
}
