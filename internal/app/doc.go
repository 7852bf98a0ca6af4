// Package app wires application dependencies for the CLI.
//
// It builds the command executor, the nmcli, ip, netlink, curl and DHCP adapters
// and the managers on top of them from types.Settings, and exposes the menu
// actions through Session.
package app
