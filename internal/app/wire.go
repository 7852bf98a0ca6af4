package app

import (
	"fmt"
	"io"

	"golang-netswitch/internal/adapter/dhcp"
	"golang-netswitch/internal/adapter/infrastructure/command"
	"golang-netswitch/internal/adapter/infrastructure/curl"
	dhcpclient "golang-netswitch/internal/adapter/infrastructure/dhcp"
	"golang-netswitch/internal/adapter/infrastructure/iproute"
	"golang-netswitch/internal/adapter/infrastructure/network"
	"golang-netswitch/internal/adapter/infrastructure/nmcli"
	"golang-netswitch/internal/adapter/probe"
	"golang-netswitch/internal/adapter/profile"
	"golang-netswitch/internal/adapter/static"
	"golang-netswitch/internal/adapter/status"
	"golang-netswitch/internal/pkg/config"
	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"
)

// Ports are the infrastructure adapters the managers run on.
type Ports struct {
	Executor    port.CommandExecutor
	Connections port.ConnectionManager
	NetworkMgr  port.NetworkManager
	DHCPClient  port.DHCPClient
	Prober      port.Prober
	Addresses   port.AddressReader
}

// Wire bundles the adapters and managers for one session.
type Wire struct {
	Settings types.Settings
	Ports    Ports

	Resolver *profile.Resolver
	Reporter *status.Reporter
	DHCP     *dhcp.Manager
	Static   *static.Manager
	Probe    *probe.Manager
}

// NewPorts builds the production adapters. Command failures and streamed
// command output are written to out.
func NewPorts(settings types.Settings, out io.Writer) (Ports, error) {
	executor := command.NewExecutorAdapter(out)
	networkMgr := network.NewManagerAdapter()

	var addresses port.AddressReader
	switch settings.StatusBackend {
	case config.BackendIPRoute, "":
		addresses = iproute.NewReaderAdapter(executor)
	case config.BackendNetlink:
		addresses = network.NewReaderAdapter(networkMgr)
	default:
		return Ports{}, fmt.Errorf("unknown status backend: %s", settings.StatusBackend)
	}

	return Ports{
		Executor:    executor,
		Connections: nmcli.NewClientAdapter(executor),
		NetworkMgr:  networkMgr,
		DHCPClient:  dhcpclient.NewClientAdapter(),
		Prober:      curl.NewProberAdapter(executor),
		Addresses:   addresses,
	}, nil
}

// NewWire constructs the managers from settings on top of ports.
func NewWire(settings types.Settings, ports Ports, out io.Writer) *Wire {
	reporter := status.NewReporter(settings.Interface, ports.Addresses, out)
	workflow := profile.NewWorkflow(ports.Connections, reporter, settings.SettleDelay, out)

	return &Wire{
		Settings: settings,
		Ports:    ports,
		Resolver: profile.NewResolver(settings.Interface, ports.Connections, ports.NetworkMgr, out),
		Reporter: reporter,
		DHCP:     dhcp.NewManager(settings, ports.Connections, workflow, ports.DHCPClient, out),
		Static:   static.NewManager(settings, ports.Connections, workflow, out),
		Probe:    probe.NewManager(settings, ports.Prober, out),
	}
}
