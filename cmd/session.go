package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang-netswitch/internal/app"
	"golang-netswitch/internal/pkg/config"
	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/types"
)

// geteuid is replaced in tests.
var geteuid = os.Geteuid

// loadConfig loads the config file, applies flag overrides, validates the result and
// initializes logging.
func loadConfig(overrides ...func(*config.Config)) (*config.Config, types.Settings, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, types.Settings{}, fmt.Errorf("config error: %w", err)
	}

	if interfaceFlag != "" {
		cfg.Interface = interfaceFlag
	}
	for _, override := range overrides {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, types.Settings{}, fmt.Errorf("config validation error: %w", err)
	}

	logging.InitLogger(cfg.Logging)

	settings, err := cfg.Settings()
	if err != nil {
		return nil, types.Settings{}, fmt.Errorf("config error: %w", err)
	}

	logging.GetLogger().WithFields(map[string]interface{}{
		"config_file": configFlag,
		"interface":   settings.Interface,
		"subnet":      settings.AllowedSubnet.String(),
	}).Debug("Configuration loaded")

	return cfg, settings, nil
}

// checkPrivileges fails with a *types.FatalError when root is required and missing.
func checkPrivileges(cfg *config.Config, command string) error {
	if !cfg.RequireRoot || geteuid() == 0 {
		return nil
	}

	fmt.Fprintln(os.Stderr, "Error: this program must be run as root.")
	fmt.Fprintf(os.Stderr, "use: sudo netswitch %s\n", command)
	return &types.FatalError{Reason: "root privileges required"}
}

// newWire loads the configuration and builds the production dependency graph.
func newWire(command string, needsRoot bool, overrides ...func(*config.Config)) (*app.Wire, *config.Config, error) {
	cfg, settings, err := loadConfig(overrides...)
	if err != nil {
		return nil, nil, err
	}

	if needsRoot {
		if err := checkPrivileges(cfg, command); err != nil {
			return nil, nil, err
		}
	}

	ports, err := app.NewPorts(settings, os.Stdout)
	if err != nil {
		return nil, nil, err
	}

	return app.NewWire(settings, ports, os.Stdout), cfg, nil
}

// signalContext cancels on SIGINT or SIGTERM, which kills a running child process
// and aborts the settle wait.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
