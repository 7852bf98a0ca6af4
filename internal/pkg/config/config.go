package config

import (
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang-netswitch/internal/pkg/logging"
	"golang-netswitch/internal/pkg/subnet"
	"golang-netswitch/internal/types"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Status backends
const (
	BackendIPRoute = "iproute"
	BackendNetlink = "netlink"
)

// Config represents the main configuration structure
type Config struct {
	Logging        logging.LogConfig `yaml:"logging"`
	Interface      string            `yaml:"interface"`
	DNSServer      string            `yaml:"dns_server"`
	AllowedSubnet  string            `yaml:"allowed_subnet"`
	Target         types.Target      `yaml:"target"`
	SettleDelay    time.Duration     `yaml:"settle_delay"`
	ConnectTimeout time.Duration     `yaml:"connect_timeout"`
	DHCPTimeout    time.Duration     `yaml:"dhcp_timeout"`
	StatusBackend  string            `yaml:"status_backend"`
	ClearScreen    bool              `yaml:"clear_screen"`
	RequireRoot    bool              `yaml:"require_root"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "warn",
			Format: "simple",
			Output: "stderr",
		},
		Interface:     "enp0s3",
		DNSServer:     "192.168.56.10",
		AllowedSubnet: "192.168.56.0/24",
		Target: types.Target{
			Scheme: "http",
			Domain: "www.mysite.local",
			Port:   8080,
		},
		SettleDelay:    3 * time.Second,
		ConnectTimeout: 5 * time.Second,
		DHCPTimeout:    10 * time.Second,
		StatusBackend:  BackendIPRoute,
		ClearScreen:    true,
		RequireRoot:    true,
	}
}

// Load loads configuration from a YAML or INI file on top of the defaults.
// An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".ini", ".conf":
		if err := config.loadINI(configPath); err != nil {
			return nil, err
		}
	default:
		if err := config.loadYAML(configPath); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func (c *Config) loadYAML(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return nil
}

func (c *Config) loadINI(configPath string) error {
	if _, err := os.Stat(configPath); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	file, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, configPath)
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	section := file.Section("")
	c.Interface = section.Key("interface").MustString(c.Interface)
	c.DNSServer = section.Key("dns_server").MustString(c.DNSServer)
	c.AllowedSubnet = section.Key("allowed_subnet").MustString(c.AllowedSubnet)
	c.SettleDelay = section.Key("settle_delay").MustDuration(c.SettleDelay)
	c.ConnectTimeout = section.Key("connect_timeout").MustDuration(c.ConnectTimeout)
	c.DHCPTimeout = section.Key("dhcp_timeout").MustDuration(c.DHCPTimeout)
	c.StatusBackend = section.Key("status_backend").MustString(c.StatusBackend)
	c.ClearScreen = section.Key("clear_screen").MustBool(c.ClearScreen)
	c.RequireRoot = section.Key("require_root").MustBool(c.RequireRoot)

	logSection := file.Section("logging")
	c.Logging.Level = logSection.Key("level").MustString(c.Logging.Level)
	c.Logging.Format = logSection.Key("format").MustString(c.Logging.Format)
	c.Logging.Output = logSection.Key("output").MustString(c.Logging.Output)

	target := file.Section("target")
	c.Target.Scheme = target.Key("scheme").MustString(c.Target.Scheme)
	c.Target.Domain = target.Key("domain").MustString(c.Target.Domain)
	c.Target.Port = target.Key("port").MustInt(c.Target.Port)

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Interface == "" {
		return fmt.Errorf("interface is required")
	}

	allowed, err := netip.ParsePrefix(c.AllowedSubnet)
	if err != nil {
		return fmt.Errorf("invalid allowed_subnet %q: %w", c.AllowedSubnet, err)
	}
	if !allowed.Addr().Is4() {
		return fmt.Errorf("allowed_subnet %s: only IPv4 subnets are supported", c.AllowedSubnet)
	}
	if !allowed.Addr().IsPrivate() {
		return fmt.Errorf("allowed_subnet %s: must be a private subnet", c.AllowedSubnet)
	}
	if allowed.Bits() > 30 {
		return fmt.Errorf("allowed_subnet %s: prefix leaves no assignable host addresses", c.AllowedSubnet)
	}

	dns, err := netip.ParseAddr(c.DNSServer)
	if err != nil {
		return fmt.Errorf("invalid dns_server %q: %w", c.DNSServer, err)
	}
	if !subnet.IsAssignable(allowed, dns) {
		return fmt.Errorf("dns_server %s: must be a host address inside %s", dns, allowed.Masked())
	}

	if c.Target.Domain == "" {
		return fmt.Errorf("target domain is required")
	}
	if c.Target.Port < 1 || c.Target.Port > 65535 {
		return fmt.Errorf("target port %d: must be between 1 and 65535", c.Target.Port)
	}

	if err := validatePositive("settle_delay", c.SettleDelay); err != nil {
		return err
	}
	if err := validatePositive("connect_timeout", c.ConnectTimeout); err != nil {
		return err
	}
	if err := validatePositive("dhcp_timeout", c.DHCPTimeout); err != nil {
		return err
	}

	switch c.StatusBackend {
	case BackendIPRoute, BackendNetlink:
	default:
		return fmt.Errorf("unknown status_backend %q: must be %s or %s", c.StatusBackend, BackendIPRoute, BackendNetlink)
	}

	return nil
}

func validatePositive(name string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got %s", name, d)
	}
	return nil
}

// Settings converts a validated configuration into the immutable runtime settings
func (c *Config) Settings() (types.Settings, error) {
	if err := c.Validate(); err != nil {
		return types.Settings{}, err
	}

	scheme := c.Target.Scheme
	if scheme == "" {
		scheme = "http"
	}

	return types.Settings{
		Interface:     c.Interface,
		AllowedSubnet: netip.MustParsePrefix(c.AllowedSubnet).Masked(),
		DNSServer:     netip.MustParseAddr(c.DNSServer),
		Target: types.Target{
			Scheme: scheme,
			Domain: c.Target.Domain,
			Port:   c.Target.Port,
		},
		SettleDelay:    c.SettleDelay,
		ConnectTimeout: c.ConnectTimeout,
		DHCPTimeout:    c.DHCPTimeout,
		StatusBackend:  c.StatusBackend,
	}, nil
}
