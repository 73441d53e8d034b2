package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"ipmanager/internal/pkg/logging"
	"ipmanager/internal/pkg/netsh"

	"gopkg.in/yaml.v3"
)

// StoreConfig represents job store configuration
type StoreConfig struct {
	Path string `yaml:"path"`
}

// NetshConfig represents the settings used when applying a job
type NetshConfig struct {
	Binary        string        `yaml:"binary"`
	Netmask       string        `yaml:"netmask"`
	Gateway       string        `yaml:"gateway"`
	GatewayPolicy string        `yaml:"gateway_policy"`
	Timeout       time.Duration `yaml:"timeout"` // 0 waits forever
}

// DHCPConfig represents DHCP probe configuration
type DHCPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Store   StoreConfig       `yaml:"store"`
	Netsh   NetshConfig       `yaml:"netsh"`
	DHCP    DHCPConfig        `yaml:"dhcp"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "warn",
			Format: "simple",
		},
		Store: StoreConfig{
			Path: "jobs.json",
		},
		Netsh: NetshConfig{
			Binary:        netsh.DefaultBinary,
			Netmask:       netsh.DefaultNetmask,
			Gateway:       netsh.DefaultGateway,
			GatewayPolicy: string(netsh.GatewayPerAddress),
		},
		DHCP: DHCPConfig{
			Timeout: 5 * time.Second,
			Retries: 3,
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults.
// An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// GatewayPolicy returns the parsed gateway policy
func (c *Config) GatewayPolicy() netsh.GatewayPolicy {
	policy, err := netsh.ParseGatewayPolicy(c.Netsh.GatewayPolicy)
	if err != nil {
		return netsh.GatewayPerAddress
	}
	return policy
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store path is required")
	}

	if c.Netsh.Binary == "" {
		return fmt.Errorf("netsh binary is required")
	}
	if err := validateNetmask(c.Netsh.Netmask); err != nil {
		return err
	}
	if c.Netsh.Gateway != "" && net.ParseIP(c.Netsh.Gateway).To4() == nil {
		return fmt.Errorf("netsh gateway %q is not an IPv4 address", c.Netsh.Gateway)
	}
	if _, err := netsh.ParseGatewayPolicy(c.Netsh.GatewayPolicy); err != nil {
		return fmt.Errorf("netsh: %w", err)
	}
	if c.Netsh.Timeout < 0 {
		return fmt.Errorf("netsh timeout cannot be negative")
	}

	if c.DHCP.Timeout <= 0 {
		return fmt.Errorf("dhcp timeout must be positive")
	}
	if c.DHCP.Retries < 1 {
		return fmt.Errorf("dhcp retries must be at least 1")
	}

	return nil
}

func validateNetmask(mask string) error {
	if mask == "" {
		return fmt.Errorf("netsh netmask is required")
	}
	ip := net.ParseIP(mask).To4()
	if ip == nil {
		return fmt.Errorf("netsh netmask %q is not an IPv4 mask", mask)
	}
	if ones, bits := net.IPMask(ip).Size(); ones == 0 && bits == 0 {
		return fmt.Errorf("netsh netmask %q is not contiguous", mask)
	}
	return nil
}
