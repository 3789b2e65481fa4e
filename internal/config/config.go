package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/emmett/unstick/internal/input/combo"
	"github.com/emmett/unstick/internal/modifiers"
)

// SystemConfigPath is the last config location tried
var SystemConfigPath = "/etc/unstick/config.yaml"

// Config represents the application configuration
type Config struct {
	// Release settings
	Release struct {
		Backends    []string `yaml:"backends"`
		WtypePath   string   `yaml:"wtype_path"`
		YdotoolPath string   `yaml:"ydotool_path"`
	} `yaml:"release"`

	// Hotkey settings for listen mode
	Hotkey struct {
		Combo string `yaml:"combo"`
	} `yaml:"hotkey"`

	// Server settings for gRPC mode
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	// Logging settings
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Release.Backends = []string{modifiers.Wtype, modifiers.Ydotool}

	cfg.Hotkey.Combo = "ctrl+shift+u"

	cfg.Server.Host = "localhost"
	cfg.Server.Port = 50051

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"

	return cfg
}

// Validate checks values that cannot be caught by YAML decoding
func (c *Config) Validate() error {
	if len(c.Release.Backends) == 0 {
		return fmt.Errorf("release.backends must name at least one backend")
	}
	seen := make(map[string]bool)
	for _, name := range c.Release.Backends {
		if _, err := modifiers.BackendByName(name); err != nil {
			return fmt.Errorf("release.backends: %w", err)
		}
		if seen[name] {
			return fmt.Errorf("release.backends: duplicate backend: %s", name)
		}
		seen[name] = true
	}
	if c.Hotkey.Combo != "" {
		if _, err := combo.Parse(c.Hotkey.Combo); err != nil {
			return fmt.Errorf("hotkey.combo: %w", err)
		}
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// Backends resolves the configured backend names, in order, with any
// executable path overrides applied
func (c *Config) Backends() ([]modifiers.Backend, error) {
	backends := make([]modifiers.Backend, 0, len(c.Release.Backends))
	for _, name := range c.Release.Backends {
		b, err := modifiers.BackendByName(name)
		if err != nil {
			return nil, err
		}
		switch name {
		case modifiers.Wtype:
			b = b.WithCommand(c.Release.WtypePath)
		case modifiers.Ydotool:
			b = b.WithCommand(c.Release.YdotoolPath)
		}
		backends = append(backends, b)
	}
	return backends, nil
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadWithFallback attempts to load configuration from multiple locations
// Priority: explicit path > ~/.unstickrc > /etc/unstick/config.yaml
func LoadWithFallback(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(homeDir, ".unstickrc")
		if _, err := os.Stat(userConfigPath); err == nil {
			return Load(userConfigPath)
		}
	}

	if _, err := os.Stat(SystemConfigPath); err == nil {
		return Load(SystemConfigPath)
	}

	// No config file found, return defaults
	return DefaultConfig(), nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
