// Package config loads the console's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"leadconsole/internal/importdir"
	"leadconsole/internal/roster"
)

// Environment overrides.
const (
	LogFileEnv      = "LEADCONSOLE_LOG_FILE"
	DebugEnv        = "LEADCONSOLE_DEBUG"
	OTLPEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ServiceNameEnv  = "OTEL_SERVICE_NAME"
)

// Config holds all leadconsole configuration.
type Config struct {
	// Directory CSV names are resolved against and listed from.
	ImportDir string `yaml:"import_dir"`

	// Starting value of the quantity stepper.
	DefaultQuantity int `yaml:"default_quantity"`

	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Seed roster. Empty means roster.DefaultSeed().
	Users []UserConfig `yaml:"users"`
}

// LogConfig configures the zap file logger.
type LogConfig struct {
	File     string `yaml:"file"`
	Debug    bool   `yaml:"debug"`
	Disabled bool   `yaml:"disabled"`
}

// TelemetryConfig configures OTLP span export. An empty Endpoint disables it.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// UserConfig is one seed user as written in the file.
type UserConfig struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
	Tier  string `yaml:"tier"` // master | standard (padrao)
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultQuantity: 10,
		Log: LogConfig{
			File: DefaultLogFile(),
		},
		Telemetry: TelemetryConfig{
			ServiceName: "leadconsole",
			Insecure:    true,
		},
	}
}

// DefaultPath is where the config file is looked up when no --config is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "leadconsole.yaml"
	}
	return filepath.Join(dir, "leadconsole", "config.yaml")
}

// DefaultLogFile is the log destination when none is configured. The TUI owns
// the terminal, so logs always go to a file.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "leadconsole.log")
	}
	return filepath.Join(dir, "leadconsole", "leadconsole.log")
}

// Load reads configuration from a YAML file. A missing file yields defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(importdir.DirEnv); dir != "" {
		c.ImportDir = dir
	}
	if file := os.Getenv(LogFileEnv); file != "" {
		c.Log.File = file
	}
	if v := os.Getenv(DebugEnv); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = debug
		}
	}
	if endpoint := os.Getenv(OTLPEndpointEnv); endpoint != "" {
		c.Telemetry.Endpoint = endpoint
	}
	if name := os.Getenv(ServiceNameEnv); name != "" {
		c.Telemetry.ServiceName = name
	}
}

// Validate checks the values Load cannot default.
func (c *Config) Validate() error {
	if c.DefaultQuantity < 1 {
		return fmt.Errorf("default_quantity must be at least 1, got %d", c.DefaultQuantity)
	}
	if _, err := roster.New(c.Seed()); err != nil {
		return fmt.Errorf("users: %w", err)
	}
	return nil
}

// Seed returns the configured roster, or roster.DefaultSeed() when none is set.
func (c *Config) Seed() []roster.User {
	if len(c.Users) == 0 {
		return roster.DefaultSeed()
	}
	users := make([]roster.User, len(c.Users))
	for i, u := range c.Users {
		users[i] = roster.User{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Phone: u.Phone,
			Tier:  roster.ParseTier(u.Tier),
		}
	}
	return users
}
