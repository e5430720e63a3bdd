// Package config handles configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Device    DeviceConfig    `mapstructure:"device"`
	Input     InputConfig     `mapstructure:"input"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DeviceConfig describes how the target device is reached and which
// build/vendor facts should be forced instead of read from it.
type DeviceConfig struct {
	Serial       string `mapstructure:"serial"`        // adb serial; empty runs commands locally
	ADBPath      string `mapstructure:"adb_path"`      // adb executable
	ShellTimeout int    `mapstructure:"shell_timeout"` // seconds per shell command

	SDK   int    `mapstructure:"sdk"`   // 0 reads ro.build.version.sdk
	Brand string `mapstructure:"brand"` // empty reads ro.product.brand

	// Capability probes the shell cannot discover by itself.
	BuiltInDisplayMethod     bool `mapstructure:"builtin_display_method"`
	SurfacePhysicalIDsMethod bool `mapstructure:"surface_physical_ids_method"`

	// The per-display power request of newer releases turns panels off
	// unreliably; keep it opt-in.
	UseRequestDisplayPower bool `mapstructure:"use_request_display_power"`
}

// InputConfig selects the injection backend
type InputConfig struct {
	Backend    string `mapstructure:"backend"` // auto, uinput, shell
	UInputPath string `mapstructure:"uinput_path"`
	DeviceName string `mapstructure:"device_name"`
}

// ClipboardConfig toggles the host clipboard binding
type ClipboardConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Device: DeviceConfig{
			Serial:       "",
			ADBPath:      "adb",
			ShellTimeout: 10,
		},
		Input: InputConfig{
			Backend:    "auto",
			UInputPath: "/dev/uinput",
			DeviceName: "droidctl virtual keyboard",
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("droidctl")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "droidctl"))
		}
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("DROIDCTL")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// An explicit --config path may not exist until "config init" writes it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	return nil
}

func setDefaults() {
	viper.SetDefault("device.serial", DefaultConfig.Device.Serial)
	viper.SetDefault("device.adb_path", DefaultConfig.Device.ADBPath)
	viper.SetDefault("device.shell_timeout", DefaultConfig.Device.ShellTimeout)
	viper.SetDefault("device.sdk", DefaultConfig.Device.SDK)
	viper.SetDefault("device.brand", DefaultConfig.Device.Brand)
	viper.SetDefault("device.builtin_display_method", DefaultConfig.Device.BuiltInDisplayMethod)
	viper.SetDefault("device.surface_physical_ids_method", DefaultConfig.Device.SurfacePhysicalIDsMethod)
	viper.SetDefault("device.use_request_display_power", DefaultConfig.Device.UseRequestDisplayPower)

	viper.SetDefault("input.backend", DefaultConfig.Input.Backend)
	viper.SetDefault("input.uinput_path", DefaultConfig.Input.UInputPath)
	viper.SetDefault("input.device_name", DefaultConfig.Input.DeviceName)

	viper.SetDefault("clipboard.enabled", DefaultConfig.Clipboard.Enabled)

	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)
}

// Validate rejects values the platform layer cannot act on
func (c *Config) Validate() error {
	switch c.Input.Backend {
	case "auto", "uinput", "shell":
	default:
		return fmt.Errorf("invalid input backend %q (must be auto, uinput or shell)", c.Input.Backend)
	}
	if c.Device.ShellTimeout < 0 {
		return fmt.Errorf("shell_timeout must not be negative, got %d", c.Device.ShellTimeout)
	}
	if c.Device.SDK < 0 {
		return fmt.Errorf("sdk must not be negative, got %d", c.Device.SDK)
	}
	return nil
}

// ShellTimeoutDuration returns the per-command timeout; zero disables it.
func (d DeviceConfig) ShellTimeoutDuration() time.Duration {
	return time.Duration(d.ShellTimeout) * time.Second
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Save writes the current settings to the config file
func Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}

	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "droidctl.toml"
	}

	return filepath.Join(home, ".config", "droidctl", "droidctl.toml")
}
