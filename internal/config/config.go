// Package config handles global ilk configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/interlink/interlink"
	"github.com/aidanlsb/interlink/internal/logging"
)

// Config represents the global ilk configuration.
type Config struct {
	// LogLevel is one of debug, info, warn (or warning), error. Defaults to info.
	LogLevel string `toml:"log_level"`

	// Markers overrides the characters that open and close an interlink.
	Markers MarkersConfig `toml:"markers"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// MarkersConfig holds the marker pair. Empty values fall back to "[" and "]".
type MarkersConfig struct {
	Opening string `toml:"opening"`
	Closing string `toml:"closing"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for highlighted keywords.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// GetMarkers returns the configured marker pair with defaults filled in.
func (c *Config) GetMarkers() interlink.Markers {
	m := interlink.DefaultMarkers
	if c == nil {
		return m
	}
	if c.Markers.Opening != "" {
		m.Opening = c.Markers.Opening
	}
	if c.Markers.Closing != "" {
		m.Closing = c.Markers.Closing
	}
	return m
}

// GetLogLevel returns the configured log level, defaulting to info.
func (c *Config) GetLogLevel() string {
	if c == nil || strings.TrimSpace(c.LogLevel) == "" {
		return "info"
	}
	return strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	if err := c.GetMarkers().Validate(); err != nil {
		return fmt.Errorf("[markers]: %w", err)
	}
	if _, err := logging.ParseLevel(c.GetLogLevel()); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath returns the explicit path if set, otherwise the default.
func ResolveConfigPath(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/interlink/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "interlink", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "interlink", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

const defaultConfig = `# ilk configuration

# Log level for diagnostics on stderr: debug, info, warn, error
# log_level = "info"

# Characters that open and close an interlink keyword.
# Each must be a single character, and the two must differ.
# [markers]
# opening = "["
# closing = "]"

# Optional accent color for highlighted keywords.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "#A78BFA"
`

// CreateDefault writes a commented default config at path if none exists.
func CreateDefault(path string) (string, error) {
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil {
		return path, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := writeFileAtomic(path, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
