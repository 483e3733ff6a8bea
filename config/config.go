// Package config loads optional defaults for the geckoasm CLI from a TOML
// file, overridable by command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults geckoasm falls back to when a flag isn't
// given explicitly on the command line.
type Config struct {
	Output struct {
		Format string `toml:"format"` // dolphin, gct, ocarina, raw, rawtext
	} `toml:"output"`

	ABI struct {
		Preset string `toml:"preset"` // primitive, codehandler
	} `toml:"abi"`

	Code struct {
		Author string `toml:"author"`
	} `toml:"code"`
}

// DefaultConfig returns geckoasm's built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Output.Format = "gct"
	cfg.ABI.Preset = "primitive"
	cfg.Code.Author = "unknown"

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "geckoasm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "geckoasm.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "geckoasm")

	default:
		return "geckoasm.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "geckoasm.toml"
	}

	return filepath.Join(configDir, "geckoasm.toml")
}

// Load loads configuration from the default config file, falling back to
// DefaultConfig if nothing is found on disk.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the given path, falling back to
// DefaultConfig if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the given path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
