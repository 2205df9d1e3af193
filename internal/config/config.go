package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	mnerrors "github.com/tessro/mocnotify/internal/errors"
	"gopkg.in/yaml.v2"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.mocnotifyrc, $XDG_CONFIG_HOME/mocnotify/config.{toml,yaml,yml}
func Load() (*Config, error) {
	cfg := &Config{}

	if path := findConfigFile(); path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", mnerrors.ErrConfigNotFound, path)
	}

	cfg := &Config{}
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// decodeFile picks a decoder from the file extension. Anything that is not
// YAML is read as TOML. Both reject keys the schema does not know.
func decodeFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return fmt.Errorf("%w: %s: unknown keys: %s",
				mnerrors.ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}
	return nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".mocnotifyrc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		paths = append(paths, filepath.Join(xdgConfig, "mocnotify", name))
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// Path returns the config file Load would read, or "" if there is none.
func Path() string {
	return findConfigFile()
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Player
	if v := os.Getenv("MOCNOTIFY_BACKEND"); v != "" {
		cfg.Player.Backend = v
	}
	if v := os.Getenv("MOCNOTIFY_COMMAND"); v != "" {
		cfg.Player.Command = strings.Fields(v)
	}
	if v := os.Getenv("MOCNOTIFY_MPD_ADDRESS"); v != "" {
		cfg.Player.MPDAddress = v
	}
	if v := os.Getenv("MOCNOTIFY_MPD_PASSWORD"); v != "" {
		cfg.Player.MPDPassword = v
	}
	if v := os.Getenv("MOCNOTIFY_MPRIS_PLAYER"); v != "" {
		cfg.Player.MPRISPlayer = v
	}

	// Poll
	if v := os.Getenv("MOCNOTIFY_POLL_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Poll.IntervalMS = i
		}
	}

	// Notify
	if v := os.Getenv("MOCNOTIFY_ICON"); v != "" {
		cfg.Notify.Icon = v
	}

	// Log
	if v := os.Getenv("MOCNOTIFY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MOCNOTIFY_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
