package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadPushout.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadPushout loads the game configuration and returns it with the source
// it came from (a file path, SourceEmbedded or SourceBuiltin).
// Search order: customPath -> ~/.arcade/configs/pushout.yaml -> ./configs/pushout.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A timeline given in a file replaces the default one.
func LoadPushout(customPath string) (PushoutConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultPushoutConfig(), SourceBuiltin, err
		}
		if err := cfg.Validate(); err != nil {
			return DefaultPushoutConfig(), SourceBuiltin, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("pushout.yaml"), filepath.Join("configs", "pushout.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultPushoutYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultPushoutConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (PushoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PushoutConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return PushoutConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte) (PushoutConfig, error) {
	cfg := DefaultPushoutConfig()
	cfg.Spawn.Timeline = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PushoutConfig{}, err
	}
	if cfg.Spawn.Timeline == nil {
		cfg.Spawn.Timeline = DefaultPushoutConfig().Spawn.Timeline
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
