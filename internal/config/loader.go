package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const shooterFile = "shooter.yaml"

// LoadShooter loads the shooter configuration and validates it.
// Search order: customPath -> ~/.bullethell/configs/shooter.yaml ->
// ./configs/shooter.yaml -> embedded default.
// Only a customPath that cannot be read or parsed is an error; other
// candidates are skipped when unusable.
func LoadShooter(customPath string) (ShooterConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", shooterFile)}
	if userPath := UserShooterPath(); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultShooterYAML); err == nil {
		return cfg, nil
	}
	return DefaultShooterConfig(), nil
}

// Parse decodes a YAML document on top of the built-in defaults, so partial
// documents only override the fields they name, and validates the result.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// UserShooterPath returns ~/.bullethell/configs/shooter.yaml, or "" when the
// home directory is unknown.
func UserShooterPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bullethell", "configs", shooterFile)
}

// WriteDefault writes the embedded default document to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		return errors.New("config: no path to write to")
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, defaultShooterYAML, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

// Marshal encodes cfg as a YAML document.
func (c ShooterConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
