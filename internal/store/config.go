package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cerrors "cloudeng.io/errors"
	"gopkg.in/yaml.v3"

	"showdate-cli/internal/calendar"
)

// Config is the global user config (~/.showdate/config.json or config.yaml).
// Every field is optional; flags and SHOWDATE_* env vars take precedence.
type Config struct {
	// Policy is the default selection policy: past|future|both.
	Policy string `json:"policy,omitempty" yaml:"policy,omitempty"`
	// Format is the default output format for scriptable commands: json|edn.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	TUI *TUIConfig `json:"tui,omitempty" yaml:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme is auto|light|dark.
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"`
	// Glyphs selects the glyph set: unicode|ascii.
	Glyphs string `json:"glyphs,omitempty" yaml:"glyphs,omitempty"`
}

const (
	configJSON = "config.json"
	configYAML = "config.yaml"
)

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.showdate).
	if v := strings.TrimSpace(os.Getenv("SHOWDATE_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".showdate"), nil
}

// ConfigPath is where SaveConfig writes. LoadConfig also reads config.yaml
// when config.json is absent.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configJSON), nil
}

// LoadConfig returns an empty Config when no config file exists.
func LoadConfig() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	var cfg Config
	b, err := os.ReadFile(filepath.Join(dir, configJSON))
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", configJSON, err)
		}
	case errors.Is(err, os.ErrNotExist):
		b, err = os.ReadFile(filepath.Join(dir, configYAML))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return &Config{}, nil
			}
			return nil, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", configYAML, err)
		}
	default:
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	errs := &cerrors.M{}
	if strings.TrimSpace(c.Policy) != "" {
		if _, err := calendar.ParsePolicy(c.Policy); err != nil {
			errs.Append(fmt.Errorf("policy: %w", err))
		}
	}
	switch strings.TrimSpace(c.Format) {
	case "", "json", "edn":
	default:
		errs.Append(fmt.Errorf("format: unknown format %q (expected json|edn)", c.Format))
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "error":
	default:
		errs.Append(fmt.Errorf("logLevel: unknown level %q", c.LogLevel))
	}
	if c.TUI != nil {
		switch strings.ToLower(strings.TrimSpace(c.TUI.Theme)) {
		case "", "auto", "light", "dark":
		default:
			errs.Append(fmt.Errorf("tui.theme: unknown theme %q (expected auto|light|dark)", c.TUI.Theme))
		}
		switch strings.ToLower(strings.TrimSpace(c.TUI.Glyphs)) {
		case "", "unicode", "ascii":
		default:
			errs.Append(fmt.Errorf("tui.glyphs: unknown glyph set %q (expected unicode|ascii)", c.TUI.Glyphs))
		}
	}
	return errs.Err()
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// SaveConfig validates cfg and writes it as JSON.
func SaveConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	// Concurrent CLI and TUI processes may write at once.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
