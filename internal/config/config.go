// Package config loads the editor settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xyproto/ted/internal/log"
)

// Config holds the editor settings.
type Config struct {
	TabStop        int           `yaml:"tab_stop"`
	QuitTimes      int           `yaml:"quit_times"`
	StatusDuration time.Duration `yaml:"status_duration"`
	LogFile        string        `yaml:"log_file"`
	LogLevel       string        `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TabStop:        8,
		QuitTimes:      3,
		StatusDuration: 5 * time.Second,
		LogLevel:       "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/ted/config.yaml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "ted", "config.yaml"), nil
}

// Load reads the file at path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.TabStop < 1 || c.TabStop > 32 {
		return fmt.Errorf("tab_stop must be between 1 and 32, got %d", c.TabStop)
	}
	if c.QuitTimes < 1 {
		return fmt.Errorf("quit_times must be at least 1, got %d", c.QuitTimes)
	}
	if c.StatusDuration <= 0 {
		return fmt.Errorf("status_duration must be positive, got %s", c.StatusDuration)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
