// Package config loads bleadv settings from an optional YAML file on top of
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mcuadros/go-defaults"
	"github.com/sirupsen/logrus"
	"github.com/srg/bleadv/pkg/scan"
	"gopkg.in/yaml.v3"
)

// OutputFormats lists the accepted output_format values.
var OutputFormats = []string{"table", "json", "yaml"}

// Config holds application configuration
type Config struct {
	LogLevel               string        `yaml:"log_level" default:"info"`
	ScanTimeout            time.Duration `yaml:"scan_timeout" default:"10s"`
	ScanMode               string        `yaml:"scan_mode" default:"balanced"`
	OutputFormat           string        `yaml:"output_format" default:"table"`
	Backend                string        `yaml:"backend" default:"auto"`
	AttributesFile         string        `yaml:"attributes_file"`
	IgnoreRepeatBroadcasts bool          `yaml:"ignore_repeat_broadcasts"`
}

// DefaultConfig returns default configuration values
func DefaultConfig() *Config {
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	return cfg
}

// DefaultPath is $XDG_CONFIG_HOME/bleadv/config.yaml or the platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bleadv", "config.yaml")
}

// Load reads the file at path over the defaults. An empty path tries
// DefaultPath and silently falls back to defaults when it does not exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Read decodes YAML from r over the defaults and validates the result.
func Read(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field for an accepted value.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ScanTimeout < 0 || c.ScanTimeout > scan.MaxScanDuration {
		return fmt.Errorf("scan_timeout %s out of range (0..%s)", c.ScanTimeout, scan.MaxScanDuration)
	}
	if _, err := scan.ParseMode(c.ScanMode); err != nil {
		return err
	}
	if !isOutputFormat(c.OutputFormat) {
		return fmt.Errorf("unsupported output_format %q (expected %s)", c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if strings.TrimSpace(c.Backend) == "" {
		return errors.New("backend must not be empty")
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Mode parses ScanMode, falling back to balanced.
func (c *Config) Mode() scan.Mode {
	m, _ := scan.ParseMode(c.ScanMode)
	return m
}

// NewLogger creates a configured logger instance
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	level, err := c.Level()
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Use structured logging format
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	return logger
}

func isOutputFormat(s string) bool {
	for _, f := range OutputFormats {
		if s == f {
			return true
		}
	}
	return false
}
