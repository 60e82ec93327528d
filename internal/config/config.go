// Package config resolves astrolog defaults from a YAML file, a .env file and
// the environment. Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/faizmokh/astrolog/internal/files"
	"github.com/faizmokh/astrolog/internal/logbook"
	"github.com/faizmokh/astrolog/internal/report"
)

// Environment variables that override the config file.
const (
	EnvName           = "ASTROLOG_NAME"
	EnvImageDir       = "ASTROLOG_IMAGE_DIR"
	EnvImageExtension = "ASTROLOG_IMAGE_EXTENSION"
	EnvLayout         = "ASTROLOG_LAYOUT"
	EnvFormat         = "ASTROLOG_FORMAT"
	EnvLogLevel       = "ASTROLOG_LOG_LEVEL"
)

// Config represents the complete astrolog configuration
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReportConfig holds report rendering defaults
type ReportConfig struct {
	// Name replaces %NAME% in the template
	Name string `yaml:"name"`
	// ImageDir is the directory prefix of sketch images
	ImageDir string `yaml:"image_dir"`
	// ImageExtension is appended to every sketch name, including the dot
	ImageExtension string `yaml:"image_extension"`
	// Layout is "list" or "table"
	Layout string `yaml:"layout"`
	// Format is "html" or "markdown"
	Format string `yaml:"format"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// Default returns a Config with the built-in defaults
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Name:           report.DefaultName,
			ImageDir:       report.DefaultImageDir,
			ImageExtension: report.DefaultImageExtension,
			Layout:         string(logbook.LayoutList),
			Format:         string(report.FormatHTML),
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load builds the configuration. An explicit path must exist; with an empty
// path the file under the astrolog home is used when present. A .env file in
// the working directory is loaded before environment overrides are applied.
// Values are not validated here: command-line flags still take precedence, so
// callers validate after applying them.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	required := path != ""
	if !required {
		var err error
		path, err = files.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	path, err := files.ExpandHome(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.mergeFile(path); err != nil {
		if required || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields whose environment variable is set and non-empty.
func (c *Config) ApplyEnv() {
	override(&c.Report.Name, EnvName)
	override(&c.Report.ImageDir, EnvImageDir)
	override(&c.Report.ImageExtension, EnvImageExtension)
	override(&c.Report.Layout, EnvLayout)
	override(&c.Report.Format, EnvFormat)
	override(&c.Logging.Level, EnvLogLevel)
}

func override(field *string, key string) {
	if v := os.Getenv(key); v != "" {
		*field = v
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.Report.ParseLayout(); err != nil {
		return err
	}
	if _, err := c.Report.ParseFormat(); err != nil {
		return err
	}
	return nil
}

// ParseLayout returns the configured observation layout.
func (r ReportConfig) ParseLayout() (logbook.Layout, error) {
	layout, ok := logbook.ParseLayout(r.Layout)
	if !ok {
		return "", fmt.Errorf("report.layout %q is invalid (expected list|table)", r.Layout)
	}
	return layout, nil
}

// ParseFormat returns the configured output format.
func (r ReportConfig) ParseFormat() (report.Format, error) {
	format, ok := report.ParseFormat(r.Format)
	if !ok {
		return "", fmt.Errorf("report.format %q is invalid (expected html|markdown)", r.Format)
	}
	return format, nil
}

// Options converts the report section into render options.
func (r ReportConfig) Options() (report.Options, error) {
	layout, err := r.ParseLayout()
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{
		Name:           r.Name,
		ImageDir:       r.ImageDir,
		ImageExtension: r.ImageExtension,
		Layout:         layout,
	}, nil
}
