// Package config provides configuration management for nodegraph.
//
// Config file locations (priority order):
//  1. $NODEGRAPH_CONFIG
//  2. ./nodegraph.yaml
//  3. $XDG_CONFIG_HOME/nodegraph/config.yaml
//  4. ~/.config/nodegraph/config.yaml
//  5. /etc/nodegraph/config.yaml
package config

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"nodegraph/internal/geometry"
	"nodegraph/internal/graph"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the stock configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Layout: LayoutConfig{
			BaseWidth:  graph.DefaultBaseWidth,
			BaseHeight: graph.DefaultBaseHeight,
			PortWidth:  graph.DefaultPortWidth,
			PortHeight: graph.DefaultPortHeight,
			PortGap:    graph.DefaultPortGap,
		},
		Log: LogConfig{
			Level:  LevelInfo,
			Format: FormatConsole,
		},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.Layout.BaseWidth == 0 {
		c.Layout.BaseWidth = d.Layout.BaseWidth
	}
	if c.Layout.BaseHeight == 0 {
		c.Layout.BaseHeight = d.Layout.BaseHeight
	}
	if c.Layout.PortWidth == 0 {
		c.Layout.PortWidth = d.Layout.PortWidth
	}
	if c.Layout.PortHeight == 0 {
		c.Layout.PortHeight = d.Layout.PortHeight
	}
	// PortGap may be zero
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// Validate reports every out-of-range setting
func (c *Config) Validate() error {
	var errs error
	positive := []struct {
		name  string
		value float64
	}{
		{"layout.base_width", c.Layout.BaseWidth},
		{"layout.base_height", c.Layout.BaseHeight},
		{"layout.port_width", c.Layout.PortWidth},
		{"layout.port_height", c.Layout.PortHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s must be positive, got %g", p.name, p.value))
		}
	}
	if c.Layout.PortGap < 0 {
		errs = multierr.Append(errs, fmt.Errorf("layout.port_gap must not be negative, got %g", c.Layout.PortGap))
	}
	if !c.Log.Level.Valid() {
		errs = multierr.Append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	if !c.Log.Format.Valid() {
		errs = multierr.Append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	return errs
}

// NodeLayout returns the node metrics described by the config
func (c *Config) NodeLayout() graph.Layout {
	return graph.Layout{
		Base:    geometry.Size{W: c.Layout.BaseWidth, H: c.Layout.BaseHeight},
		Port:    geometry.Size{W: c.Layout.PortWidth, H: c.Layout.PortHeight},
		PortGap: c.Layout.PortGap,
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	l := c.Layout
	summary := fmt.Sprintf("Layout: body %gx%g, port %gx%g, gap %g\n",
		l.BaseWidth, l.BaseHeight, l.PortWidth, l.PortHeight, l.PortGap)
	summary += fmt.Sprintf("Log: %s (%s)", c.Log.Level, c.Log.Format)
	if c.Palette.Path != "" {
		summary += fmt.Sprintf("\nPalette: %s", c.Palette.Path)
	}
	return summary
}
