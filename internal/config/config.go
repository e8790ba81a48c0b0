// Package config loads the optional YAML configuration file. Every field has
// a sensible default, so running without a config file (or with a partial
// one) always works.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable options.
type Config struct {
	// Initial window size in screen coordinates.
	WindowWidth  int `yaml:"windowWidth"`
	WindowHeight int `yaml:"windowHeight"`

	// Shape of the generated demo trace used when no trace file is given.
	DemoTracks        int `yaml:"demoTracks"`
	DemoSpansPerTrack int `yaml:"demoSpansPerTrack"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		WindowWidth:       1280,
		WindowHeight:      960,
		DemoTracks:        6,
		DemoSpansPerTrack: 48,
	}
}

// Load reads the config file at path, layering it over the defaults. An empty
// path or a missing file yields the defaults; a present-but-broken file is an
// error, since silently ignoring it would be confusing.
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
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize backfills non-positive values with their defaults, so a partial
// or zeroed config file degrades gracefully.
func (c *Config) normalize() {
	def := Default()
	if c.WindowWidth <= 0 {
		c.WindowWidth = def.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = def.WindowHeight
	}
	if c.DemoTracks <= 0 {
		c.DemoTracks = def.DemoTracks
	}
	if c.DemoSpansPerTrack <= 0 {
		c.DemoSpansPerTrack = def.DemoSpansPerTrack
	}
}
