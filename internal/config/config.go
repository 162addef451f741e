// Package config loads the optional YAML configuration file. A missing file
// is not an error; every field has a working default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config is the on-disk configuration.
type Config struct {
	// ExpandNested controls the nested-JSON-string expansion pass on parsed
	// input. Defaults to true.
	ExpandNested *bool `yaml:"expand_nested,omitempty"`

	Theme Theme `yaml:"theme"`

	Logging Logging `yaml:"logging"`
}

// Theme holds the pane border colors, as tcell color names or #rrggbb.
type Theme struct {
	InputBorder  string `yaml:"input_border"`
	TreeBorder   string `yaml:"tree_border"`
	OutputBorder string `yaml:"output_border"`
	SearchBorder string `yaml:"search_border"`
}

// Logging configures the file log sink. The TUI owns stdout, so logs only
// ever go to a file.
type Logging struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	expand := true
	return &Config{
		ExpandNested: &expand,
		Theme: Theme{
			InputBorder:  "teal",
			TreeBorder:   "darkcyan",
			OutputBorder: "darkgreen",
			SearchBorder: "green",
		},
		Logging: Logging{Level: "info"},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jviz", "config.yaml")
}

// Load reads path and merges it over the defaults. An empty path falls back
// to DefaultPath; a nonexistent file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.merge(&file)
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.ExpandNested != nil {
		c.ExpandNested = o.ExpandNested
	}
	if o.Theme.InputBorder != "" {
		c.Theme.InputBorder = o.Theme.InputBorder
	}
	if o.Theme.TreeBorder != "" {
		c.Theme.TreeBorder = o.Theme.TreeBorder
	}
	if o.Theme.OutputBorder != "" {
		c.Theme.OutputBorder = o.Theme.OutputBorder
	}
	if o.Theme.SearchBorder != "" {
		c.Theme.SearchBorder = o.Theme.SearchBorder
	}
	if o.Logging.File != "" {
		c.Logging.File = o.Logging.File
	}
	if o.Logging.Level != "" {
		c.Logging.Level = o.Logging.Level
	}
}

// ShouldExpand reports the effective expansion setting.
func (c *Config) ShouldExpand() bool {
	return c.ExpandNested == nil || *c.ExpandNested
}
