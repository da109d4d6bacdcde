// Package config loads and validates the snipdex configuration: the ordered
// section table, the navigation header variants for the root document, and
// the sentinel marker pair. Without a config file the built-in defaults
// apply, so a bare `snipdex index` works out of the box.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mmirabella/snipdex/internal/region"
	"github.com/mmirabella/snipdex/internal/util/sets"
)

// Config represents the application configuration.
type Config struct {
	Root         string              `yaml:"root"`
	RootDocument string              `yaml:"root_document"`
	Markers      Markers             `yaml:"markers"`
	Navigation   []NavigationVariant `yaml:"navigation"`
	Sections     []Section           `yaml:"sections"`
}

// Markers is the sentinel comment pair bounding generated index blocks.
type Markers struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Pair converts to the region package's marker type.
func (m Markers) Pair() region.Markers {
	return region.Markers{Start: m.Start, End: m.End}
}

// NavigationVariant is one localized header triple for the root document.
// Variants are tried in configuration order; the first whose start header
// occurs in the document wins.
type NavigationVariant struct {
	StartHeader string `yaml:"start_header"`
	EndHeader   string `yaml:"end_header"`
	IndexHeader string `yaml:"index_header"`
}

// Section describes one named group of snippet files sharing a folder and
// glob patterns, optionally owning its own document.
type Section struct {
	Label    string           `yaml:"label"`
	Folder   string           `yaml:"folder"`
	Patterns []string         `yaml:"patterns"`
	Document *SectionDocument `yaml:"document,omitempty"`
}

// SectionDocument is the header triple for a section's own document. The
// document lives inside the section folder under File.
type SectionDocument struct {
	File        string `yaml:"file,omitempty"`
	StartHeader string `yaml:"start_header"`
	EndHeader   string `yaml:"end_header,omitempty"`
	IndexHeader string `yaml:"index_header,omitempty"`
}

// Load reads the configuration from configPath. A missing file is not an
// error: the built-in defaults are returned instead. Environment variables
// referenced in the YAML body are expanded, and a .env file next to the
// working directory is loaded first when present.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return &cfg, nil
}

// loadEnvFile loads environment variables from .env/.env.local, first file
// wins. Existing process environment variables are not overwritten
// (godotenv.Load semantics).
func loadEnvFile() {
	for _, p := range []string{".env", ".env.local"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// Validate checks structural invariants the updater relies on.
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("root must not be empty")
	}
	if c.RootDocument == "" {
		return errors.New("root_document must not be empty")
	}
	if c.Markers.Start == "" || c.Markers.End == "" {
		return errors.New("both marker lines must be set")
	}
	if len(c.Navigation) == 0 {
		return errors.New("at least one navigation header variant is required")
	}
	for i, v := range c.Navigation {
		if v.StartHeader == "" || v.EndHeader == "" || v.IndexHeader == "" {
			return fmt.Errorf("navigation variant %d: all three headers must be set", i)
		}
	}
	labels := sets.New[string]()
	for i, s := range c.Sections {
		if s.Label == "" {
			return fmt.Errorf("section %d: label must not be empty", i)
		}
		if labels.Has(s.Label) {
			return fmt.Errorf("section %d: duplicate label %q", i, s.Label)
		}
		labels.Add(s.Label)
		if s.Folder == "" {
			return fmt.Errorf("section %q: folder must not be empty", s.Label)
		}
		if len(s.Patterns) == 0 {
			return fmt.Errorf("section %q: at least one glob pattern is required", s.Label)
		}
		if s.Document != nil && s.Document.StartHeader == "" {
			return fmt.Errorf("section %q: document start_header must not be empty", s.Label)
		}
	}
	return nil
}
