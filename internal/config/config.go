// Package config holds interpreter constants and the morsel.yaml manifest.
//
// The manifest is optional; it tunes the driver (prompt, step tracing,
// prelude files evaluated before user code), never the language.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Prompt replaces the default REPL prompt.
	Prompt string `yaml:"prompt,omitempty"`

	// Trace prints the call stack after every evaluation step.
	Trace bool `yaml:"trace,omitempty"`

	// Prelude lists source files evaluated into the global environment
	// before the REPL or program starts, in order. Paths are relative to
	// the manifest's directory.
	Prelude []string `yaml:"prelude,omitempty"`
}

func Default() *Config {
	return &Config{Prompt: DefaultPrompt}
}

// Load reads and validates a manifest file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	for i, p := range cfg.Prelude {
		if !filepath.IsAbs(p) {
			cfg.Prelude[i] = filepath.Join(filepath.Dir(path), p)
		}
	}
	return cfg, nil
}

// LoadDir loads dir's manifest if one exists, defaults otherwise.
func LoadDir(dir string) (*Config, error) {
	path := filepath.Join(dir, ManifestFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
