// Package config loads the stegovault configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"stegovault/pkg/envelope"
)

// Config holds the stegovault configuration.
type Config struct {
	// KDFIterations is the PBKDF2 iteration count used when sealing new
	// envelopes. Values below the envelope floor are raised to it.
	KDFIterations int `yaml:"kdf_iterations"`

	// OutputDir is where stego output files land when no explicit output
	// path is given. Empty means next to the carrier.
	OutputDir string `yaml:"output_dir"`

	// SuffixStego is appended to the carrier's base name for default output
	// paths.
	SuffixStego string `yaml:"suffix_stego"`
}

// DefaultPath returns the default config file path: ~/.stegovault/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".stegovault", "config.yaml")
	}
	return filepath.Join(home, ".stegovault", "config.yaml")
}

// Load reads the configuration from the given YAML file path. If the file
// does not exist, it returns a default Config with no error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		KDFIterations: envelope.DefaultIterations,
		SuffixStego:   "_stego",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.KDFIterations < envelope.MinIterations {
		cfg.KDFIterations = envelope.MinIterations
	}
	if cfg.SuffixStego == "" {
		cfg.SuffixStego = "_stego"
	}

	return cfg, nil
}
