package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all server configuration.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`

	// LexiconPath is the path to the lexicon file backing the oracle.
	LexiconPath string `yaml:"lexicon_path"`

	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxTextLen is the per-text character limit applied to both the
	// recipient and the donor before mixing.
	MaxTextLen int `yaml:"max_text_len"`

	// SafeMode selects the stricter substitution policy for requests
	// that do not set "safe" themselves.
	SafeMode bool `yaml:"safe_mode"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		LexiconPath:    "data/lexicon.tsv",
		AllowedOrigins: []string{"*"},
		MaxTextLen:     2000,
	}
}

// LoadConfig reads a yaml config file; fields absent from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
