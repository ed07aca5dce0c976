// Package config loads the optional YAML configuration consumed by the
// aiact commands.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds tool-level settings. Zero values fall back to defaults; the
// classification rules themselves are not configurable.
type Config struct {
	Search SearchConfig `yaml:"search"`

	// OutputDir is where report files are written when no explicit output
	// path is given.
	OutputDir string `yaml:"output_dir"`
}

// SearchConfig controls supplementary web retrieval.
type SearchConfig struct {
	// Enabled turns retrieval on by default; the --search flag overrides.
	Enabled bool `yaml:"enabled"`

	// MaxResultsPerQuery bounds hits per query. Default: 3.
	MaxResultsPerQuery int `yaml:"max_results_per_query"`

	// RateLimit is the minimum interval between search requests as a Go
	// duration string, e.g. "1s" or "500ms". Default: "1s".
	RateLimit string `yaml:"rate_limit"`

	// UserAgent overrides the User-Agent header for search requests.
	UserAgent string `yaml:"user_agent"`
}

// RateLimitDuration parses the configured rate limit, falling back to one
// second for empty or malformed values.
func (s SearchConfig) RateLimitDuration() time.Duration {
	if s.RateLimit == "" {
		return time.Second
	}
	interval, err := time.ParseDuration(s.RateLimit)
	if err != nil || interval <= 0 {
		return time.Second
	}
	return interval
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			MaxResultsPerQuery: 3,
			RateLimit:          "1s",
		},
		OutputDir: ".",
	}
}

// Load reads a YAML configuration file and fills unset fields with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Search.MaxResultsPerQuery <= 0 {
		c.Search.MaxResultsPerQuery = 3
	}
	if c.Search.RateLimit == "" {
		c.Search.RateLimit = "1s"
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
}
