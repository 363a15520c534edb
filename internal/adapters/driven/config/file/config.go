// Package file loads and saves the application configuration as a TOML
// file under the data directory.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigName is the config file name inside the data directory.
const DefaultConfigName = "config.toml"

// AnalysisConfig holds the analysis defaults applied when a request
// leaves a field unset.
type AnalysisConfig struct {
	DefaultThreshold  float64 `toml:"default_threshold"`
	IncludeAllPairs   bool    `toml:"include_all_pairs"`
	MaxVocabularySize int     `toml:"max_vocabulary_size"`
	MinTokenLength    int     `toml:"min_token_length"`
	MaxConcurrentJobs int     `toml:"max_concurrent_jobs"`
}

// APIConfig holds the HTTP server settings.
type APIConfig struct {
	Listen            string `toml:"listen"`
	RequestsPerMinute int    `toml:"requests_per_minute"`
	MaxRequestBody    int64  `toml:"max_request_body"`
}

// Config is the full application configuration.
type Config struct {
	DataDir   string `toml:"data_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	Analysis AnalysisConfig `toml:"analysis"`
	API      APIConfig      `toml:"api"`

	path string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataDir:   "",
		LogLevel:  "info",
		LogFormat: "text",
		Analysis: AnalysisConfig{
			DefaultThreshold:  0.7,
			IncludeAllPairs:   true,
			MaxVocabularySize: 10000,
			MinTokenLength:    2,
			MaxConcurrentJobs: 2,
		},
		API: APIConfig{
			Listen:            "127.0.0.1:8080",
			RequestsPerMinute: 120,
			MaxRequestBody:    10 << 20,
		},
	}
}

// Load reads the configuration file at path. A missing file yields the
// defaults rather than an error, so first runs need no setup.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration back to its file, creating the parent
// directory if needed.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config has no file path")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	return os.WriteFile(c.path, data, 0600)
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}
