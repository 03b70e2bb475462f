package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level pocketfin.yaml configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig points the client at the finance tracker backend.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// StorageConfig controls where local scratch data and tokens live. An empty
// DataDir means "next to the config file".
type StorageConfig struct {
	DataDir string `yaml:"data_dir,omitempty"`
}

// LogConfig controls CLI log output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// FileName is the config file pocketfin looks for in its profile directory.
const FileName = "pocketfin.yaml"

// Load reads a pocketfin.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new profile.
func Default(baseURL string) *Config {
	if baseURL == "" {
		baseURL = "http://localhost:8000/api/v1"
	}
	return &Config{
		API: APIConfig{
			BaseURL:        baseURL,
			TimeoutSeconds: 15,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DataDir resolves the directory scratch data and tokens are stored in,
// given the directory the config file was loaded from.
func (c *Config) DataDir(profileDir string) string {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir
	}
	return filepath.Join(profileDir, "data")
}
