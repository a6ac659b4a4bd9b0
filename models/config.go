// Package models defines data structures for configuration and word lists.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when --config is not given. It is optional.
const DefaultConfigFile = "wordlist.yaml"

// ImportConfig holds runtime configuration for the word-list importer.
type ImportConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// SplitConfig holds runtime configuration for the lexical splitter.
type SplitConfig struct {
	Input         string `yaml:"input"`
	OutputDir     string `yaml:"output_dir"`
	OutputPattern string `yaml:"output_pattern"`
	MinLength     int    `yaml:"min_length"`
	MaxLength     int    `yaml:"max_length"`
}

// Config is the optional YAML file. Values only fill in defaults;
// CLI flags that are set explicitly always win.
type Config struct {
	Import ImportConfig `yaml:"import"`
	Split  SplitConfig  `yaml:"split"`
	DB     string       `yaml:"db"`
}

// LoadConfig reads a YAML config file.
// Returns an empty config without error if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}
