// Package models defines data structures for configuration.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChartConfig holds bar chart labelling.
type ChartConfig struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`
}

// Config holds runtime configuration for a run. Values come from an
// optional YAML file; CLI flags override them.
type Config struct {
	URL        string      `yaml:"url"`
	TopN       int         `yaml:"top_n"`
	Workers    int         `yaml:"workers"`
	OutputDir  string      `yaml:"output_dir"`
	MaxAge     string      `yaml:"max_age"`
	SkipCommon bool        `yaml:"skip_common"`
	Chart      ChartConfig `yaml:"chart"`
}

// DefaultConfig returns the built-in defaults: Orwell's 1984 from the
// Australian Gutenberg mirror, top 11 words, one worker per CPU.
func DefaultConfig() *Config {
	return &Config{
		URL:       "https://gutenberg.net.au/ebooks01/0100021.txt",
		TopN:      11,
		Workers:   0,
		OutputDir: "wordplot-results",
		MaxAge:    "24h",
		Chart: ChartConfig{
			XLabel: "Words",
			YLabel: "Frequency",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}
