// Package config provides configuration loading for the fbjs CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the fbjs CLI.
type Config struct {
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Reduce ReduceConfig `mapstructure:"reduce" yaml:"reduce"`
}

// RenderConfig holds the default output shape of the render command.
type RenderConfig struct {
	Pretty    bool `mapstructure:"pretty"     yaml:"pretty"`
	KeepLines bool `mapstructure:"keep_lines" yaml:"keep_lines"`
}

// ReduceConfig holds the defaults of the reduce command.
type ReduceConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{Pretty: false, KeepLines: false},
		Reduce: ReduceConfig{Enabled: true},
	}
}

// WriteDefault writes the built-in configuration to path as YAML. It fails
// if the file already exists.
func WriteDefault(path string) error {
	out, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(out)
	if err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
