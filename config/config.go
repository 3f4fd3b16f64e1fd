// Package config loads the optional YAML configuration of the interpreter.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top level configuration
type Config struct {
	Interpreter Interpreter `yaml:"Interpreter"`
	Logger      Logger      `yaml:"Logger"`
}

// Interpreter configures the evaluator
type Interpreter struct {
	// MaxSteps caps the number of statements a single line may execute,
	// including every statement of every loop iteration.  Zero means no cap.
	MaxSteps int `yaml:"MaxSteps"`
}

// Logger configures diagnostic logging
type Logger struct {
	Level    string `yaml:"Level"`
	Encoding string `yaml:"Encoding"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Logger: Logger{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads the configuration at path on top of the defaults.  An empty path
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode unmarshals data into cfg, rejecting unknown fields and validating
// the result.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	return cfg.Validate()
}

// Validate checks the configuration for values that cannot be used
func (c Config) Validate() error {
	if c.Interpreter.MaxSteps < 0 {
		return fmt.Errorf("invalid MaxSteps %d: must not be negative",
			c.Interpreter.MaxSteps)
	}
	switch c.Logger.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log encoding ‘%s’", c.Logger.Encoding)
	}
	return nil
}
