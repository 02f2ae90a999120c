package config

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all pipeloop CLI configuration.
type Config struct {
	// Input is the puzzle file used when no file argument is given.
	Input string `yaml:"input"`

	// ParallelRows is the goroutine limit for the enclosure scan (0 = sequential).
	ParallelRows int `yaml:"parallel_rows"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Render settings for the show command
	Render RenderConfig `yaml:"render"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// RenderConfig configures map rendering.
type RenderConfig struct {
	Plain bool `yaml:"plain"` // disable ANSI styling
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:        "input/day10.txt",
		ParallelRows: 0,
		Logging: LoggingConfig{
			Level: "info",
		},
		Render: RenderConfig{
			Plain: false,
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// Return defaults if config file doesn't exist
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PIPELOOP_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("PIPELOOP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PIPELOOP_PARALLEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PIPELOOP_PARALLEL %q: %w", v, err)
		}
		c.ParallelRows = n
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.ParallelRows < 0 {
		return fmt.Errorf("parallel_rows cannot be negative (%d)", c.ParallelRows)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	return lvl, nil
}
