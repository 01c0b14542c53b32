package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing default file
// is not an error.
const DefaultPath = "lessons.yaml"

// Config holds the lessons CLI configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Repeat  RepeatConfig  `yaml:"repeat"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// RepeatConfig configures the repeat command.
type RepeatConfig struct {
	Message string `yaml:"message"`
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	Null string `yaml:"null_text"` // printed for the null sentinel
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Repeat: RepeatConfig{
			Message: "hello",
		},
		Output: OutputConfig{
			Null: "null",
		},
	}
}

// Load reads a YAML file over the defaults. If the file does not exist and
// required is false, the defaults are returned.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	if c.Repeat.Message == "" {
		return fmt.Errorf("repeat.message must not be empty")
	}
	return nil
}

// ZapLevel parses the configured level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return level, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}
