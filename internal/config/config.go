// Package config loads logpie settings from defaults, an optional YAML file
// and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all logpie configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Output   OutputConfig   `yaml:"output"`
	Recorder RecorderConfig `yaml:"recorder"`
}

// LogConfig controls logpie's own diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// OutputConfig holds record destination settings.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	File     string `yaml:"file"`
	MaxSize  int64  `yaml:"max_size"` // bytes; 0 disables rotation
	Stdout   bool   `yaml:"stdout"`
	Timezone string `yaml:"timezone"` // "utc" or "local"
}

// RecorderConfig holds recorder settings.
type RecorderConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Output: OutputConfig{
			Dir:      "logs",
			File:     "logpie.log",
			Timezone: "utc",
		},
		Recorder: RecorderConfig{
			Name:    "logpie",
			Enabled: true,
		},
	}
}

// Load builds the configuration. A YAML file named by LOGPIE_CONFIG is
// applied over the defaults, then environment variables over both.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("LOGPIE_CONFIG"); path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Log.Level = getenv("LOGPIE_LOG_LEVEL", c.Log.Level)
	c.Output.Dir = getenv("LOGPIE_DIR", c.Output.Dir)
	c.Output.File = getenv("LOGPIE_FILE", c.Output.File)
	c.Output.MaxSize = getenvInt("LOGPIE_MAX_SIZE", c.Output.MaxSize)
	c.Output.Stdout = getenvBool("LOGPIE_STDOUT", c.Output.Stdout)
	c.Output.Timezone = getenv("LOGPIE_TIMEZONE", c.Output.Timezone)
	c.Recorder.Name = getenv("LOGPIE_NAME", c.Recorder.Name)
	c.Recorder.Enabled = getenvBool("LOGPIE_ENABLED", c.Recorder.Enabled)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
