package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level        string `toml:"level" yaml:"level"`
	Prefix       string `toml:"prefix" yaml:"prefix"`
	ReportCaller bool   `toml:"report_caller" yaml:"report_caller"`
}

type MathConfig struct {
	Fallback string `toml:"fallback" yaml:"fallback"`
}

// Config is the on-disk configuration of the math layer.
type Config struct {
	Log  LogConfig  `toml:"log" yaml:"log"`
	Math MathConfig `toml:"math" yaml:"math"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Prefix: "EngineUtils 📐",
		},
		Math: MathConfig{
			Fallback: FallbackSentinel.String(),
		},
	}
}

// LoadConfig reads a config file on top of DefaultConfig. Files ending in
// .yaml or .yml are decoded as YAML, anything else as TOML. Keys missing
// from the file keep their default value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return decodeConfig(path, data)
}

func decodeConfig(path string, data []byte) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseConfigYAML(data)
	default:
		return ParseConfig(data)
	}
}

// ParseConfig decodes TOML data on top of DefaultConfig.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfigYAML decodes YAML data on top of DefaultConfig. An empty
// document yields the defaults.
func ParseConfigYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	_, err := ParseFallbackPolicy(c.Math.Fallback)
	return err
}

// Apply pushes the configuration into the engine logger and the fallback
// policy switch.
func (c *Config) Apply() error {
	policy, err := ParseFallbackPolicy(c.Math.Fallback)
	if err != nil {
		return err
	}
	if err := ConfigureLogger(LogOptions{
		Level:        c.Log.Level,
		Prefix:       c.Log.Prefix,
		ReportCaller: c.Log.ReportCaller,
	}); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	SetFallbackPolicy(policy)
	LogDebug("config applied: log level=%s fallback=%s", c.Log.Level, policy)
	return nil
}

// Marshal encodes the configuration back to TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
