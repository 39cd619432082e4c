package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAlphabet restricts CLI inputs to binary strings.
const DefaultAlphabet = "01"

// DefaultPath is looked up in the working directory when no --config is given.
const DefaultPath = "automaton.yaml"

// Config represents the structure of automaton.yaml.
type Config struct {
	// Alphabet lists the symbols accepted as input. Empty means unrestricted.
	Alphabet string `yaml:"alphabet" json:"alphabet"`

	// Deferred enables two-pass resolution of transitions.
	Deferred bool `yaml:"deferred" json:"deferred"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Listen is the HTTP address used by `serve`.
	Listen string `yaml:"listen" json:"listen"`

	// RunsDir, when set, persists runs as JSON files in that directory.
	RunsDir string `yaml:"runs_dir" json:"runs_dir"`

	Redis RedisConfig `yaml:"redis" json:"redis"`
}

// RedisConfig configures the Redis run store. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr"`
	Password string        `yaml:"password" json:"password"`
	DB       int           `yaml:"db" json:"db"`
	Prefix   string        `yaml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Alphabet: DefaultAlphabet,
		LogLevel: "info",
		Listen:   ":8080",
	}
}

// Load reads a configuration file (YAML or JSON). Values absent from the
// file keep their defaults. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return cfg, nil
}
