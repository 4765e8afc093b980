// Package cli holds the glue shared by the easel commands: configuration
// loading and studio construction.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration for the easel commands.
type Config struct {
	// Model is the chat model used by interactive sessions.
	Model string `yaml:"model"`

	// Redis enables Redis-backed persistence when Addr is set; otherwise
	// projects live in memory for the lifetime of the process.
	Redis RedisConfig `yaml:"redis"`

	// Debug switches on verbose logging to stderr.
	Debug bool `yaml:"debug"`
}

// RedisConfig configures the Redis persistence backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DefaultConfigPath is checked when no --config flag is given.
const DefaultConfigPath = "easel.yaml"

// LoadConfig reads configuration from path. A missing file at the
// default path is not an error; explicit paths must exist.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
