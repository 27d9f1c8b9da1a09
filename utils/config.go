package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a simulation run
type Config struct {
	Generations   int  `json:"generations" yaml:"generations"`
	Workers       int  `json:"workers" yaml:"workers"`
	UseMemoryPool bool `json:"use_memory_pool" yaml:"use_memory_pool"`
	StrictParse   bool `json:"strict_parse" yaml:"strict_parse"`
	EchoGrids     bool `json:"echo_grids" yaml:"echo_grids"`
	Verbose       bool `json:"verbose" yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations:   1,
		Workers:       0, // one per CPU
		UseMemoryPool: true,
		StrictParse:   false,
		EchoGrids:     true,
		Verbose:       false,
	}
}

// Validate checks the configuration for values the simulation cannot run with
func (c Config) Validate() error {
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, config.Validate()
}
