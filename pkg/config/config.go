package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xiaomi388/bookshelf/pkg/types"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "./config.yaml"

// ConfigPath is bound to the --config flag.
var ConfigPath = DefaultConfigPath

type Config struct {
	LogLevel string              `yaml:"logLevel"`
	Storage  types.StorageConfig `yaml:"storage"`
}

func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load reads configPath on top of the defaults. A missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if _, err := config.Level(); err != nil {
		return nil, err
	}

	return config, nil
}

func Dump(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}

	return nil
}
