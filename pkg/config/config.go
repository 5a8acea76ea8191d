/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the gdsii tool configuration
type Config struct {
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Format:   "text",
		LogLevel: "info",
	}
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Format, validation.Required, validation.In("text", "json", "yaml")),
		validation.Field(&c.LogLevel, validation.Required, validation.By(logLevel)),
	)
}

func logLevel(value interface{}) error {
	s, _ := value.(string)
	_, err := logrus.ParseLevel(s)
	return err
}

// Load loads configuration from the specified path. Environment variable
// references in the file body are expanded before parsing, so values like
// `log_level: $GDSII_LOG_LEVEL` work.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}
