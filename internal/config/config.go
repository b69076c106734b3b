// Package config loads runtime configuration from defaults, an optional
// forecastkit.yaml, and FORECASTKIT_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the settings of the forecastctl tool.
type Config struct {
	ForecastFile string `mapstructure:"forecast_file" validate:"required"`
	Timezone     string `mapstructure:"timezone"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Days         int    `mapstructure:"days" validate:"gt=0"`
}

// LoadConfig reads configuration with precedence env > config file > defaults.
// The config file (forecastkit.yaml in the working directory) is optional.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("forecast_file", "./forecast.json")
	v.SetDefault("timezone", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("days", 5)

	v.SetConfigName("forecastkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FORECASTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration, including that the timezone, if set,
// resolves to a known location.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	return nil
}

// Location resolves the configured timezone, defaulting to the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
