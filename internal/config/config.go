// Package config loads the seed address ranges cmd/ivtreedemo builds its
// tree from, the way _examples/Sumatoshi-tech-codefang loads its
// analysis configuration: viper for file/env/default layering, decoding
// the on-disk YAML file's keys by the mapstructure tags below.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".ivtreedemo"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for ivtreedemo settings.
const envPrefix = "IVTREEDEMO"

// RangeSpec is one seed address range as it appears in the config file.
type RangeSpec struct {
	Name string `mapstructure:"name"`
	Low  uint64 `mapstructure:"low"`
	High uint64 `mapstructure:"high"`
}

// Config is the root of the config file.
type Config struct {
	Ranges []RangeSpec `mapstructure:"ranges"`
}

// Validate checks every range has low <= high, per the tree's Emplace
// precondition.
func (c *Config) Validate() error {
	for _, r := range c.Ranges {
		if r.Low > r.High {
			return fmt.Errorf("range %q: low (%d) exceeds high (%d)", r.Name, r.Low, r.High)
		}
	}
	return nil
}

// Load loads configuration from a file, environment variables, and
// defaults. If configPath is non-empty it is used as the explicit config
// file path; otherwise the config file is searched in the current
// directory and $HOME. A missing config file is not an error — an empty
// ranges list is used.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("ranges", []RangeSpec{})

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
