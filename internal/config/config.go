// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the compacttrie tool
type Config struct {
	Keys   KeysConfig   `mapstructure:"keys"`
	Lookup LookupConfig `mapstructure:"lookup"`
	Log    LogConfig    `mapstructure:"log"`
}

// KeysConfig describes where the key list comes from and how to read it
type KeysConfig struct {
	File           string `mapstructure:"file"`
	ReverseDomains bool   `mapstructure:"reverse_domains"`
}

// LookupConfig holds lookup related configuration
type LookupConfig struct {
	Delimiter string `mapstructure:"delimiter"`
	CacheSize int    `mapstructure:"cache_size"`
	FoldCase  bool   `mapstructure:"fold_case"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from file and environment variables.
// Environment variables use the COMPACTTRIE_ prefix, e.g.
// COMPACTTRIE_KEYS_FILE.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("compacttrie")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("keys.file", "")
	v.SetDefault("keys.reverse_domains", false)

	v.SetDefault("lookup.delimiter", ".")
	v.SetDefault("lookup.cache_size", 0)
	v.SetDefault("lookup.fold_case", false)

	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Keys.File == "" {
		return fmt.Errorf("keys file is required")
	}
	if len(c.Lookup.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single byte, got %q", c.Lookup.Delimiter)
	}
	if c.Lookup.CacheSize < 0 {
		return fmt.Errorf("invalid lookup cache size: %d", c.Lookup.CacheSize)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// DelimiterByte returns the configured delimiter. Only valid after Validate.
func (c *LookupConfig) DelimiterByte() byte {
	return c.Delimiter[0]
}

// LogLevel returns the parsed log level, falling back to info.
func (c *LogConfig) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
