// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the process configuration of the bookmarks MCP server.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by [Load].
const EnvPrefix = "BOOKMARKS"

// Config is the full process configuration.
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Stream   StreamConfig   `mapstructure:"stream"`
}

// HTTPConfig configures the listener.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

// StoreConfig selects the bookmark store.
type StoreConfig struct {
	Driver string `mapstructure:"driver"` // memory, postgres, sqlite
	DSN    string `mapstructure:"dsn"`
	Seed   bool   `mapstructure:"seed"`
}

// PostgresConfig holds the discrete connection settings used when no DSN is given.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

// AuthConfig configures bearer token authentication. An empty secret
// disables it.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// StreamConfig configures the event stream.
type StreamConfig struct {
	TaskEvents bool `mapstructure:"task_events"` // publish task.completed and task.failed
}

// Load reads configuration from defaults, an optional YAML file, a .env
// file and the environment, in increasing order of precedence.
//
// An empty configPath searches for config.yaml in the working directory and
// /etc/bookmarks-mcp; a missing file there is not an error.
func Load(configPath string) (*Config, error) {
	// .env file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/bookmarks-mcp")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.seed", true)
	v.SetDefault("postgres.host", "")
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("stream.task_events", false)

	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores in env var names e.g. store.driver becomes BOOKMARKS_STORE_DRIVER
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The unprefixed POSTGRES_* variables are honoured as well.
	for _, key := range []string{"host", "user", "password", "db"} {
		envKey := "POSTGRES_" + strings.ToUpper(key)
		if err := v.BindEnv("postgres."+key, EnvPrefix+"_"+envKey, envKey); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", envKey, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration values that cannot be served.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "memory":
	case "sqlite":
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the sqlite driver")
		}
	case "postgres":
		if c.Store.DSN == "" && c.Postgres.Host == "" {
			return fmt.Errorf("store.dsn or postgres.host is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported store.driver %q", c.Store.Driver)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log.format %q", c.Log.Format)
	}
	return nil
}
