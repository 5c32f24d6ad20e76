// Package config loads settings from ~/.availability/config.yaml and
// AVAILABILITY_* environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/aaronsmc/office-wishlist-agent/internal/availability"
	"github.com/aaronsmc/office-wishlist-agent/internal/store"
)

// EnvPrefix prefixes every environment override: store.driver is read from
// AVAILABILITY_STORE_DRIVER.
const EnvPrefix = "AVAILABILITY"

const (
	KeyDataDir       = "data_dir"
	KeyStoreDriver   = "store.driver"
	KeyRedisAddr     = "store.redis.addr"
	KeyRedisPassword = "store.redis.password"
	KeyRedisDB       = "store.redis.db"
	KeyRedisPrefix   = "store.redis.prefix"
	KeyLogLevel      = "log.level"
	KeyAttachWindow  = "parser.attach_window"
)

const (
	DriverFile  = "file"
	DriverRedis = "redis"
)

// Config is the resolved configuration.
type Config struct {
	DataDir      string
	StoreDriver  string
	Redis        store.RedisConfig
	LogLevel     string
	AttachWindow int

	v    *viper.Viper
	path string
}

// Dir returns the configuration directory under homeDir.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".availability")
}

// Keys lists every known key in lexical order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var defaults = map[string]any{
	KeyDataDir:       "",
	KeyStoreDriver:   DriverFile,
	KeyRedisAddr:     store.DefaultRedisConfig().Addr,
	KeyRedisPassword: "",
	KeyRedisDB:       0,
	KeyRedisPrefix:   store.DefaultRedisConfig().Prefix,
	KeyLogLevel:      "warn",
	KeyAttachWindow:  availability.DefaultAttachWindow,
}

// Load reads configuration. file overrides the default location
// (Dir(homeDir)/config.yaml); a missing default file is not an error.
func Load(homeDir, file string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetDefault(KeyDataDir, filepath.Join(Dir(homeDir), "data"))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := file
	if path == "" {
		path = filepath.Join(Dir(homeDir), "config.yaml")
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if !missing || file != "" {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	c := &Config{v: v, path: path}
	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) resolve() error {
	c.DataDir = c.v.GetString(KeyDataDir)
	c.StoreDriver = strings.ToLower(c.v.GetString(KeyStoreDriver))
	c.Redis = store.RedisConfig{
		Addr:     c.v.GetString(KeyRedisAddr),
		Password: c.v.GetString(KeyRedisPassword),
		DB:       c.v.GetInt(KeyRedisDB),
		Prefix:   c.v.GetString(KeyRedisPrefix),
	}
	c.LogLevel = c.v.GetString(KeyLogLevel)
	c.AttachWindow = c.v.GetInt(KeyAttachWindow)
	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverFile, DriverRedis:
	default:
		return fmt.Errorf("unknown store driver %q (want %s or %s)", c.StoreDriver, DriverFile, DriverRedis)
	}
	if c.AttachWindow <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyAttachWindow, c.AttachWindow)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Path returns the file configuration is read from and written to.
func (c *Config) Path() string {
	return c.path
}

// Get returns the effective value of key.
func (c *Config) Get(key string) (string, error) {
	if _, ok := defaults[key]; !ok {
		return "", fmt.Errorf("unknown config key '%s'", key)
	}
	return c.v.GetString(key), nil
}

// Set changes key and writes the config file.
func (c *Config) Set(key, value string) error {
	def, ok := defaults[key]
	if !ok {
		return fmt.Errorf("unknown config key '%s'", key)
	}

	var typed any = value
	if _, isInt := def.(int); isInt {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, err)
		}
		typed = n
	}

	previous := c.v.Get(key)
	c.v.Set(key, typed)
	if err := c.resolve(); err != nil {
		c.v.Set(key, previous)
		_ = c.resolve()
		return err
	}
	return c.write(key, typed)
}

// write stores key in the config file next to what the file already holds.
// Defaults and environment overrides never reach the file.
func (c *Config) write(key string, value any) error {
	file := viper.New()
	file.SetConfigFile(c.path)
	file.SetConfigType("yaml")
	if err := file.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config %s: %w", c.path, err)
		}
	}
	file.Set(key, value)

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	return file.WriteConfigAs(c.path)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// OpenStore opens the configured store. The returned close function
// releases its connections.
func (c *Config) OpenStore(ctx context.Context) (store.Store, func() error, error) {
	switch c.StoreDriver {
	case DriverRedis:
		rs, err := store.NewRedisStore(ctx, c.Redis)
		if err != nil {
			return nil, nil, err
		}
		return rs, rs.Close, nil
	default:
		return store.NewFileStore(c.DataDir), func() error { return nil }, nil
	}
}
