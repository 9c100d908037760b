// README: Config loader with env defaults for HTTP, logging and toll settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "TOLL"

type TollConfig struct {
	Currency string
	Timezone string
	Location *time.Location
}

type Config struct {
	Env  string
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
	}
	Log struct {
		Level string
	}
	Toll TollConfig
}

func Load() (Config, error) {
	return LoadFrom(".env")
}

// LoadFrom reads an optional dotenv file at path and then the TOLL_-prefixed
// environment, which takes precedence. Keys in the file are unprefixed.
func LoadFrom(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("currency", "USD")
	v.SetDefault("timezone", "UTC")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	cfg.Env = v.GetString("env")
	cfg.HTTP.Addr = v.GetString("http_addr")
	cfg.HTTP.ShutdownTimeout = v.GetDuration("shutdown_timeout")
	cfg.Log.Level = v.GetString("log_level")
	cfg.Toll.Currency = v.GetString("currency")
	cfg.Toll.Timezone = v.GetString("timezone")

	loc, err := time.LoadLocation(cfg.Toll.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("load timezone %q: %w", cfg.Toll.Timezone, err)
	}
	cfg.Toll.Location = loc
	if cfg.HTTP.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("shutdown timeout must be positive, got %s", cfg.HTTP.ShutdownTimeout)
	}
	return cfg, nil
}
