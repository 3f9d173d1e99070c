package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppHost                    string `env:"APP_HOST" envDefault:"127.0.0.1"`
	AppPort                    string `env:"APP_PORT" envDefault:"8080"`
	DatabaseDSN                string `env:"DATABASE_DSN" envDefault:"agilefant.db"`
	RateLimit                  int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
	DefaultLocale              string `env:"DEFAULT_LOCALE" envDefault:"en-US"`
	CacheEnabled               bool   `env:"AUTOCOMPLETE_CACHE_ENABLED" envDefault:"false"`
	RedisHost                  string `env:"REDIS_HOST" envDefault:"127.0.0.1"`
	RedisPort                  string `env:"REDIS_PORT" envDefault:"6379"`
	RedisKeyPrefix             string `env:"REDIS_KEY_PREFIX" envDefault:"agilefant:autocomplete"`
	AutocompleteTTLSeconds     int    `env:"AUTOCOMPLETE_TTL_SECONDS" envDefault:"300"`
	AutocompleteRefreshSeconds int    `env:"AUTOCOMPLETE_REFRESH_SECONDS" envDefault:"60"`
	ShutdownTimeoutSeconds     int    `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"20"`
}

func (c Config) AppURL() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func (c Config) AutocompleteTTL() time.Duration {
	return time.Duration(c.AutocompleteTTLSeconds) * time.Second
}

func (c Config) AutocompleteRefreshInterval() time.Duration {
	return time.Duration(c.AutocompleteRefreshSeconds) * time.Second
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.AppHost == "" || c.AppPort == "" {
		errs = append(errs, errors.New("APP_HOST and APP_PORT must not be empty"))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN must not be empty"))
	}
	if c.RateLimit <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0"))
	}
	if c.DefaultLocale == "" {
		errs = append(errs, errors.New("DEFAULT_LOCALE must not be empty"))
	}
	if c.CacheEnabled {
		if c.RedisHost == "" {
			errs = append(errs, errors.New("REDIS_HOST must not be empty when the autocomplete cache is enabled"))
		}
		if c.AutocompleteTTLSeconds <= 0 {
			errs = append(errs, errors.New("AUTOCOMPLETE_TTL_SECONDS must be greater than 0"))
		}
		if c.AutocompleteRefreshSeconds <= 0 {
			errs = append(errs, errors.New("AUTOCOMPLETE_REFRESH_SECONDS must be greater than 0"))
		}
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0"))
	}
	return errors.Join(errs...)
}
