package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Remote store. Both values are required secrets: StoreURL is the
	// Postgres endpoint URL, StoreKey the access key injected as its
	// password. Missing either is a fatal startup condition.
	StoreURL string `mapstructure:"STORE_URL"`
	StoreKey string `mapstructure:"STORE_KEY"`

	// Optional category-list cache. Empty disables caching.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Browse window size.
	RecentLimit int `mapstructure:"RECENT_LIMIT"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("RECENT_LIMIT", 10)
	viper.SetDefault("REDIS_URL", "")
	// Registered with empty defaults so AutomaticEnv can fill them; emptiness
	// is rejected below.
	viper.SetDefault("STORE_URL", "")
	viper.SetDefault("STORE_KEY", "")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.StoreURL == "" {
		return nil, fmt.Errorf("STORE_URL is required")
	}
	if cfg.StoreKey == "" {
		return nil, fmt.Errorf("STORE_KEY is required")
	}
	if _, err := url.Parse(cfg.StoreURL); err != nil {
		return nil, fmt.Errorf("STORE_URL invalid: %w", err)
	}
	if cfg.RecentLimit <= 0 {
		return nil, fmt.Errorf("RECENT_LIMIT must be positive, got %d", cfg.RecentLimit)
	}
	return cfg, nil
}

// StoreDSN combines the endpoint URL and access key into the connection
// string handed to the store client.
func (c *Config) StoreDSN() (string, error) {
	u, err := url.Parse(c.StoreURL)
	if err != nil {
		return "", fmt.Errorf("STORE_URL invalid: %w", err)
	}
	user := "magazyn"
	if u.User != nil {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.StoreKey)
	return u.String(), nil
}
