package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	// RateLimit is the ulule/limiter formatted rate for the intent API,
	// e.g. "60-M" for 60 requests per minute.
	RateLimit string
	// ChangeSeed, when non-zero, makes denomination stock draws
	// reproducible. Zero keeps the per-transaction random restock.
	ChangeSeed uint64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CHANGE_SEED", 0)

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.ChangeSeed = viper.GetUint64("CHANGE_SEED")

	return cfg, nil
}
