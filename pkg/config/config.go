// Package config loads service settings from defaults, an optional .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	MongoURI        string        `mapstructure:"MONGO_URI"`
	MongoDB         string        `mapstructure:"MONGO_DB"`
	MongoCollection string        `mapstructure:"MONGO_COLLECTION"`
	Port            string        `mapstructure:"PORT"`
	JWTSecret       string        `mapstructure:"JWT_SECRET"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	RedisURL        string        `mapstructure:"REDIS_URL"`
	RateLimitMax    int           `mapstructure:"RATE_LIMIT_MAX"`
	RateLimitWindow time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	CORSOrigins     []string      `mapstructure:"CORS_ORIGINS"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]interface{}{
	"MONGO_URI":         "",
	"MONGO_DB":          "postshare",
	"MONGO_COLLECTION":  "posts",
	"PORT":              "5000",
	"JWT_SECRET":        "",
	"LOG_LEVEL":         "info",
	"REDIS_URL":         "",
	"RATE_LIMIT_MAX":    100,
	"RATE_LIMIT_WINDOW": "15m",
	"CORS_ORIGINS":      "*",
	"SHUTDOWN_TIMEOUT":  "5s",
}

// Load reads the configuration. It does not validate it, callers decide
// which keys they need (see Validate).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, def := range defaults {
		v.SetDefault(key, def)
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unable to decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks the keys the server can't start without.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return errors.New("MONGO_URI is not defined in environment variables")
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimitMax)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
