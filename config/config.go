// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the HTTP API configuration.
type Config struct {
	Addr         string        `env:"HOMEBUY_ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"HOMEBUY_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"HOMEBUY_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"HOMEBUY_IDLE_TIMEOUT" envDefault:"60s"`

	// RedisAddr selects the Redis cache; empty keeps evaluations in process.
	RedisAddr string        `env:"HOMEBUY_REDIS_ADDR"`
	CacheTTL  time.Duration `env:"HOMEBUY_CACHE_TTL" envDefault:"1h"`

	RateLimit  int           `env:"HOMEBUY_RATE_LIMIT" envDefault:"30"`
	RateWindow time.Duration `env:"HOMEBUY_RATE_WINDOW" envDefault:"1m"`

	OpenAIKey string `env:"OPENAI_API_KEY"`
	AIURL     string `env:"HOMEBUY_AI_URL"`
	AIModel   string `env:"HOMEBUY_AI_MODEL" envDefault:"gpt-4o-mini"`
}

// Load parses the environment into a Config.
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

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: address is required")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("config: rate limit must be positive, got %d", c.RateLimit)
	}
	if c.RateWindow <= 0 {
		return fmt.Errorf("config: rate window must be positive, got %s", c.RateWindow)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config: cache ttl cannot be negative")
	}
	return nil
}
