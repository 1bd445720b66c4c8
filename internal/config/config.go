// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"MATHLOG_DB_PATH" envDefault:"./data/mathlog.db"`
	ServerHost string `env:"MATHLOG_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"MATHLOG_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"MATHLOG_ENV" envDefault:"development"`
	LogLevel   string `env:"MATHLOG_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL     string `env:"MATHLOG_REDIS_URL"`                          // Optional Redis URL for distributed caching
	CachePrefix  string `env:"MATHLOG_CACHE_PREFIX" envDefault:"mathlog:"` // Redis key prefix
	CacheTTL     int    `env:"MATHLOG_CACHE_TTL" envDefault:"300"`         // Default cache TTL in seconds
	CacheMaxSize int    `env:"MATHLOG_CACHE_MAX_SIZE" envDefault:"10000"`  // Max memory cache entries

	// CORS configuration for the headless API
	CORSOrigins string `env:"MATHLOG_CORS_ORIGINS" envDefault:"*"` // Comma-separated list of allowed origins

	// Event log retention
	EventRetentionDays int `env:"MATHLOG_EVENT_RETENTION_DAYS" envDefault:"30"`

	// Seeding configuration
	DoSeed bool `env:"MATHLOG_DO_SEED" envDefault:"true"` // Seed example posts when the store is empty
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// AllowedOrigins returns the configured CORS origins as a slice.
func (c Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("MATHLOG_SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	if cfg.EventRetentionDays < 1 {
		return nil, fmt.Errorf("MATHLOG_EVENT_RETENTION_DAYS must be positive, got %d", cfg.EventRetentionDays)
	}

	return cfg, nil
}
