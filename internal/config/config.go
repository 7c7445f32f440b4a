// Package config loads importer settings from the environment
package config

import (
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/statblock-importer/internal/clients/compendium"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
)

// MaxLookupConcurrency caps parallel compendium lookups
const MaxLookupConcurrency = 32

// Config holds every setting the CLI reads from the environment. Flags
// override individual fields after Load.
type Config struct {
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`

	CompendiumURL      string        `env:"DND5E_API_URL"      envDefault:"https://www.dnd5eapi.co/api/2014/"`
	CompendiumTimeout  time.Duration `env:"DND5E_HTTP_TIMEOUT" envDefault:"30s"`
	CompendiumCacheTTL time.Duration `env:"DND5E_CACHE_TTL"    envDefault:"24h"`

	LookupConcurrency int    `env:"LOOKUP_CONCURRENCY"`
	LogLevel          string `env:"LOG_LEVEL"          envDefault:"info"`
}

// Load reads an optional .env file from the working directory or the given
// paths, then parses the environment. Variables already set win over the
// file.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings and fills zero values with defaults
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.LookupConcurrency == 0 {
		c.LookupConcurrency = importer.DefaultLookupConcurrency
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("lookup_concurrency", c.LookupConcurrency, 1, MaxLookupConcurrency, vb)
	if c.RedisDB < 0 {
		vb.Field("redis_db", "must not be negative")
	}
	if c.CompendiumTimeout < 0 {
		vb.Field("compendium_timeout", "must not be negative")
	}
	if c.CompendiumCacheTTL < 0 {
		vb.Field("compendium_cache_ttl", "must not be negative")
	}
	return vb.Build()
}

// Compendium returns the compendium client settings
func (c *Config) Compendium() *compendium.Config {
	return &compendium.Config{
		BaseURL:     c.CompendiumURL,
		HTTPTimeout: c.CompendiumTimeout,
		CacheTTL:    c.CompendiumCacheTTL,
	}
}
