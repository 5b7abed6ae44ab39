package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/ilkhanul13/portfolio101/pkg/config"
)

// Config holds all configuration for the portfolio API.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// PostgreSQL. No host default on purpose: an empty host means the
	// testimonial store is not configured and the site runs without it.
	PostgresHost     string `env:"POSTGRES_HOST"`
	PostgresPort     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"portfolio"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:""`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"portfolio"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	// Stats aggregation. Exact scans every approved row; turning it off
	// bounds the aggregate to the newest StatsSampleSize rows.
	StatsExact      bool `env:"STATS_EXACT" envDefault:"true"`
	StatsSampleSize int  `env:"STATS_SAMPLE_SIZE" envDefault:"20"`

	// Redis stats cache. Empty host disables caching.
	RedisHost     string        `env:"REDIS_HOST"`
	RedisPort     int           `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string        `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	StatsCacheTTL time.Duration `env:"STATS_CACHE_TTL" envDefault:"5m"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Admin moderation. Empty token leaves the moderation routes unmounted.
	AdminToken string `env:"ADMIN_TOKEN"`

	// SMTP contact relay. Empty host selects the logging mock sender.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"noreply@localhost"`
	MailTo       string `env:"MAIL_TO" envDefault:"owner@localhost"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load portfolio config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StoreConfigured reports whether a testimonial store was configured at all.
func (c *Config) StoreConfigured() bool {
	return c.PostgresHost != ""
}

// CacheConfigured reports whether a Redis stats cache was configured.
func (c *Config) CacheConfigured() bool {
	return c.RedisHost != ""
}

// SMTPConfigured reports whether a real mail relay was configured.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != ""
}

// StatsSampleLimit returns the row cap for stats aggregation, zero for exact.
func (c *Config) StatsSampleLimit() int {
	if c.StatsExact {
		return 0
	}
	return c.StatsSampleSize
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if !c.StatsExact && c.StatsSampleSize < 1 {
		return fmt.Errorf("invalid stats sample size: %d", c.StatsSampleSize)
	}
	if c.StatsCacheTTL <= 0 {
		return fmt.Errorf("invalid stats cache TTL: %s", c.StatsCacheTTL)
	}
	return nil
}
