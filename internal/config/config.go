package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "change-me-in-production"

type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`

	// Database configuration
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSLMODE"`
	ConnectRetries   int    `mapstructure:"CONNECT_RETRIES"`
	MigrationsDir    string `mapstructure:"MIGRATIONS_DIR"`

	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	KafkaBroker string `mapstructure:"KAFKA_BROKER"`

	JWTSecret     string `mapstructure:"JWT_SECRET"`
	RBACModelPath string `mapstructure:"RBAC_MODEL_PATH"`

	// Scheduling
	Timezone         string `mapstructure:"APP_TIMEZONE"`
	DefaultCompanyID string `mapstructure:"DEFAULT_COMPANY_ID"`
	DefaultAreaID    string `mapstructure:"DEFAULT_AREA_ID"`

	// Background work
	OutboxPollInterval      time.Duration `mapstructure:"OUTBOX_POLL_INTERVAL"`
	DocumentRefreshInterval time.Duration `mapstructure:"DOCUMENT_REFRESH_INTERVAL"`
	ConsumerGroupID         string        `mapstructure:"CONSUMER_GROUP_ID"`
}

// Load reads configuration from an optional config.yaml and the environment.
// Environment variables win.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "3000")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "innout")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("CONNECT_RETRIES", 5)
	v.SetDefault("MIGRATIONS_DIR", "migrations")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("KAFKA_BROKER", "localhost:9092")

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("RBAC_MODEL_PATH", "")

	v.SetDefault("APP_TIMEZONE", "America/Guatemala")
	v.SetDefault("DEFAULT_COMPANY_ID", "")
	v.SetDefault("DEFAULT_AREA_ID", "")

	v.SetDefault("OUTBOX_POLL_INTERVAL", 3*time.Second)
	v.SetDefault("DOCUMENT_REFRESH_INTERVAL", time.Hour)
	v.SetDefault("CONSUMER_GROUP_ID", "innout-notifications")
}

func validate(cfg *Config) error {
	if cfg.IsProduction() && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if cfg.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	if cfg.DocumentRefreshInterval <= 0 || cfg.OutboxPollInterval <= 0 {
		return fmt.Errorf("background intervals must be positive")
	}
	return nil
}

// Location returns the configured scheduling time zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DatabaseURL is the URL form of the connection settings, used by migrations.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
