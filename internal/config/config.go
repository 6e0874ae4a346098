package config

import (
	"fmt"
	"time"

	"github.com/stockroomhq/stockroom/pkg/config"
	"github.com/stockroomhq/stockroom/pkg/database"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"stockroom"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"stockroom"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"stockroom"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	PoolMaxConns        int           `env:"POOL_MAX_CONNS" envDefault:"10"`
	PoolMinConns        int           `env:"POOL_MIN_CONNS" envDefault:"2"`
	PoolMaxConnLifetime time.Duration `env:"POOL_MAX_CONN_LIFETIME" envDefault:"30m"`

	// StockLowThreshold is the quantity below which a stock level is
	// considered low and a notification is emitted.
	StockLowThreshold int `env:"STOCK_LOW_THRESHOLD" envDefault:"10"`

	// NotifierMode selects how low-stock alerts are delivered: "log" writes
	// them to the application log, "store" persists Notification rows.
	NotifierMode string `env:"NOTIFIER_MODE" envDefault:"store"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.StockLowThreshold < 0 {
		return fmt.Errorf("invalid STOCK_LOW_THRESHOLD: %d", c.StockLowThreshold)
	}
	switch c.NotifierMode {
	case "log", "store":
	default:
		return fmt.Errorf("invalid NOTIFIER_MODE: %q", c.NotifierMode)
	}
	return nil
}

// Postgres builds the database pool configuration.
func (c *Config) Postgres() database.PostgresConfig {
	return database.PostgresConfig{
		Host:            c.PostgresHost,
		Port:            c.PostgresPort,
		User:            c.PostgresUser,
		Password:        c.PostgresPassword,
		DBName:          c.PostgresDB,
		SSLMode:         c.PostgresSSLMode,
		MaxConns:        int32(c.PoolMaxConns),
		MinConns:        int32(c.PoolMinConns),
		MaxConnLifetime: c.PoolMaxConnLifetime,
	}
}
