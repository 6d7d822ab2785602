package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds everything the service reads from the environment.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME" envDefault:"orderflow"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	JWTSecret string `env:"JWT_SECRET,required"`

	// NotifyChannel is the Redis channel transition events are published
	// to. Empty picks the notifier's default.
	NotifyChannel string `env:"NOTIFY_CHANNEL"`

	// DeliveryConfirmationWindow is how long a shipped order waits for an
	// explicit customer confirmation before the background sweep closes it.
	DeliveryConfirmationWindow time.Duration `env:"DELIVERY_CONFIRMATION_WINDOW" envDefault:"168h"`
}

// ParseConfig reads the configuration from the environment.
func ParseConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return config, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
