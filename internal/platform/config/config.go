package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders; nothing else
// in the tree reads the environment directly.
type Config struct {
	ServiceName string        `env:"SERVICE_NAME" envDefault:"inkwell"`
	HTTPPort    string        `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN string        `env:"POSTGRES_DSN"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost  int           `env:"BCRYPT_COST" envDefault:"10"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
