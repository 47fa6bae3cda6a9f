package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	Debug    bool   `env:"DEBUG,    default=false"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins is the comma-separated list of allowed origins.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Database DatabaseConfig
	JWT      JWTConfig
}

type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL, default=postgres://localhost:5432/taskvault"`
	MinConns int32  `env:"DB_MIN_CONNS, default=5"`
	MaxConns int32  `env:"DB_MAX_CONNS, default=20"`
}

type JWTConfig struct {
	Secret          string `env:"JWT_SECRET"`
	Algorithm       string `env:"JWT_ALGORITHM,        default=HS256"`
	ExpirationHours int    `env:"JWT_EXPIRATION_HOURS, default=24"`
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("config: JWT_SECRET must be at least 32 characters")
	}
	return &cfg, nil
}
