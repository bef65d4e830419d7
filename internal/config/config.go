package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port             string        `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	OTelEnabled      bool          `env:"OTEL_ENABLED" envDefault:"true"`
	OTelServiceName  string        `env:"OTEL_SERVICE_NAME" envDefault:"localflavor-api" validate:"required"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	JWTSecret        string        `env:"JWT_SECRET"`
	JWTIssuer        string        `env:"JWT_ISSUER" envDefault:"localflavor-api" validate:"required"`
	BatchMaxItems    int           `env:"BATCH_MAX_ITEMS" envDefault:"100" validate:"min=1,max=1000"`
	BatchConcurrency int           `env:"BATCH_CONCURRENCY" envDefault:"8" validate:"min=1,max=64"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
