// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr         string        `envconfig:"HTTP_ADDR"          default:"0.0.0.0:5000" validate:"required,hostname_port"`
	DBDriver         string        `envconfig:"DB_DRIVER"          default:"sqlite"       validate:"oneof=sqlite mysql postgres"`
	DBDSN            string        `envconfig:"DB_DSN"             default:"ecommerce.db" validate:"required"`
	LogLevel         string        `envconfig:"LOG_LEVEL"          default:"info"         validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat        string        `envconfig:"LOG_FORMAT"         default:"json"         validate:"oneof=json text"`
	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT"  default:"10s"          validate:"gt=0"`
	HTTPWriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"          validate:"gt=0"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT"   default:"8s"           validate:"gt=0"`
}

// Load reads the optional .env files, then the process environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
