package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server captures process-wide configuration. FromEnv is the only constructor
// so main stays lean and every default lives in one place.
type Server struct {
	Addr     string `env:"LAWPOINT_ADDR" envDefault:":4000"`
	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017/lawpoint"`

	// JWTSigningKey has no default on purpose. The service refuses to start
	// without it rather than silently signing tokens with a guessable value.
	JWTSigningKey string        `env:"LAWPOINT_JWT_SECRET"`
	TokenTTL      time.Duration `env:"LAWPOINT_TOKEN_TTL" envDefault:"168h"`
	BcryptCost    int           `env:"LAWPOINT_BCRYPT_COST" envDefault:"10"`
}

// FromEnv builds a Server config from environment variables, loading a local
// .env file first when one exists.
func FromEnv() (Server, error) {
	_ = godotenv.Load()

	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSigningKey == "" {
		return Server{}, errors.New("LAWPOINT_JWT_SECRET must be set")
	}
	if cfg.TokenTTL <= 0 {
		return Server{}, errors.New("LAWPOINT_TOKEN_TTL must be positive")
	}

	return cfg, nil
}
