package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/devconnector/pkg/httpx"
	"github.com/aussiebroadwan/devconnector/pkg/jwtx"
	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	JWTSecret string        `env:"DEVCONNECTOR_JWT_SECRET,required,notEmpty"` // Required: HS256 signing secret
	TokenTTL  time.Duration `env:"DEVCONNECTOR_TOKEN_TTL"`                    // Optional: token lifetime (default: 100h)

	StoreDriver  string `env:"DEVCONNECTOR_STORE_DRIVER" envDefault:"sqlite"`           // sqlite or postgres
	DatabaseFile string `env:"DEVCONNECTOR_DATABASE_FILE" envDefault:"devconnector.db"` // SQLite file
	DatabaseURL  string `env:"DEVCONNECTOR_DATABASE_URL"`                               // Postgres DSN, required for postgres

	GitHubAPIURL string `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	GitHubToken  string `env:"GITHUB_TOKEN"` // Optional: raises the upstream rate limit

	Env       string `env:"ENV" envDefault:"dev"`         // dev, staging, prod
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json, text
	LogFile   string `env:"LOG_FILE"`                     // Optional: rotated copy of the log

	Port                int           `env:"PORT" envDefault:"5000"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	// RateLimits starts from httpx.DefaultRateLimits; any
	// RATELIMIT_<PROFILE>_{REQUESTS,WINDOW,BURST} variable overrides one field.
	RateLimits httpx.RateLimits `envPrefix:"RATELIMIT_"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	cfg := Config{
		TokenTTL:   jwtx.DefaultTokenTTL,
		RateLimits: httpx.DefaultRateLimits(),
	}

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DEVCONNECTOR_DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}

	if c.TokenTTL <= 0 {
		return errors.New("DEVCONNECTOR_TOKEN_TTL must be positive")
	}
	return nil
}
