package config

import (
	"fmt"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-errors"
)

const (
	// DefaultPort is used when PORT is unset
	DefaultPort = 4444
	// DefaultTokenExpiration is the bearer token TTL in hours (30 days)
	DefaultTokenExpiration = 30 * 24
	// DefaultIssuer is stamped into every issued token
	DefaultIssuer = "landing-api"
)

// Config holds the process-wide settings. Loaded once at startup and passed
// by reference into every component; nothing reads the environment after Load
// returns.
type Config struct {
	DBConnectionString string
	SigningKey         string
	Port               int
	TokenExpiration    int
	Issuer             string
	ContextKey         string
	AuthScheme         string
}

// Load reads settings from the environment and validates them.
// DB_CONNECTION_STRING and SECRET_KEY are required.
func Load() (*Config, error) {
	cfg := &Config{
		DBConnectionString: os.Getenv("DB_CONNECTION_STRING"),
		SigningKey:         os.Getenv("SECRET_KEY"),
		Port:               DefaultPort,
		TokenExpiration:    DefaultTokenExpiration,
		Issuer:             DefaultIssuer,
		ContextKey:         "user",
		AuthScheme:         "Bearer",
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryValidation, "PORT must be a number")
		}
		cfg.Port = port
	}

	if raw := os.Getenv("TOKEN_TTL_HOURS"); raw != "" {
		ttl, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryValidation, "TOKEN_TTL_HOURS must be a number")
		}
		cfg.TokenExpiration = ttl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate will run validation rules
func (c *Config) Validate() error {
	if err := errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(c,
			validation.Field(&c.DBConnectionString, validation.Required),
			validation.Field(&c.SigningKey, validation.Required),
			validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
			validation.Field(&c.TokenExpiration, validation.Required, validation.Min(1)),
		)
	}, "invalid process configuration"); err != nil {
		return err
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) GetSigningKey() string   { return c.SigningKey }
func (c *Config) GetTokenExpiration() int { return c.TokenExpiration }
func (c *Config) GetIssuer() string       { return c.Issuer }
func (c *Config) GetContextKey() string   { return c.ContextKey }
func (c *Config) GetAuthScheme() string   { return c.AuthScheme }
