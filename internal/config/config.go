package config

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/nfrund/loginform/internal/authclient"
)

// Provider is the read-only view of the configuration handed to the rest of
// the application.
type Provider interface {
	GetAppAddr() string
	GetAuthEndpoint() string
	GetSessionSecret() string
	GetHomeRoute() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string
	AuthEndpoint  string
	SessionSecret string
	HomeRoute     string
}

// New loads configuration from a .env file, if present, and the environment.
func New() (*Config, error) {
	LoadEnv()

	cfg := &Config{
		AppAddr:       getenv("APP_ADDR", ":8080"),
		AuthEndpoint:  AuthEndpoint(),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		HomeRoute:     getenv("APP_HOME_ROUTE", "/"),
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("required environment variable SESSION_SECRET is not set")
	}
	return cfg, nil
}

// LoadEnv loads a .env file into the environment if one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on environment variables")
	}
}

// AuthEndpoint returns the configured authentication endpoint or the default.
func AuthEndpoint() string {
	return getenv("APP_AUTH_ENDPOINT", authclient.DefaultEndpoint)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAppAddr() string       { return c.AppAddr }
func (c *Config) GetAuthEndpoint() string  { return c.AuthEndpoint }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetHomeRoute() string     { return c.HomeRoute }
