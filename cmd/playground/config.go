package main

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/msgkit/pkg/logger"
)

// Config describes runtime configuration for the playground.
type Config struct {
	// HTTPHost is the HTTP listen host.
	HTTPHost string `env:"PLAYGROUND_HTTP_HOST" envDefault:"127.0.0.1"`
	// HTTPPort is the HTTP listen port.
	HTTPPort int `env:"PLAYGROUND_HTTP_PORT" envDefault:"8080"`
	// DefaultLocale is served when no preference matches.
	DefaultLocale string `env:"PLAYGROUND_DEFAULT_LOCALE" envDefault:"en-US"`
	// Locales lists the additional locales to offer.
	Locales []string `env:"PLAYGROUND_LOCALES" envDefault:"nl-NL,fr-FR" envSeparator:","`
	// Matcher is the locale matching algorithm: "best fit" or "lookup".
	Matcher string `env:"PLAYGROUND_MATCHER" envDefault:"best fit"`
	// SanitizeMessages runs rendered messages through a bluemonday policy.
	SanitizeMessages bool `env:"PLAYGROUND_SANITIZE_MESSAGES" envDefault:"true"`
	// ShutdownTimeout is the graceful shutdown timeout.
	ShutdownTimeout time.Duration `env:"PLAYGROUND_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Log logger.Config
}

// loadConfig parses configuration from environment variables.
func loadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	cfg.DefaultLocale = strings.TrimSpace(cfg.DefaultLocale)
	if cfg.DefaultLocale == "" {
		return Config{}, errors.New("default locale is required")
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return Config{}, errors.New("http port must be between 1 and 65535")
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, errors.New("shutdown timeout must be positive")
	}

	return cfg, nil
}

// HTTPAddr returns a listen address for the HTTP server.
func (c Config) HTTPAddr() string {
	return net.JoinHostPort(strings.TrimSpace(c.HTTPHost), strconv.Itoa(c.HTTPPort))
}
