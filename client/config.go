package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings read from NASCAR_* environment variables.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"https://cf.nascar.com"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
	UserAgent   string        `envconfig:"USER_AGENT" default:"nascar-client-go/1"`
	// Timezone applies to race dates without an offset; empty means the local zone.
	Timezone string `envconfig:"TIMEZONE" default:""`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("NASCAR", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration into client options.
func (cfg Config) Options() ([]Option, error) {
	opts := []Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithDebugLogging(cfg.Debug),
		WithUserAgent(cfg.UserAgent),
	}
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load config: timezone: %w", err)
		}
		opts = append(opts, WithLocation(loc))
	}
	return opts, nil
}

// NewFromEnv builds a Client from NASCAR_* variables. Explicit opts are
// applied after the environment and win.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	envOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(envOpts, opts...)...)
}
