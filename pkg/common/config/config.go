// Package config reads runtime settings from INVENTORY_* environment variables.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const appID = "inventory"

type Config struct {
	LogLevel        string        `envconfig:"log_level" default:"info"`
	LogFormat       string        `envconfig:"log_format" default:"json"`
	LogFile         string        `envconfig:"log_file"`
	HTTPAddress     string        `envconfig:"http_address" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"shutdown_timeout" default:"10s"`
}

func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return nil, errors.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return nil, errors.New("shutdown timeout must be positive")
	}
	return c, nil
}
