package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port          string        `envconfig:"PORT" default:"8080"`
	Store         string        `envconfig:"STORE" default:"memory"`
	MySQLDSN      string        `envconfig:"MYSQL_DSN"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"30s"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if c.Store != "memory" && c.Store != "mysql" {
		return Config{}, fmt.Errorf("config: unknown STORE %q (want memory or mysql)", c.Store)
	}
	if c.Store == "mysql" && c.MySQLDSN == "" {
		return Config{}, fmt.Errorf("config: MYSQL_DSN is required when STORE=mysql")
	}
	return c, nil
}
