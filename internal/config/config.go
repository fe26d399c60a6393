package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration, populated from the environment.
type Config struct {
	Port      string `envconfig:"PORT" default:"3000"`
	DBDriver  string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath    string `envconfig:"DB_PATH" default:"./data/billmint.sqlite"`
	DBURL     string `envconfig:"DATABASE_URL"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
