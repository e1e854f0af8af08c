package config

import "github.com/kelseyhightower/envconfig"

// Config holds process configuration, read from the environment. An empty
// DATABASE_URL switches the kiosk to the seeded in-memory store.
type Config struct {
	Port          string `envconfig:"PORT" default:"8080"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
