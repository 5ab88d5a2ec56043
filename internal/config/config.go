package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Application settings
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	// Database settings
	MongoURI     string `envconfig:"MONGO_URI" required:"true"`
	DatabaseName string `envconfig:"DB_NAME" default:"songs"`

	// Pagination settings
	PageSizeDefault int `envconfig:"PAGE_SIZE_DEFAULT" default:"10"`
	PageSizeMax     int `envconfig:"PAGE_SIZE_MAX" default:"100"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.PageSizeDefault < 1 {
		return nil, fmt.Errorf("PAGE_SIZE_DEFAULT must be at least 1, got %d", cfg.PageSizeDefault)
	}
	if cfg.PageSizeMax < cfg.PageSizeDefault {
		return nil, fmt.Errorf("PAGE_SIZE_MAX (%d) must not be below PAGE_SIZE_DEFAULT (%d)",
			cfg.PageSizeMax, cfg.PageSizeDefault)
	}

	return &cfg, nil
}
