// config/config.go
package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the API
type Config struct {
	Port             string   `env:"PORT" envDefault:"8080"`
	InatorsFile      string   `env:"INATORS_FILE" envDefault:"names-list.inator"`
	GinMode          string   `env:"GIN_MODE" envDefault:"debug"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	NewRelicAppName  string   `env:"NEW_RELIC_APP_NAME" envDefault:"Random Inator API"`
	NewRelicLicense  string   `env:"NEW_RELIC_LICENSE_KEY"`
	RandomSeed       int64    `env:"RANDOM_SEED" envDefault:"0"`
}

// Load reads an optional .env file and parses the environment into a Config
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	return &cfg, nil
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return ":" + c.Port
}

// NewRelicEnabled reports whether a New Relic license key is configured
func (c *Config) NewRelicEnabled() bool {
	return c.NewRelicLicense != ""
}
