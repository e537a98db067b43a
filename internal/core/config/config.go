package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL    string        `envconfig:"DATABASE_URL" required:"true"`
	AppHost        string        `envconfig:"APP_HOST" default:":8080"`
	MigrationsDir  string        `envconfig:"MIGRATIONS_DIR" default:"./migrations"`
	RunMigrations  bool          `envconfig:"RUN_MIGRATIONS" default:"false"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"debug"`
	LogFormat      string        `envconfig:"LOG_FORMAT" default:"console"`
	Version        string        `envconfig:"APP_VERSION" default:"1.0.0"`

	// RateLimit is requests per client IP per RateLimitWindow. Zero disables it.
	RateLimit       int           `envconfig:"RATE_LIMIT" default:"0"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// Load reads .env when present without overriding variables that are
// already set, then decodes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}
