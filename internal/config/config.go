package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Redis RedisConfig

	RateLimit       int           `env:"RATE_LIMIT" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	Goals GoalConfig

	RolloverEnabled       bool          `env:"ROLLOVER_ENABLED" envDefault:"false"`
	RolloverCheckInterval time.Duration `env:"ROLLOVER_CHECK_INTERVAL" envDefault:"1m"`
	Timezone              string        `env:"TIMEZONE" envDefault:"UTC"`

	SwaggerEnabled bool `env:"SWAGGER_ENABLED" envDefault:"true"`
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type GoalConfig struct {
	Sleep      *float64 `env:"SLEEP_GOAL"`
	Water      *float64 `env:"WATER_GOAL"`
	ScreenTime *float64 `env:"SCREEN_TIME_GOAL"`
}

func (g GoalConfig) Overrides() map[domain.MetricID]float64 {
	out := make(map[domain.MetricID]float64)
	if g.Sleep != nil {
		out[domain.MetricSleep] = *g.Sleep
	}
	if g.Water != nil {
		out[domain.MetricWater] = *g.Water
	}
	if g.ScreenTime != nil {
		out[domain.MetricScreenTime] = *g.ScreenTime
	}
	return out
}

// Load reads an optional dotenv file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: PORT cannot be empty")
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("config: GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("config: RATE_LIMIT must be positive, got %d", c.RateLimit)
	}
	if c.RateLimitWindow <= 0 {
		return errors.New("config: RATE_LIMIT_WINDOW must be positive")
	}
	for id, goal := range c.Goals.Overrides() {
		if goal <= 0 {
			return fmt.Errorf("config: goal override for %s must be positive, got %v", id, goal)
		}
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
