package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// JWTSecret defaults to the mock's well-known key. Override it anywhere
	// this runs outside local development.
	JWTSecret string        `env:"JWT_SECRET, default=ThisIsASecretKey10101010"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`

	Latency LatencyConfig
	Login   LoginConfig
}

// LatencyConfig controls the artificial delay injected before every API
// request to simulate network jitter.
type LatencyConfig struct {
	Enabled bool          `env:"LATENCY_ENABLED, default=true"`
	Min     time.Duration `env:"LATENCY_MIN,     default=100ms"`
	Max     time.Duration `env:"LATENCY_MAX,     default=600ms"`
}

// LoginConfig controls the per-IP token bucket on the login endpoint.
type LoginConfig struct {
	Rate  float64 `env:"LOGIN_RATE,  default=5"`
	Burst int     `env:"LOGIN_BURST, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
