package config

import (
	"fmt"
	"slices"
	"strconv"
	"time"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env  string `env:"ENV" env-required:"true"`
	HTTP HTTPConfig
	CORS CORSConfig
}

type HTTPConfig struct {
	Host              string        `env:"HTTP_HOST"`
	Port              string        `env:"HTTP_PORT" env-default:"3000"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" env-default:"*" env-separator:","`
}

// AllowsAllOrigins reports whether the wildcard origin is configured.
func (c CORSConfig) AllowsAllOrigins() bool {
	return slices.Contains(c.AllowOrigins, "*")
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env %q: must be %s, %s or %s", c.Env, EnvLocal, EnvDev, EnvProd)
	}

	port, err := strconv.Atoi(c.HTTP.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid http port %q: must be between 1 and 65535", c.HTTP.Port)
	}

	if c.HTTP.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("invalid http read header timeout %v: must be positive", c.HTTP.ReadHeaderTimeout)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid http shutdown timeout %v: must be positive", c.HTTP.ShutdownTimeout)
	}

	if len(c.CORS.AllowOrigins) == 0 {
		return fmt.Errorf("cors allow origins cannot be empty")
	}
	return nil
}
