// Package config loads server settings from the environment
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
)

// Draft store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds the server settings. Command-line flags override these.
type Config struct {
	GRPCPort    int           `env:"TECHNIQUE_API_GRPC_PORT" envDefault:"50051"`
	MetricsPort int           `env:"TECHNIQUE_API_METRICS_PORT" envDefault:"9090"`
	Store       string        `env:"TECHNIQUE_API_STORE" envDefault:"memory"`
	RedisAddr   string        `env:"TECHNIQUE_API_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB     int           `env:"TECHNIQUE_API_REDIS_DB" envDefault:"0"`
	DraftTTL    time.Duration `env:"TECHNIQUE_API_DRAFT_TTL" envDefault:"24h"`
	LogLevel    string        `env:"TECHNIQUE_API_LOG_LEVEL" envDefault:"info"`

	// CatalogPath replaces the embedded effect catalog when set
	CatalogPath string `env:"TECHNIQUE_API_CATALOG_PATH"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	validatePort("grpc_port", c.GRPCPort, 1, vb)
	validatePort("metrics_port", c.MetricsPort, 0, vb)
	errors.ValidateEnum("store", c.Store, []string{StoreMemory, StoreRedis}, vb)
	if c.Store == StoreRedis {
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	}
	if c.DraftTTL <= 0 {
		vb.Field("draft_ttl", "must be positive")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.Field("log_level", err.Error())
	}

	return vb.Build()
}

// GRPCAddress is the listen address of the gRPC server
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// MetricsAddress is the listen address of the metrics server. A zero port
// disables it.
func (c *Config) MetricsAddress() string {
	if c.MetricsPort == 0 {
		return ""
	}
	return fmt.Sprintf(":%d", c.MetricsPort)
}

// ParseLogLevel maps debug, info, warn and error to slog levels
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", level)
	}
	return l, nil
}

// validatePort checks port against [lowest, 65535]. The metrics port
// allows 0 to disable the server.
func validatePort(field string, port, lowest int, vb *errors.ValidationBuilder) {
	if port < lowest || port > 65535 {
		vb.Fieldf(field, "must be between %d and 65535", lowest)
	}
}
