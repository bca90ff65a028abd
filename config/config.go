// Package config loads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/warp/fc60/factory"
	"github.com/warp/fc60/fc60"
	"github.com/warp/fc60/numerology"
)

// Config holds the server settings. Env fields may be overridden by flags
// before Resolve is called again.
type Config struct {
	Port        int      `env:"FC60_PORT"           envDefault:"8080"`
	CORSOrigins []string `env:"FC60_CORS_ORIGINS"   envSeparator:"," envDefault:"*"`
	SystemTag   string   `env:"FC60_DEFAULT_SYSTEM" envDefault:"pythagorean"`
	TZ          string   `env:"FC60_DEFAULT_TZ"     envDefault:"+00:00"`

	// Set by Resolve.
	System          numerology.System
	TZOffsetMinutes int
}

// Load parses the environment and resolves the defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve validates the raw settings and fills System and TZOffsetMinutes.
func (c *Config) Resolve() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	system, err := factory.NormalizeSystem(c.SystemTag)
	if err != nil {
		return fmt.Errorf("default system: %w", err)
	}
	off, err := fc60.ParseOffset(c.TZ)
	if err != nil {
		return fmt.Errorf("default tz: %w", err)
	}
	c.System, c.TZOffsetMinutes = system, off
	return nil
}
