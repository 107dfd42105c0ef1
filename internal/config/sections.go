package config

import (
	"fmt"
	"time"
)

type LogConfig struct {
	Level string `koanf:"level"`
}

func (c *LogConfig) Validate() error {
	return nil
}

// CartConfig holds cart behavior knobs. MaxPerLine is the per-line
// quantity cap enforced by the UI layer before calling Add.
type CartConfig struct {
	Slot       string `koanf:"slot"`
	MaxPerLine int    `koanf:"max_per_line"`
}

func (c *CartConfig) Validate() error {
	if c.MaxPerLine < 0 {
		return fmt.Errorf("cart.max_per_line must not be negative")
	}
	return nil
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	Backend string      `koanf:"backend"` // memory, file or redis
	Dir     string      `koanf:"dir"`     // file backend root
	Redis   RedisConfig `koanf:"redis"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

func (c *StorageConfig) Validate() error {
	switch c.Backend {
	case "memory":
	case "file":
		if c.Dir == "" {
			return fmt.Errorf("storage.dir is required for the file backend")
		}
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("storage.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
	return nil
}

type NatsConfig struct {
	Enabled bool          `koanf:"enabled"`
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

func (c *NatsConfig) Validate() error {
	if c.Enabled && c.URL == "" {
		return fmt.Errorf("nats.url is required when nats is enabled")
	}
	return nil
}

type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("shutdown timeout is not configured")
	}
	return nil
}
