// Package config defines the storefront application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/kbagha/storefront/pkg/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Log      LogConfig      `koanf:"log"`
	Cart     CartConfig     `koanf:"cart"`
	Storage  StorageConfig  `koanf:"storage"`
	Nats     NatsConfig     `koanf:"nats"`
	Shutdown ShutdownConfig `koanf:"shutdown"`
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Cart ---\n")
	b.WriteString(fmt.Sprintf("  cart.slot: %s\n", c.Cart.Slot))
	b.WriteString(fmt.Sprintf("  cart.maxPerLine: %d\n", c.Cart.MaxPerLine))

	b.WriteString("\n--- Storage ---\n")
	b.WriteString(fmt.Sprintf("  storage.backend: %s\n", c.Storage.Backend))
	b.WriteString(fmt.Sprintf("  storage.dir: %s\n", c.Storage.Dir))
	b.WriteString(fmt.Sprintf("  storage.redis.addr: %s\n", c.Storage.Redis.Addr))
	b.WriteString(fmt.Sprintf("  storage.redis.db: %d\n", c.Storage.Redis.DB))

	b.WriteString("\n--- Messaging ---\n")
	b.WriteString(fmt.Sprintf("  nats.enabled: %t\n", c.Nats.Enabled))
	b.WriteString(fmt.Sprintf("  nats.url: %s\n", c.Nats.URL))
	b.WriteString(fmt.Sprintf("  nats.timeout: %s\n", c.Nats.Timeout))

	b.WriteString("\n--- Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))

	b.WriteString("\n--- Application Behavior ---\n")
	b.WriteString(fmt.Sprintf("  shutdown.timeout: %s\n", c.Shutdown.Timeout))

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Cart.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Nats.Validate(); err != nil {
		return err
	}
	return c.Shutdown.Validate()
}
