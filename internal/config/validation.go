package config

import (
	"fmt"

	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/logging"
)

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.DefaultZoom < entity.ZoomMin || c.DefaultZoom > entity.ZoomMax {
		return fmt.Errorf("default_zoom %.2f out of range [%.2f, %.2f]",
			c.DefaultZoom, entity.ZoomMin, entity.ZoomMax)
	}
	if c.Policy.CacheCapacity < 0 {
		return fmt.Errorf("policy.cache_capacity must not be negative, got %d", c.Policy.CacheCapacity)
	}
	if c.Logging.Level != "" {
		if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
			return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
		}
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("unknown logging.format %q (want console or json)", c.Logging.Format)
	}
	return nil
}
