package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigValidates(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zoom too small", func(c *Config) { c.DefaultZoom = 0.1 }},
		{"zoom too large", func(c *Config) { c.DefaultZoom = 10 }},
		{"negative cache capacity", func(c *Config) { c.Policy.CacheCapacity = -1 }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "chatty" }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateAcceptsUnboundedPolicyCache(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy.CacheCapacity = 0
	assert.NoError(t, cfg.Validate())
}
