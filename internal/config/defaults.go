package config

import (
	"os"
	"path/filepath"
)

// DefaultPolicyCacheCapacity bounds the policy URL cache when the user does
// not configure one.
const DefaultPolicyCacheCapacity = 1024

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultZoom: 1.0,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Policy: PolicyConfig{
			CacheCapacity: DefaultPolicyCacheCapacity,
		},
		Downloads: DownloadsConfig{
			Path: defaultDownloadsPath(),
		},
	}
}

func defaultDownloadsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Downloads")
}
