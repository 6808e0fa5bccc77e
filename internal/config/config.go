// Package config defines the configuration model and XDG path helpers.
package config

// Config is the root configuration structure.
type Config struct {
	// DefaultZoom applies to domains without a persisted zoom level.
	DefaultZoom float64 `mapstructure:"default_zoom" json:"default_zoom"`

	Database  DatabaseConfig  `mapstructure:"database" json:"database"`
	Logging   LoggingConfig   `mapstructure:"logging" json:"logging"`
	Policy    PolicyConfig    `mapstructure:"policy" json:"policy"`
	Downloads DownloadsConfig `mapstructure:"downloads" json:"downloads"`
}

// DatabaseConfig configures the state database.
type DatabaseConfig struct {
	// Path to the SQLite file. Empty selects the XDG state location.
	Path string `mapstructure:"path" json:"path"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// PolicyConfig configures the navigation policy state.
type PolicyConfig struct {
	// CacheCapacity bounds the number of tracked URLs. Zero keeps every
	// entry for the process lifetime.
	CacheCapacity int `mapstructure:"cache_capacity" json:"cache_capacity"`
}

// DownloadsConfig configures download hand-off.
type DownloadsConfig struct {
	// Path is the destination directory. Empty selects ~/Downloads.
	Path string `mapstructure:"path" json:"path"`
}
