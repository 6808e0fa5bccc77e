// Package config loads and watches the TOML configuration file through
// viper, on top of the model in internal/config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/textshop/inlay/internal/config"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	mu        sync.RWMutex
	viper     *viper.Viper
	config    *config.Config
	callbacks []func(*config.Config)
	watching  bool
}

// NewManager creates a configuration manager reading config.toml from the
// XDG config directory, with INLAY_-prefixed environment overrides.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := config.GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("INLAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "INLAY_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind INLAY_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "INLAY_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind INLAY_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load reads the configuration, creating a default file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := config.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reloadLocked()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w", m.viper.ConfigFileUsed(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config: %w", createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// reloadLocked re-unmarshals and validates; caller holds the write lock.
func (m *Manager) reloadLocked() error {
	cfg := &config.Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", m.viper.ConfigFileUsed(), err)
	}

	if cfg.Database.Path == "" {
		dbPath, err := config.GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		cfg.Database.Path = dbPath
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *config.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg := *m.config
	return &cfg
}

// ConfigFile returns the path of the configuration file in use.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0o750); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if _, err := config.GenerateSchemaFile(); err != nil {
		// Schema generation is best effort; the config itself is written.
		return nil
	}
	return nil
}

func (m *Manager) setDefaults() {
	defaults := config.DefaultConfig()

	m.viper.SetDefault("default_zoom", defaults.DefaultZoom)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("policy.cache_capacity", defaults.Policy.CacheCapacity)
	m.viper.SetDefault("downloads.path", defaults.Downloads.Path)
}
