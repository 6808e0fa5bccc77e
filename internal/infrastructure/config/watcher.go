package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/textshop/inlay/internal/config"
	"github.com/textshop/inlay/internal/logging"
)

// Watch starts watching the config file and reloads on external changes.
// Registered callbacks run after each successful reload.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		if err := m.reloadLocked(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("failed to reload config, keeping previous")
			return
		}
		m.notifyCallbacksLocked()
	})

	m.watching = true
}

// notifyCallbacksLocked snapshots callbacks and config, releases the lock,
// then notifies. Caller holds the write lock.
func (m *Manager) notifyCallbacksLocked() {
	cfg := m.config
	callbacks := make([]func(*config.Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

// OnConfigChange registers a reload callback.
func (m *Manager) OnConfigChange(cb func(*config.Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}
