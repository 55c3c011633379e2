package config

import "sync"

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// SetGlobal installs the process-wide configuration snapshot. Called once at
// startup, before any command executes.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// Global returns the process-wide configuration snapshot. Before SetGlobal
// has run (unit tests, mostly) it falls back to the embedded defaults.
func Global() *Config {
	globalMu.RLock()
	cfg := globalCfg
	globalMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	loaded, err := Load("")
	if err != nil {
		// Embedded defaults always parse; a failure here means the binary
		// itself is broken.
		panic(err)
	}
	SetGlobal(loaded)
	return loaded
}
