// Package config loads runtime settings from the environment
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings controls everything outside gameplay tuning
// CLI flags override fields after Load
type Settings struct {
	Debug      bool   `env:"ALLERBEES_DEBUG"`
	Mute       bool   `env:"ALLERBEES_MUTE"`
	TuningFile string `env:"ALLERBEES_TUNING"`
	DataDir    string `env:"ALLERBEES_DATA_DIR" envDefault:"data"`

	Journal bool `env:"ALLERBEES_JOURNAL" envDefault:"true"`
	History bool `env:"ALLERBEES_HISTORY" envDefault:"true"`

	// ObserveAddr enables the spectator server when non-empty (e.g. ":8787")
	ObserveAddr string `env:"ALLERBEES_OBSERVE_ADDR"`

	OTelEndpoint string `env:"ALLERBEES_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"ALLERBEES_OTEL_ENABLED" envDefault:"true"`

	Tick time.Duration `env:"ALLERBEES_TICK" envDefault:"16ms"`
}

// Load parses settings from environment variables with defaults
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.Tick <= 0 {
		return Settings{}, fmt.Errorf("parse env: ALLERBEES_TICK must be positive, got %s", s.Tick)
	}
	return s, nil
}

// HistoryPath is the SQLite database file
func (s Settings) HistoryPath() string {
	return filepath.Join(s.DataDir, "history.db")
}

// JournalDir holds rotated journal files
func (s Settings) JournalDir() string {
	return filepath.Join(s.DataDir, "journal")
}

// TelemetryEnabled reports whether traces should be exported
func (s Settings) TelemetryEnabled() bool {
	return s.OTelEnabled && s.OTelEndpoint != ""
}
