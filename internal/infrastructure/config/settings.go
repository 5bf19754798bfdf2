package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/doeshing/logan/internal/domain"
	"github.com/doeshing/logan/internal/pkg/filesystem"
)

// Settings are the process-level knobs read from the environment and
// optionally overridden by CLI flags.
type Settings struct {
	Root    string        `env:"LOGAN_ROOT"`
	Debug   bool          `env:"LOGAN_DEBUG"`
	Timeout time.Duration `env:"LOGAN_TIMEOUT" envDefault:"0s"`
	NoColor bool          `env:"NO_COLOR"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// RootDir returns the configured root, defaulting to ~/.logan.
func (s Settings) RootDir() string {
	if s.Root != "" {
		return filesystem.ExpandPath(s.Root)
	}
	return filepath.Join(filesystem.UserHomeDir(), domain.DefaultRootDirname)
}

// Layout derives the immutable path layout for this run.
func (s Settings) Layout() domain.Layout {
	return domain.NewLayout(s.RootDir())
}
