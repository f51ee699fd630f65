// Package config persists user preferences (window/tile sizing, renderer
// choice) to a JSON file in the platform config directory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const preferencesFilename = "preferences.json"

// Preferences are the persisted user settings.
type Preferences struct {
	TileSize int    `json:"tile_size,omitempty"`
	Renderer string `json:"renderer,omitempty"`
	SaveDir  string `json:"save_dir,omitempty"`

	path string
}

var (
	current     *Preferences
	currentOnce sync.Once

	// overridable in tests
	configDir = defaultConfigDir
)

func defaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "chimera"), nil
}

// Current returns the process-wide preferences, loading them from disk on
// first use. A missing or unreadable file yields defaults.
func Current() *Preferences {
	currentOnce.Do(func() {
		current = load()
	})
	return current
}

func load() *Preferences {
	p := &Preferences{TileSize: 0}

	dir, err := configDir()
	if err != nil {
		return p
	}
	p.path = filepath.Join(dir, preferencesFilename)

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	// Corrupt preferences fall back to defaults rather than failing startup.
	_ = json.Unmarshal(data, p)
	return p
}

func (p *Preferences) save() error {
	if p.path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		p.path = filepath.Join(dir, preferencesFilename)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// SetTileSize persists the tile/font size used by the graphical renderer.
func (p *Preferences) SetTileSize(size int) error {
	p.TileSize = size
	return p.save()
}

// SetRenderer persists the preferred renderer backend ("tui" or "ebiten").
func (p *Preferences) SetRenderer(name string) error {
	p.Renderer = name
	return p.save()
}

// SetSaveDir persists the save-slot directory.
func (p *Preferences) SetSaveDir(dir string) error {
	p.SaveDir = dir
	return p.save()
}
