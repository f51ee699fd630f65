package menu

import (
	"time"
)

const (
	// maxHistoryEntries bounds the per-mode access history.
	maxHistoryEntries = 10

	// Anchor point for PositionFixed menus.
	fixedPosX = 100
	fixedPosY = 100
)

// Fallback screen dimensions when no ScreenProvider is wired.
const (
	fallbackScreenWidth  = 80
	fallbackScreenHeight = 24
)

// ConfigManager owns the per-mode menu configuration records and a bounded
// access-history log per mode. Every mode that can be opened must resolve to
// a config here; unknown modes resolve to a synthesized default.
type ConfigManager struct {
	configs   map[Mode]MenuConfig
	available map[Mode]bool
	history   map[Mode][]string

	pointer PointerProvider
	screen  ScreenProvider
	log     Logger

	now func() time.Time
}

// NewConfigManager creates a manager seeded with the built-in modes.
// pointer and screen may be nil; position resolution then falls back to the
// screen center and default terminal dimensions.
func NewConfigManager(pointer PointerProvider, screen ScreenProvider, logger Logger) *ConfigManager {
	m := &ConfigManager{
		configs:   make(map[Mode]MenuConfig),
		available: make(map[Mode]bool),
		history:   make(map[Mode][]string),
		pointer:   pointer,
		screen:    screen,
		log:       orDefaultLogger(logger),
		now:       time.Now,
	}
	m.seedBuiltins()
	return m
}

// seedBuiltins registers the three shipped modes with their distinct policies.
func (m *ConfigManager) seedBuiltins() {
	m.RegisterMode(ModeConstruction, MenuConfig{
		Mode:                 ModeConstruction,
		AutoCloseOnSelection: true,
		MaxMenuItems:         12,
		DefaultPosition:      PositionCursor,
		Transition:           TransitionFade,
		TransitionDuration:   200 * time.Millisecond,
	})
	m.RegisterMode(ModeCultivation, MenuConfig{
		Mode:                   ModeCultivation,
		AllowMultipleSelection: true,
		MaxMenuItems:           10,
		DefaultPosition:        PositionFixed,
		Transition:             TransitionSlide,
		TransitionDuration:     250 * time.Millisecond,
	})
	m.RegisterMode(ModeGenetics, MenuConfig{
		Mode:                 ModeGenetics,
		AutoCloseOnSelection: true,
		MaxMenuItems:         12,
		DefaultPosition:      PositionContext,
		Transition:           TransitionScale,
		TransitionDuration:   150 * time.Millisecond,
	})
}

// RegisterMode upserts the config for a mode and marks it available.
// Empty modes and configs that fail validation are rejected with a warning.
func (m *ConfigManager) RegisterMode(mode Mode, cfg MenuConfig) {
	if mode == "" || mode == ModeNone {
		m.log.Warnf("menu: cannot register empty mode")
		return
	}
	if !m.ValidateConfig(cfg) {
		m.log.Warnf("menu: rejecting invalid config for mode %q", mode)
		return
	}
	m.configs[mode] = cfg
	m.available[mode] = true
}

// UnregisterMode removes a mode's config, availability, and history.
// Returns whether anything was removed.
func (m *ConfigManager) UnregisterMode(mode Mode) bool {
	if !m.available[mode] {
		return false
	}
	delete(m.configs, mode)
	delete(m.available, mode)
	delete(m.history, mode)
	return true
}

// MenuConfigFor returns the registered config for a mode, or a synthesized
// default for unregistered modes. The default is not registered as a side
// effect.
func (m *ConfigManager) MenuConfigFor(mode Mode) MenuConfig {
	if cfg, ok := m.configs[mode]; ok {
		return cfg
	}
	return DefaultConfig(mode)
}

// DefaultConfig synthesizes the fallback config used for unregistered modes.
func DefaultConfig(mode Mode) MenuConfig {
	return MenuConfig{
		Mode:                 mode,
		AutoCloseOnSelection: true,
		MaxMenuItems:         8,
		DefaultPosition:      PositionCursor,
		Transition:           TransitionFade,
		TransitionDuration:   200 * time.Millisecond,
	}
}

// IsModeAvailable reports whether mode has a registered config.
func (m *ConfigManager) IsModeAvailable(mode Mode) bool {
	return m.available[mode]
}

// Modes returns the registered modes in no particular order.
func (m *ConfigManager) Modes() []Mode {
	modes := make([]Mode, 0, len(m.available))
	for mode := range m.available {
		modes = append(modes, mode)
	}
	return modes
}

// AddToHistory appends an access timestamp to the mode's history unless it is
// identical to the previous entry. Oldest entries are evicted past
// maxHistoryEntries.
func (m *ConfigManager) AddToHistory(mode Mode) {
	entry := m.now().Format(time.RFC3339)
	entries := m.history[mode]
	if len(entries) > 0 && entries[len(entries)-1] == entry {
		return
	}
	entries = append(entries, entry)
	if len(entries) > maxHistoryEntries {
		entries = entries[len(entries)-maxHistoryEntries:]
	}
	m.history[mode] = entries
}

// History returns a copy of the mode's access history, oldest first.
func (m *ConfigManager) History(mode Mode) []string {
	entries := m.history[mode]
	out := make([]string, len(entries))
	copy(out, entries)
	return out
}

// DefaultPosition resolves a position policy to screen coordinates.
// curX/curY are the menu's last-known position, used by PositionContext.
func (m *ConfigManager) DefaultPosition(pos PositionMode, curX, curY int) (x, y int) {
	switch pos {
	case PositionCursor:
		if m.pointer != nil {
			return m.pointer.PointerPosition()
		}
		return m.screenCenter()
	case PositionCenter:
		return m.screenCenter()
	case PositionFixed:
		return fixedPosX, fixedPosY
	case PositionContext:
		return curX, curY
	default:
		return 0, 0
	}
}

func (m *ConfigManager) screenCenter() (x, y int) {
	w, h := fallbackScreenWidth, fallbackScreenHeight
	if m.screen != nil {
		w, h = m.screen.ScreenSize()
	}
	return w / 2, h / 2
}

// ValidateConfig reports whether cfg is structurally sound: non-empty mode,
// strictly positive item cap, non-negative duration, and enum values within
// their defined sets.
func (m *ConfigManager) ValidateConfig(cfg MenuConfig) bool {
	if cfg.Mode == "" || cfg.Mode == ModeNone {
		return false
	}
	if cfg.MaxMenuItems <= 0 {
		return false
	}
	if cfg.TransitionDuration < 0 {
		return false
	}
	switch cfg.DefaultPosition {
	case PositionCursor, PositionCenter, PositionFixed, PositionContext:
	default:
		return false
	}
	switch cfg.Transition {
	case TransitionNone, TransitionFade, TransitionSlide, TransitionScale:
	default:
		return false
	}
	return true
}
