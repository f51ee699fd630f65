// Package menu provides the contextual menu system for Chimera: per-mode
// configuration, a single-flight transition controller, the authoritative
// menu state machine, a command registry, and a facade tying them together.
package menu

import (
	"log"
	"time"
)

// Mode identifies a gameplay mode with its own contextual menu.
// The built-in modes are seeded at construction; additional modes can be
// registered at runtime through the ConfigManager.
type Mode string

const (
	// ModeNone is the sentinel used when no menu is open.
	ModeNone Mode = "none"

	ModeConstruction Mode = "construction"
	ModeCultivation  Mode = "cultivation"
	ModeGenetics     Mode = "genetics"
)

// PositionMode selects how a menu's initial screen position is resolved.
type PositionMode int

const (
	PositionCursor PositionMode = iota // at the pointer
	PositionCenter                     // centered on screen
	PositionFixed                      // fixed anchor point
	PositionContext                    // wherever the menu last was
)

// TransitionType selects the open/close animation for a menu.
type TransitionType int

const (
	TransitionNone TransitionType = iota
	TransitionFade
	TransitionSlide
	TransitionScale
)

// MenuConfig holds the per-mode menu policy.
type MenuConfig struct {
	Mode                   Mode
	AutoCloseOnSelection   bool
	AllowMultipleSelection bool
	MaxMenuItems           int
	DefaultPosition        PositionMode
	Transition             TransitionType
	TransitionDuration     time.Duration
}

// MenuStateInfo is an on-demand snapshot of the state machine for renderers
// and other observers. It is never persisted.
type MenuStateInfo struct {
	Mode            Mode
	IsOpen          bool
	IsVisible       bool
	HasFocus        bool
	SelectedItemID  string
	SelectedItemIDs []string // active ids under multi-select, sorted
	PositionX       int
	PositionY       int
	IsTransitioning bool
}

// TransitionState describes the single in-flight transition, if any.
type TransitionState struct {
	Type     TransitionType
	Opening  bool
	Progress float64 // 0..1
	Active   bool
}

// TransitionParams carries easing/duration metadata for a transition type,
// consumed by renderers.
type TransitionParams struct {
	Easing   string
	Duration time.Duration
}

// PointerProvider reports the current pointer position in screen coordinates.
type PointerProvider interface {
	PointerPosition() (x, y int)
}

// ScreenProvider reports the drawable screen dimensions.
type ScreenProvider interface {
	ScreenSize() (width, height int)
}

// Logger is the injectable logging sink for the menu components. Failures in
// this package are never fatal; they are logged and surfaced as boolean or
// result returns.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type stdLogger struct{}

func (stdLogger) Infof(format string, args ...any) {
	log.Printf(format, args...)
}

func (stdLogger) Warnf(format string, args ...any) {
	log.Printf("warning: "+format, args...)
}

// orDefaultLogger lets callers pass nil for the default stdlib-backed logger.
func orDefaultLogger(l Logger) Logger {
	if l == nil {
		return stdLogger{}
	}
	return l
}
