package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the facility UI.
type Action int

const (
	ActionNone Action = iota

	// Menu navigation
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Contextual menu modes
	ActionConstructionMenu
	ActionCultivationMenu
	ActionGeneticsMenu

	// Meta / UI
	ActionOpenMenu // main menu
	ActionConfirm  // activate the selected item (Enter/E)
	ActionToggleOverlay
	ActionDumpState // developer dump of menu state (F8)
	ActionQuit
	ActionZoomIn  // increase font/tile size (graphical backend)
	ActionZoomOut // decrease font/tile size (graphical backend)
)

// Intent is the 4th-layer, high-level description of what the player wants
// to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "KeyB", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after
// debouncing/deduplication. The underlying libraries (Ebiten, terminal raw
// mode) already debounce for this turn-based UI, but the distinct type keeps
// the layering explicit and extensible.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event. Thin wrapper
// today; the right place to add key-repeat suppression later.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Navigation (arrows plus Vim keys)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	// Contextual menus per gameplay mode
	"b":         ActionConstructionMenu,
	"construct": ActionConstructionMenu,
	"c":         ActionCultivationMenu,
	"cultivate": ActionCultivationMenu,
	"g":         ActionGeneticsMenu,
	"genetics":  ActionGeneticsMenu,

	// Main menu
	"menu": ActionOpenMenu,
	"m":    ActionOpenMenu,

	// Confirm / activate (E, Enter)
	"e":     ActionConfirm,
	"enter": ActionConfirm,

	// Overlay visibility
	"v": ActionToggleOverlay,

	// Developer state dump
	"f8": ActionDumpState,

	// Quit / close
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Zoom (fixed bindings, not rebindable)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
}

// reservedCodes can never be remapped away; navigation and confirm must stay
// reachable from any state.
var reservedCodes = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"e":           true,
	"enter":       true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move Up"
	case ActionMoveSouth:
		return "Move Down"
	case ActionMoveWest:
		return "Move Left"
	case ActionMoveEast:
		return "Move Right"
	case ActionConstructionMenu:
		return "Construction Menu"
	case ActionCultivationMenu:
		return "Cultivation Menu"
	case ActionGeneticsMenu:
		return "Genetics Menu"
	case ActionOpenMenu:
		return "Main Menu"
	case ActionConfirm:
		return "Confirm"
	case ActionToggleOverlay:
		return "Toggle Overlay"
	case ActionDumpState:
		return "Dump State"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all rebindable bindings for the given action
// with a single code. Reserved navigation/confirm codes are never touched.
func SetSingleBinding(action Action, code string) {
	if action == ActionConfirm {
		return
	}
	for c, a := range bindings {
		if reservedCodes[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes[code] {
		bindings[code] = action
	}
}
