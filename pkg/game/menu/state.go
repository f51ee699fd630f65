package menu

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// StateCore is the authoritative menu state machine: which mode is open,
// visibility, focus, selection, and position. Transition timing is delegated
// to the TransitionController and policy lookups to the ConfigManager.
//
// Open and close requests made while a transition is in flight are rejected,
// never queued; at most one transition is active at any time.
type StateCore struct {
	configs     *ConfigManager
	transitions *TransitionController
	log         Logger

	mode     Mode
	open     bool
	visible  bool
	focus    bool
	selected string
	multiSel mapset.Set[string]
	posX     int
	posY     int

	Opened            Signal[Mode]
	Closed            Signal[Mode]
	Selected          Signal[ItemSelectedEvent]
	ModeChanged       Signal[Mode]
	VisibilityChanged Signal[bool]
}

// NewStateCore wires a state machine to its configuration manager and
// transition controller. Both collaborators are owned by the caller.
func NewStateCore(configs *ConfigManager, transitions *TransitionController, logger Logger) *StateCore {
	return &StateCore{
		configs:     configs,
		transitions: transitions,
		log:         orDefaultLogger(logger),
		mode:        ModeNone,
		visible:     true,
		multiSel:    mapset.New[string](),
	}
}

// OpenMenu opens the menu for mode at the position resolved from the mode's
// DefaultPosition policy.
func (s *StateCore) OpenMenu(mode Mode) bool {
	return s.openMenu(mode, 0, 0, false)
}

// OpenMenuAt opens the menu for mode at an explicit screen position.
func (s *StateCore) OpenMenuAt(mode Mode, x, y int) bool {
	return s.openMenu(mode, x, y, true)
}

func (s *StateCore) openMenu(mode Mode, x, y int, explicit bool) bool {
	if mode == "" || mode == ModeNone {
		s.log.Warnf("menu: open rejected, empty mode")
		return false
	}
	if !s.configs.IsModeAvailable(mode) {
		s.log.Warnf("menu: open rejected, mode %q not registered", mode)
		return false
	}
	if s.transitions.Active() {
		s.log.Warnf("menu: open rejected, transition in progress")
		return false
	}
	if s.open && s.mode == mode {
		// Already open on this mode; idempotent.
		return true
	}
	if s.open {
		// Different mode open: close it first. The closing transition is
		// discarded so the opening one can take over immediately.
		s.CloseMenu()
		s.transitions.Reset()
	}

	cfg := s.configs.MenuConfigFor(mode)
	if !explicit {
		x, y = s.configs.DefaultPosition(cfg.DefaultPosition, s.posX, s.posY)
	}

	s.configs.AddToHistory(mode)
	s.transitions.Begin(cfg.Transition, true, cfg.TransitionDuration)

	s.mode = mode
	s.open = true
	s.focus = true
	s.posX = x
	s.posY = y

	s.Opened.Emit(mode)
	return true
}

// CloseMenu closes the open menu, starting the mode's closing transition and
// clearing selection and focus. Returns false if nothing is open or a
// transition is in flight.
func (s *StateCore) CloseMenu() bool {
	if !s.open {
		return false
	}
	if s.transitions.Active() {
		s.log.Warnf("menu: close rejected, transition in progress")
		return false
	}

	cfg := s.configs.MenuConfigFor(s.mode)
	s.transitions.Begin(cfg.Transition, false, cfg.TransitionDuration)

	closing := s.mode
	s.open = false
	s.focus = false
	s.clearSelection()

	s.Closed.Emit(closing)
	s.mode = ModeNone
	return true
}

// SelectMenuItem records an item selection under the current mode's policy.
// Multi-select modes toggle: re-selecting an active id deselects it.
// Single-select modes overwrite. When the mode is configured to auto-close
// and is not multi-select, a successful selection closes the menu.
func (s *StateCore) SelectMenuItem(itemID string) bool {
	if !s.open {
		s.log.Warnf("menu: select rejected, no menu open")
		return false
	}
	if itemID == "" {
		s.log.Warnf("menu: select rejected, empty item id")
		return false
	}

	cfg := s.configs.MenuConfigFor(s.mode)
	if cfg.AllowMultipleSelection {
		if s.multiSel.Has(itemID) {
			s.multiSel.Remove(itemID)
			if s.selected == itemID {
				s.selected = ""
			}
		} else {
			s.multiSel.Put(itemID)
			s.selected = itemID
		}
	} else {
		s.selected = itemID
	}

	s.Selected.Emit(ItemSelectedEvent{Mode: s.mode, ItemID: itemID})

	if cfg.AutoCloseOnSelection && !cfg.AllowMultipleSelection {
		s.CloseMenu()
	}
	return true
}

// ChangeMode switches the menu to newMode. If a menu was open it is closed
// under the old mode and reopened under the new one at the same position.
// The mode-changed signal fires on success before any reopen.
func (s *StateCore) ChangeMode(newMode Mode) bool {
	if newMode == "" || newMode == ModeNone {
		s.log.Warnf("menu: mode change rejected, empty mode")
		return false
	}
	if !s.configs.IsModeAvailable(newMode) {
		s.log.Warnf("menu: mode change rejected, mode %q not registered", newMode)
		return false
	}
	if s.open && s.mode == newMode {
		return true
	}
	if s.transitions.Active() {
		s.log.Warnf("menu: mode change rejected, transition in progress")
		return false
	}

	wasOpen := s.open
	x, y := s.posX, s.posY
	if wasOpen {
		s.CloseMenu()
		s.transitions.Reset()
	}

	s.ModeChanged.Emit(newMode)

	if wasOpen {
		return s.OpenMenuAt(newMode, x, y)
	}
	return true
}

// SetVisibility toggles menu visibility independently of open state.
// The signal fires only on an actual change.
func (s *StateCore) SetVisibility(visible bool) {
	if s.visible == visible {
		return
	}
	s.visible = visible
	s.VisibilityChanged.Emit(visible)
}

// SetFocus sets keyboard focus without validation or events.
func (s *StateCore) SetFocus(hasFocus bool) {
	s.focus = hasFocus
}

// SetPosition moves the menu without validation or events.
func (s *StateCore) SetPosition(x, y int) {
	s.posX = x
	s.posY = y
}

// Reset force-closes the menu and restores defaults. Unlike CloseMenu this
// fires no events and discards any in-flight transition silently.
func (s *StateCore) Reset() {
	s.transitions.Reset()
	s.mode = ModeNone
	s.open = false
	s.visible = true
	s.focus = false
	s.posX = 0
	s.posY = 0
	s.clearSelection()
}

// IsMenuOpen reports whether a menu is currently open.
func (s *StateCore) IsMenuOpen() bool {
	return s.open
}

// CurrentMode returns the open mode, or ModeNone.
func (s *StateCore) CurrentMode() Mode {
	return s.mode
}

// SelectedItemID returns the most recent selection, or "".
func (s *StateCore) SelectedItemID() string {
	return s.selected
}

// CurrentState produces a snapshot for external consumers. It never mutates.
func (s *StateCore) CurrentState() MenuStateInfo {
	return MenuStateInfo{
		Mode:            s.mode,
		IsOpen:          s.open,
		IsVisible:       s.visible,
		HasFocus:        s.focus,
		SelectedItemID:  s.selected,
		SelectedItemIDs: s.selectedIDs(),
		PositionX:       s.posX,
		PositionY:       s.posY,
		IsTransitioning: s.transitions.Active(),
	}
}

func (s *StateCore) selectedIDs() []string {
	if s.multiSel.Size() == 0 {
		return nil
	}
	ids := make([]string, 0, s.multiSel.Size())
	s.multiSel.Each(func(id string) {
		ids = append(ids, id)
	})
	sort.Strings(ids)
	return ids
}

func (s *StateCore) clearSelection() {
	s.selected = ""
	s.multiSel = mapset.New[string]()
}
