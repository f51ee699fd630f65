package menu

import (
	"sync"
	"time"
)

// ContextualMenuManager is the facade over the configuration manager,
// transition controller, and state core. It owns exactly one instance of
// each and re-exposes their operations and signals as a single API surface
// for input handlers and renderers.
//
// The command manager is deliberately not part of the facade; it is owned by
// whatever wires commands to the UI (see pkg/game/setup).
//
// A single mutex serializes every operation, so a renderer may advance
// transitions from its own frame clock while the game loop drives the state
// machine. Signal handlers run with that mutex held and must not call back
// into the manager.
type ContextualMenuManager struct {
	mu          sync.Mutex
	configs     *ConfigManager
	transitions *TransitionController
	state       *StateCore
}

// NewContextualMenuManager builds the component stack. pointer, screen, and
// logger are the injectable platform collaborators; any may be nil for
// defaults.
func NewContextualMenuManager(pointer PointerProvider, screen ScreenProvider, logger Logger) *ContextualMenuManager {
	logger = orDefaultLogger(logger)
	configs := NewConfigManager(pointer, screen, logger)
	transitions := NewTransitionController(logger)
	return &ContextualMenuManager{
		configs:     configs,
		transitions: transitions,
		state:       NewStateCore(configs, transitions, logger),
	}
}

// --- state machine operations ---

func (c *ContextualMenuManager) OpenMenu(mode Mode) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.OpenMenu(mode)
}

func (c *ContextualMenuManager) OpenMenuAt(mode Mode, x, y int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.OpenMenuAt(mode, x, y)
}

func (c *ContextualMenuManager) CloseMenu() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CloseMenu()
}

func (c *ContextualMenuManager) SelectMenuItem(itemID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.SelectMenuItem(itemID)
}

func (c *ContextualMenuManager) ChangeMode(mode Mode) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.ChangeMode(mode)
}

func (c *ContextualMenuManager) SetVisibility(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetVisibility(visible)
}

func (c *ContextualMenuManager) SetFocus(hasFocus bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetFocus(hasFocus)
}

func (c *ContextualMenuManager) SetPosition(x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetPosition(x, y)
}

func (c *ContextualMenuManager) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Reset()
}

func (c *ContextualMenuManager) IsMenuOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.IsMenuOpen()
}

func (c *ContextualMenuManager) CurrentMode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CurrentMode()
}

func (c *ContextualMenuManager) CurrentState() MenuStateInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CurrentState()
}

// --- configuration operations ---

func (c *ContextualMenuManager) RegisterMode(mode Mode, cfg MenuConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configs.RegisterMode(mode, cfg)
}

func (c *ContextualMenuManager) UnregisterMode(mode Mode) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.configs.UnregisterMode(mode)
}

func (c *ContextualMenuManager) MenuConfigFor(mode Mode) MenuConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.configs.MenuConfigFor(mode)
}

func (c *ContextualMenuManager) IsModeAvailable(mode Mode) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.configs.IsModeAvailable(mode)
}

func (c *ContextualMenuManager) Modes() []Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.configs.Modes()
}

func (c *ContextualMenuManager) History(mode Mode) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.configs.History(mode)
}

func (c *ContextualMenuManager) ValidateConfig(cfg MenuConfig) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.configs.ValidateConfig(cfg)
}

// --- transition operations ---

// UpdateTransitions advances the in-flight transition by a frame delta.
// Safe to call from a renderer's frame clock while the game loop is blocked
// on input.
func (c *ContextualMenuManager) UpdateTransitions(dt time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transitions.Update(dt)
}

func (c *ContextualMenuManager) TransitionState() TransitionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transitions.State()
}

func (c *ContextualMenuManager) TransitionParams(t TransitionType) TransitionParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transitions.Params(t)
}

// --- signals ---

func (c *ContextualMenuManager) OnMenuOpened() *Signal[Mode] { return &c.state.Opened }

func (c *ContextualMenuManager) OnMenuClosed() *Signal[Mode] { return &c.state.Closed }

func (c *ContextualMenuManager) OnMenuItemSelected() *Signal[ItemSelectedEvent] {
	return &c.state.Selected
}

func (c *ContextualMenuManager) OnMenuModeChanged() *Signal[Mode] { return &c.state.ModeChanged }

func (c *ContextualMenuManager) OnMenuVisibilityChanged() *Signal[bool] {
	return &c.state.VisibilityChanged
}

func (c *ContextualMenuManager) OnTransitionUpdate() *Signal[TransitionEvent] {
	return &c.transitions.Updated
}

func (c *ContextualMenuManager) OnTransitionComplete() *Signal[TransitionDoneEvent] {
	return &c.transitions.Completed
}
