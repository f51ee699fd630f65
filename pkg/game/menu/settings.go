package menu

import (
	"fmt"
	"strings"

	engineinput "chimera/pkg/engine/input"
	"chimera/pkg/game/renderer"
	"chimera/pkg/game/state"
)

// NavStyleMenuItem toggles between arrow and vim navigation display.
type NavStyleMenuItem struct {
	game *state.Game
}

func (n *NavStyleMenuItem) GetLabel() string {
	style := "Arrows"
	if n.game.NavStyle == state.NavStyleVim {
		style = "Vim (hjkl)"
	}
	return fmt.Sprintf("Navigation style: %s", style)
}

func (n *NavStyleMenuItem) IsSelectable() bool { return true }

func (n *NavStyleMenuItem) GetHelpText() string {
	return "Switch which keys are shown for navigation"
}

// BindingMenuItem represents a menu item for a key binding.
type BindingMenuItem struct {
	Action        engineinput.Action
	NonRebindable bool
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	byAction := engineinput.GetBindingsByAction()
	codeText := strings.Join(byAction[b.Action], ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}

	if b.NonRebindable {
		return fmt.Sprintf("%s: %s (fixed)", renderer.StyledSubtle(name), codeText)
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// IsSelectable returns whether this binding can be selected.
func (b *BindingMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	if b.NonRebindable {
		return ""
	}
	return fmt.Sprintf("Editing binding for: %s", engineinput.ActionName(b.Action))
}

// SettingsMenuHandler handles the settings menu: nav style plus bindings.
type SettingsMenuHandler struct {
	game          *state.Game
	actions       []engineinput.Action
	nonRebindable map[engineinput.Action]bool
}

// NewSettingsMenuHandler creates a new settings menu handler.
func NewSettingsMenuHandler(g *state.Game) *SettingsMenuHandler {
	actions := []engineinput.Action{
		engineinput.ActionMoveNorth,
		engineinput.ActionMoveSouth,
		engineinput.ActionMoveWest,
		engineinput.ActionMoveEast,
		engineinput.ActionConstructionMenu,
		engineinput.ActionCultivationMenu,
		engineinput.ActionGeneticsMenu,
		engineinput.ActionToggleOverlay,
		engineinput.ActionConfirm,
		engineinput.ActionZoomIn,
		engineinput.ActionZoomOut,
	}

	nonRebindable := make(map[engineinput.Action]bool)
	for _, act := range actions {
		if isNonRebindable(act) {
			nonRebindable[act] = true
		}
	}

	return &SettingsMenuHandler{
		game:          g,
		actions:       actions,
		nonRebindable: nonRebindable,
	}
}

// GetTitle returns the menu title.
func (h *SettingsMenuHandler) GetTitle() string {
	return "Settings"
}

// GetInstructions returns the menu instructions.
func (h *SettingsMenuHandler) GetInstructions(selected MenuItem) string {
	if selected == nil {
		return "Use up/down to select, Enter to edit, q to exit."
	}
	if bindingItem, ok := selected.(*BindingMenuItem); ok && bindingItem.NonRebindable {
		return "This binding is fixed."
	}
	return "Use up/down to select, Enter to edit, q to exit."
}

// OnSelect is called when an item is selected.
func (h *SettingsMenuHandler) OnSelect(item MenuItem, index int) {
}

// OnActivate is called when an item is activated.
func (h *SettingsMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	if _, ok := item.(*NavStyleMenuItem); ok {
		if h.game.NavStyle == state.NavStyleVim {
			h.game.NavStyle = state.NavStyleArrows
		} else {
			h.game.NavStyle = state.NavStyleVim
		}
		return false, ""
	}

	bindingItem, ok := item.(*BindingMenuItem)
	if !ok || bindingItem.NonRebindable {
		return false, ""
	}

	action := bindingItem.Action
	actionName := engineinput.ActionName(action)

	rr, ok := renderer.Current.(RawKeyReader)
	if !ok {
		return false, "This renderer cannot capture raw keys"
	}

	code := rr.ReadRawCode()
	if code == "" {
		return false, ""
	}
	engineinput.SetSingleBinding(action, code)
	return false, fmt.Sprintf("Set binding for %s to %s", actionName, code)
}

// OnExit is called when the menu is exited.
func (h *SettingsMenuHandler) OnExit() {
}

// GetMenuItems returns the menu items for the settings menu.
func (h *SettingsMenuHandler) GetMenuItems() []MenuItem {
	items := make([]MenuItem, 0, len(h.actions)+1)
	items = append(items, &NavStyleMenuItem{game: h.game})
	for _, action := range h.actions {
		items = append(items, &BindingMenuItem{
			Action:        action,
			NonRebindable: h.nonRebindable[action],
		})
	}
	return items
}

// RunSettingsMenu runs the settings menu.
func RunSettingsMenu(g *state.Game) {
	RunMenuDynamic(g, NewSettingsMenuHandler(g))
}

// isNonRebindable checks if an action cannot be rebound.
func isNonRebindable(action engineinput.Action) bool {
	return action == engineinput.ActionConfirm ||
		action == engineinput.ActionZoomIn ||
		action == engineinput.ActionZoomOut
}
