package menu

import (
	"chimera/pkg/game/state"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionResume MainMenuAction = iota
	MainMenuActionNewGame
	MainMenuActionSave
	MainMenuActionLoad
	MainMenuActionSettings
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label  string
	Action MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionResume:
		return "Return to the facility"
	case MainMenuActionNewGame:
		return "Start a new facility"
	case MainMenuActionSave:
		return "Save the current facility to a slot"
	case MainMenuActionLoad:
		return "Load a facility from a save slot"
	case MainMenuActionSettings:
		return "Navigation style and key bindings"
	case MainMenuActionQuit:
		return "Exit the game"
	default:
		return ""
	}
}

// MainMenuHandler handles the main menu.
type MainMenuHandler struct {
	selectedAction MainMenuAction
	hasGame        bool
}

// NewMainMenuHandler creates a new main menu handler. hasGame controls
// whether Resume/Save items appear.
func NewMainMenuHandler(hasGame bool) *MainMenuHandler {
	return &MainMenuHandler{
		selectedAction: MainMenuActionResume,
		hasGame:        hasGame,
	}
}

// GetTitle returns the menu title.
func (h *MainMenuHandler) GetTitle() string {
	return "Project Chimera"
}

// GetInstructions returns the menu instructions.
func (h *MainMenuHandler) GetInstructions(selected MenuItem) string {
	if selected != nil {
		if help := selected.GetHelpText(); help != "" {
			return help
		}
	}
	return versionLine()
}

// OnSelect is called when an item is selected.
func (h *MainMenuHandler) OnSelect(item MenuItem, index int) {
	if mainItem, ok := item.(*MainMenuItem); ok {
		h.selectedAction = mainItem.Action
	}
}

// OnActivate is called when an item is activated.
func (h *MainMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	if mainItem, ok := item.(*MainMenuItem); ok {
		h.selectedAction = mainItem.Action
		return true, ""
	}
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *MainMenuHandler) OnExit() {
}

// GetSelectedAction returns the selected action (if any).
func (h *MainMenuHandler) GetSelectedAction() MainMenuAction {
	return h.selectedAction
}

// GetMenuItems returns the menu items for the main menu.
func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	var items []MenuItem
	if h.hasGame {
		items = append(items,
			&MainMenuItem{Label: "Resume", Action: MainMenuActionResume},
			&MainMenuItem{Label: "Save", Action: MainMenuActionSave},
		)
	}
	items = append(items,
		&MainMenuItem{Label: "New Game", Action: MainMenuActionNewGame},
		&MainMenuItem{Label: "Load", Action: MainMenuActionLoad},
		&MainMenuItem{Label: "Settings", Action: MainMenuActionSettings},
		&MainMenuItem{Label: "Quit", Action: MainMenuActionQuit},
	)
	return items
}

// RunMainMenu runs the main menu and returns the selected action. Exiting
// the menu without activating anything resumes the game.
func RunMainMenu(g *state.Game, hasGame bool) MainMenuAction {
	handler := NewMainMenuHandler(hasGame)
	RunMenu(g, handler.GetMenuItems(), handler)
	return handler.GetSelectedAction()
}
