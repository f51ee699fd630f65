package menu

import (
	"fmt"

	engineinput "chimera/pkg/engine/input"
	"chimera/pkg/game/renderer"
	"chimera/pkg/game/state"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)
	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is exited.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
}

// DynamicMenuHandler extends MenuHandler with dynamic menu items.
// RunMenuDynamic calls GetMenuItems each loop iteration so the menu can refresh.
type DynamicMenuHandler interface {
	MenuHandler
	GetMenuItems() []MenuItem
}

// MenuRenderer is an optional interface for renderers that can draw
// a full-screen menu overlay on top of the facility view.
type MenuRenderer interface {
	// RenderMenu draws the menu overlay with the given items, selected index, help text, and title.
	RenderMenu(g *state.Game, items []MenuItem, selected int, helpText string, title string)
	// ClearMenu hides any active menu overlay.
	ClearMenu()
}

// RawKeyReader is an optional interface for renderers that can read a single
// raw key code, used by the settings menu to capture new bindings.
type RawKeyReader interface {
	ReadRawCode() string
}

// RunMenu runs a generic menu with the given items and handler.
func RunMenu(g *state.Game, items []MenuItem, handler MenuHandler) {
	selected := 0
	helpText := ""

	// Find first selectable item
	for i, item := range items {
		if item.IsSelectable() {
			selected = i
			break
		}
	}

	for {
		// Use renderer-native, full-screen overlay when available.
		if mr, ok := renderer.Current.(MenuRenderer); ok {
			mr.RenderMenu(g, items, selected, helpText, handler.GetTitle())
		} else {
			renderMenuFallback(g, items, selected, helpText, handler)
		}

		intent := renderer.GetInput()

		switch intent.Action {
		case engineinput.ActionMoveNorth:
			selected = prevSelectable(items, selected)
			helpText = ""
			handler.OnSelect(items[selected], selected)
		case engineinput.ActionMoveSouth:
			selected = nextSelectable(items, selected)
			helpText = ""
			handler.OnSelect(items[selected], selected)
		case engineinput.ActionConfirm:
			if selected >= 0 && selected < len(items) && items[selected].IsSelectable() {
				shouldClose, newHelpText := handler.OnActivate(items[selected], selected)
				helpText = newHelpText
				if shouldClose {
					exitMenu(g, handler)
					return
				}
			}
		case engineinput.ActionOpenMenu, engineinput.ActionQuit:
			exitMenu(g, handler)
			return
		default:
			// Ignore other actions while in menu
		}
	}
}

// RunMenuDynamic runs a menu whose items can change. The handler's GetMenuItems
// is called each loop iteration so the menu content can refresh.
func RunMenuDynamic(g *state.Game, handler DynamicMenuHandler) {
	selected := 0
	helpText := ""

	for {
		items := handler.GetMenuItems()
		if len(items) == 0 {
			exitMenu(g, handler)
			return
		}

		// Keep current selection if still valid, otherwise reset.
		if selected >= len(items) || !items[selected].IsSelectable() {
			selected = 0
			for i, item := range items {
				if item.IsSelectable() {
					selected = i
					break
				}
			}
		}

		if mr, ok := renderer.Current.(MenuRenderer); ok {
			mr.RenderMenu(g, items, selected, helpText, handler.GetTitle())
		} else {
			renderMenuFallback(g, items, selected, helpText, handler)
		}

		intent := renderer.GetInput()

		switch intent.Action {
		case engineinput.ActionMoveNorth:
			selected = prevSelectable(items, selected)
			helpText = ""
			handler.OnSelect(items[selected], selected)
		case engineinput.ActionMoveSouth:
			selected = nextSelectable(items, selected)
			helpText = ""
			handler.OnSelect(items[selected], selected)
		case engineinput.ActionConfirm:
			if selected >= 0 && selected < len(items) && items[selected].IsSelectable() {
				shouldClose, newHelpText := handler.OnActivate(items[selected], selected)
				helpText = newHelpText
				if shouldClose {
					exitMenu(g, handler)
					return
				}
			}
		case engineinput.ActionOpenMenu, engineinput.ActionQuit:
			exitMenu(g, handler)
			return
		default:
			// Ignore other actions while in menu
		}
	}
}

// prevSelectable moves the selection up to the previous selectable item,
// wrapping around at the top.
func prevSelectable(items []MenuItem, selected int) int {
	for i := selected - 1; i >= 0; i-- {
		if items[i].IsSelectable() {
			return i
		}
	}
	for i := len(items) - 1; i > selected; i-- {
		if items[i].IsSelectable() {
			return i
		}
	}
	return selected
}

// nextSelectable moves the selection down to the next selectable item,
// wrapping around at the bottom.
func nextSelectable(items []MenuItem, selected int) int {
	for i := selected + 1; i < len(items); i++ {
		if items[i].IsSelectable() {
			return i
		}
	}
	for i := 0; i < selected; i++ {
		if items[i].IsSelectable() {
			return i
		}
	}
	return selected
}

func exitMenu(g *state.Game, handler MenuHandler) {
	g.ClearMessages()
	if mr, ok := renderer.Current.(MenuRenderer); ok {
		mr.ClearMenu()
	}
	handler.OnExit()
}

// renderMenuFallback renders the menu in the message log as a fallback for
// renderers without a native overlay.
func renderMenuFallback(g *state.Game, items []MenuItem, selected int, helpText string, handler MenuHandler) {
	g.ClearMessages()
	logMessage(g, "=== %s ===", handler.GetTitle())

	var selectedItem MenuItem
	if selected >= 0 && selected < len(items) {
		selectedItem = items[selected]
	}
	if instructions := handler.GetInstructions(selectedItem); instructions != "" {
		logMessage(g, "%s", instructions)
	}
	if helpText != "" {
		logMessage(g, "%s", helpText)
	}

	for i, item := range items {
		prefix := "  "
		if i == selected {
			prefix = "> "
		}
		label := item.GetLabel()
		if !item.IsSelectable() {
			label = renderer.StyledSubtle(label)
		}
		logMessage(g, "%s%s", prefix, label)
	}

	renderer.Clear()
	renderer.RenderFrame(g)
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.ApplyMarkup(msg, a...))
}

// versionLine returns the version string shown on the main menu.
func versionLine() string {
	v := fmt.Sprintf("Version: %s", renderer.Version)
	if renderer.Commit != "unknown" && len(renderer.Commit) >= 7 {
		v += fmt.Sprintf(" (%s)", renderer.Commit[:7])
	}
	return v
}
