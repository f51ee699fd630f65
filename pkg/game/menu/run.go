package menu

import (
	"strings"
	"time"

	engineinput "chimera/pkg/engine/input"
	"chimera/pkg/game/renderer"
	"chimera/pkg/game/state"
)

// ContextualMenuRenderer is an optional interface for renderers that draw
// the contextual menu as a positioned overlay animated by the in-flight
// transition.
type ContextualMenuRenderer interface {
	// RenderContextualMenu draws the open menu. info carries mode, position
	// and selection; tr carries the transition progress for animation.
	RenderContextualMenu(g *state.Game, info MenuStateInfo, tr TransitionState, items []MenuItem, selected int, helpText string)
	// ClearMenu hides any active menu overlay.
	ClearMenu()
}

// TransitionAnimator is an optional interface for renderers that advance
// menu transitions from their own frame clock. Without it the run loop
// fast-forwards transitions, since a blocking TUI cannot animate.
type TransitionAnimator interface {
	AnimatesTransitions() bool
}

// CommandItem is a menu item backed by a command id from a mode catalog.
type CommandItem struct {
	ID      string
	Enabled bool
}

func (c *CommandItem) GetLabel() string {
	label := strings.ReplaceAll(c.ID, "_", " ")
	if !c.Enabled {
		return renderer.StyledSubtle(label)
	}
	return label
}

func (c *CommandItem) IsSelectable() bool { return c.Enabled }

func (c *CommandItem) GetHelpText() string { return "" }

// modeActions maps mode-summoning input actions to menu modes.
var modeActions = map[engineinput.Action]Mode{
	engineinput.ActionConstructionMenu: ModeConstruction,
	engineinput.ActionCultivationMenu:  ModeCultivation,
	engineinput.ActionGeneticsMenu:     ModeGenetics,
}

// ModeForAction returns the menu mode summoned by an input action, if any.
func ModeForAction(a engineinput.Action) (Mode, bool) {
	mode, ok := modeActions[a]
	return mode, ok
}

// RunContextualMenu opens the mode's menu and drives it until it closes.
// Pressing another mode's key switches modes in place; quit or the mode's
// own key closes. Item activation selects the item on the state core and
// dispatches its command.
func RunContextualMenu(g *state.Game, menus *ContextualMenuManager, cm *CommandManager, mode Mode) {
	if !menus.OpenMenu(mode) {
		return
	}
	settleTransition(menus)

	helpText := ""
	selected := 0
	items := buildCommandItems(cm, menus, mode)

	for {
		if !menus.IsMenuOpen() {
			// Auto-closed after a selection.
			clearOverlay(g)
			return
		}
		if len(items) == 0 {
			menus.CloseMenu()
			settleTransition(menus)
			clearOverlay(g)
			return
		}
		if selected >= len(items) {
			selected = 0
		}

		renderContextual(g, menus, items, selected, helpText)

		intent := renderer.GetInput()

		// Another mode's key switches the open menu in place.
		if next, ok := modeActions[intent.Action]; ok {
			if next == menus.CurrentMode() {
				// The summoning key is also the dismiss key.
				menus.CloseMenu()
				settleTransition(menus)
				clearOverlay(g)
				return
			}
			if menus.ChangeMode(next) {
				settleTransition(menus)
				mode = next
				items = buildCommandItems(cm, menus, mode)
				selected = 0
				helpText = ""
			}
			continue
		}

		switch intent.Action {
		case engineinput.ActionMoveNorth:
			selected = prevSelectable(items, selected)
			helpText = ""
		case engineinput.ActionMoveSouth:
			selected = nextSelectable(items, selected)
			helpText = ""
		case engineinput.ActionConfirm:
			item, ok := items[selected].(*CommandItem)
			if !ok || !item.Enabled {
				break
			}
			menus.SelectMenuItem(item.ID)
			settleTransition(menus)
			res := cm.ExecuteID(item.ID)
			helpText = res.Message
			// Commands change what is executable; refresh the labels.
			items = buildCommandItems(cm, menus, mode)
			if !menus.IsMenuOpen() {
				logMessage(g, "%s", helpText)
				clearOverlay(g)
				return
			}
		case engineinput.ActionQuit, engineinput.ActionOpenMenu:
			menus.CloseMenu()
			settleTransition(menus)
			clearOverlay(g)
			return
		default:
			// Ignore other actions while in menu
		}
	}
}

// buildCommandItems turns the mode's command catalog into menu items, capped
// at the mode's configured item limit. Unregistered or currently invalid
// commands render disabled.
func buildCommandItems(cm *CommandManager, menus *ContextualMenuManager, mode Mode) []MenuItem {
	ids := cm.AvailableCommands(mode)
	cfg := menus.MenuConfigFor(mode)
	if cfg.MaxMenuItems > 0 && len(ids) > cfg.MaxMenuItems {
		ids = ids[:cfg.MaxMenuItems]
	}

	items := make([]MenuItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, &CommandItem{ID: id, Enabled: cm.IsCommandRegistered(id)})
	}
	return items
}

func renderContextual(g *state.Game, menus *ContextualMenuManager, items []MenuItem, selected int, helpText string) {
	if cr, ok := renderer.Current.(ContextualMenuRenderer); ok {
		cr.RenderContextualMenu(g, menus.CurrentState(), menus.TransitionState(), items, selected, helpText)
		return
	}

	// Fallback: render into the message log.
	g.ClearMessages()
	info := menus.CurrentState()
	logMessage(g, "=== %s menu ===", string(info.Mode))
	if helpText != "" {
		logMessage(g, "%s", helpText)
	}
	for i, item := range items {
		prefix := "  "
		if i == selected {
			prefix = "> "
		}
		logMessage(g, "%s%s", prefix, item.GetLabel())
	}
	renderer.Clear()
	renderer.RenderFrame(g)
}

func clearOverlay(g *state.Game) {
	g.ClearMessages()
	if cr, ok := renderer.Current.(ContextualMenuRenderer); ok {
		cr.ClearMenu()
	}
}

// settleTransition completes any in-flight transition when the active
// renderer cannot animate between input events.
func settleTransition(menus *ContextualMenuManager) {
	if ta, ok := renderer.Current.(TransitionAnimator); ok && ta.AnimatesTransitions() {
		return
	}
	for menus.TransitionState().Active {
		menus.UpdateTransitions(time.Second)
	}
}
