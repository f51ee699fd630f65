package menu

import (
	"fmt"

	"chimera/pkg/game/state"
)

// SlotMenuItem is one save slot in the save/load menus.
type SlotMenuItem struct {
	Slot    state.SlotInfo
	IsEmpty bool
}

func (s *SlotMenuItem) GetLabel() string {
	if s.IsEmpty {
		return fmt.Sprintf("%s (empty)", s.Slot.Name)
	}
	return fmt.Sprintf("%s — day %d, %d credits, %d plants",
		s.Slot.Name, s.Slot.Day, s.Slot.Credits, s.Slot.Plants)
}

func (s *SlotMenuItem) IsSelectable() bool { return true }

func (s *SlotMenuItem) GetHelpText() string {
	if s.IsEmpty {
		return ""
	}
	return fmt.Sprintf("Saved %s", s.Slot.SavedAt.Format("2006-01-02 15:04"))
}

// saveMenuHandler writes the current game into the activated slot.
type saveMenuHandler struct {
	game    *state.Game
	saveDir string
	saved   bool
}

func (h *saveMenuHandler) GetTitle() string { return "Save Game" }

func (h *saveMenuHandler) GetInstructions(selected MenuItem) string {
	return "Pick a slot to save into, q to cancel."
}

func (h *saveMenuHandler) OnSelect(item MenuItem, index int) {}

func (h *saveMenuHandler) OnActivate(item MenuItem, index int) (bool, string) {
	slotItem, ok := item.(*SlotMenuItem)
	if !ok {
		return false, ""
	}
	if err := h.game.SaveToSlot(h.saveDir, slotItem.Slot.Name); err != nil {
		return false, fmt.Sprintf("Save failed: %v", err)
	}
	h.saved = true
	return true, ""
}

func (h *saveMenuHandler) OnExit() {}

func (h *saveMenuHandler) GetMenuItems() []MenuItem {
	return slotItems(h.saveDir, true)
}

// loadMenuHandler loads the activated slot into loaded.
type loadMenuHandler struct {
	saveDir string
	loaded  *state.Game
}

func (h *loadMenuHandler) GetTitle() string { return "Load Game" }

func (h *loadMenuHandler) GetInstructions(selected MenuItem) string {
	return "Pick a slot to load, q to cancel."
}

func (h *loadMenuHandler) OnSelect(item MenuItem, index int) {}

func (h *loadMenuHandler) OnActivate(item MenuItem, index int) (bool, string) {
	slotItem, ok := item.(*SlotMenuItem)
	if !ok || slotItem.IsEmpty {
		return false, ""
	}
	g, err := state.LoadFromSlot(h.saveDir, slotItem.Slot.Name)
	if err != nil {
		return false, fmt.Sprintf("Load failed: %v", err)
	}
	h.loaded = g
	return true, ""
}

func (h *loadMenuHandler) OnExit() {}

func (h *loadMenuHandler) GetMenuItems() []MenuItem {
	return slotItems(h.saveDir, false)
}

// slotItems lists existing slots plus, for saving, fixed empty slots so the
// player always has somewhere to write.
func slotItems(dir string, includeEmpty bool) []MenuItem {
	slots, err := state.ListSlots(dir)
	if err != nil {
		slots = nil
	}

	existing := make(map[string]bool, len(slots))
	var items []MenuItem
	for _, s := range slots {
		existing[s.Name] = true
		items = append(items, &SlotMenuItem{Slot: s})
	}

	if includeEmpty {
		for i := 1; i <= 3; i++ {
			name := fmt.Sprintf("slot%d", i)
			if existing[name] {
				continue
			}
			items = append(items, &SlotMenuItem{
				Slot:    state.SlotInfo{Name: name},
				IsEmpty: true,
			})
		}
	}
	return items
}

// RunSaveMenu runs the save menu, reporting whether a save was written.
func RunSaveMenu(g *state.Game, saveDir string) bool {
	handler := &saveMenuHandler{game: g, saveDir: saveDir}
	RunMenuDynamic(g, handler)
	return handler.saved
}

// RunLoadMenu runs the load menu and returns the loaded game, or nil if the
// player cancelled.
func RunLoadMenu(g *state.Game, saveDir string) *state.Game {
	handler := &loadMenuHandler{saveDir: saveDir}
	RunMenuDynamic(g, handler)
	return handler.loaded
}
