// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chimera/pkg/game/menu"
	"chimera/pkg/game/state"
)

const stateDumpFilename = "menu_state.json"

// stateDump is the on-disk shape of a debug snapshot. Human- and
// LLM-readable: stable key names, everything in one document.
type stateDump struct {
	Menu       menuDump            `json:"menu"`
	Transition transitionDump      `json:"transition"`
	Modes      map[string]modeDump `json:"modes"`
	Facility   facilityDump        `json:"facility"`
}

type menuDump struct {
	Mode            string   `json:"mode"`
	IsOpen          bool     `json:"is_open"`
	IsVisible       bool     `json:"is_visible"`
	HasFocus        bool     `json:"has_focus"`
	SelectedItemID  string   `json:"selected_item_id"`
	SelectedItemIDs []string `json:"selected_item_ids"`
	PositionX       int      `json:"position_x"`
	PositionY       int      `json:"position_y"`
	IsTransitioning bool     `json:"is_transitioning"`
}

type transitionDump struct {
	Type     string  `json:"type"`
	Opening  bool    `json:"opening"`
	Progress float64 `json:"progress"`
	Active   bool    `json:"active"`
}

type modeDump struct {
	Commands       []string `json:"commands"`
	History        []string `json:"history"`
	MaxMenuItems   int      `json:"max_menu_items"`
	AutoClose      bool     `json:"auto_close_on_selection"`
	MultiSelect    bool     `json:"allow_multiple_selection"`
	TransitionMs   int64    `json:"transition_ms"`
	TransitionType string   `json:"transition_type"`
}

type facilityDump struct {
	Day     int        `json:"day"`
	Credits int        `json:"credits"`
	Plants  int        `json:"plants"`
	Rooms   []roomDump `json:"rooms"`
	Strains []string   `json:"strains"`
}

type roomDump struct {
	Name     string   `json:"name"`
	Capacity int      `json:"capacity"`
	Plants   []string `json:"plants"`
}

func transitionTypeName(t menu.TransitionType) string {
	switch t {
	case menu.TransitionFade:
		return "fade"
	case menu.TransitionSlide:
		return "slide"
	case menu.TransitionScale:
		return "scale"
	default:
		return "none"
	}
}

// DumpMenuStateToFile writes a full snapshot of the menu stack and facility
// to menu_state.json and returns the absolute path.
func DumpMenuStateToFile(g *state.Game, menus *menu.ContextualMenuManager, cm *menu.CommandManager) (string, error) {
	if menus == nil {
		return "", fmt.Errorf("no menu manager")
	}

	info := menus.CurrentState()
	tr := menus.TransitionState()

	dump := stateDump{
		Menu: menuDump{
			Mode:            string(info.Mode),
			IsOpen:          info.IsOpen,
			IsVisible:       info.IsVisible,
			HasFocus:        info.HasFocus,
			SelectedItemID:  info.SelectedItemID,
			SelectedItemIDs: info.SelectedItemIDs,
			PositionX:       info.PositionX,
			PositionY:       info.PositionY,
			IsTransitioning: info.IsTransitioning,
		},
		Transition: transitionDump{
			Type:     transitionTypeName(tr.Type),
			Opening:  tr.Opening,
			Progress: tr.Progress,
			Active:   tr.Active,
		},
		Modes: make(map[string]modeDump),
	}

	for _, mode := range menus.Modes() {
		cfg := menus.MenuConfigFor(mode)
		md := modeDump{
			History:        menus.History(mode),
			MaxMenuItems:   cfg.MaxMenuItems,
			AutoClose:      cfg.AutoCloseOnSelection,
			MultiSelect:    cfg.AllowMultipleSelection,
			TransitionMs:   cfg.TransitionDuration.Milliseconds(),
			TransitionType: transitionTypeName(cfg.Transition),
		}
		if cm != nil {
			md.Commands = cm.AvailableCommands(mode)
		}
		dump.Modes[string(mode)] = md
	}

	if g != nil {
		fd := facilityDump{
			Day:     g.Day,
			Credits: g.Credits,
			Plants:  g.PlantCount(),
		}
		for _, r := range g.Rooms {
			rd := roomDump{Name: r.Name, Capacity: r.Capacity}
			for _, p := range r.Plants {
				rd.Plants = append(rd.Plants, fmt.Sprintf("%s (%s, %s)", p.ID, p.Strain, state.StageName(p.Stage)))
			}
			fd.Rooms = append(fd.Rooms, rd)
		}
		for _, s := range g.Strains {
			fd.Strains = append(fd.Strains, s.Name)
		}
		dump.Facility = fd
	}

	absPath, err := filepath.Abs(stateDumpFilename)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return "", err
	}
	return absPath, nil
}
