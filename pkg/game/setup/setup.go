// Package setup builds a playable facility and wires the contextual menu
// stack together: game state, menu manager, command manager and the
// gameplay session behind the commands.
package setup

import (
	"chimera/pkg/game/gameplay"
	"chimera/pkg/game/menu"
	"chimera/pkg/game/renderer"
	"chimera/pkg/game/state"
)

// World is the fully wired game: everything the main loop needs.
type World struct {
	Game     *state.Game
	Session  *gameplay.Session
	Menus    *menu.ContextualMenuManager
	Commands *menu.CommandManager
}

// NewWorld creates a fresh demo facility and wires the menu stack around
// it. pointer and screen are the platform providers for menu positioning;
// either may be nil.
func NewWorld(pointer menu.PointerProvider, screen menu.ScreenProvider) *World {
	return wireWorld(BuildGame(), pointer, screen)
}

// WorldFrom wires the menu stack around an existing game, e.g. one read
// from a save slot.
func WorldFrom(g *state.Game, pointer menu.PointerProvider, screen menu.ScreenProvider) *World {
	return wireWorld(g, pointer, screen)
}

func wireWorld(g *state.Game, pointer menu.PointerProvider, screen menu.ScreenProvider) *World {
	session := gameplay.NewSession(g)
	menus := menu.NewContextualMenuManager(pointer, screen, nil)
	commands := menu.NewCommandManager(nil)
	session.RegisterCommands(commands)

	return &World{
		Game:     g,
		Session:  session,
		Menus:    menus,
		Commands: commands,
	}
}

// BuildGame creates a new game seeded with the demo facility.
func BuildGame() *state.Game {
	g := state.NewGame()
	seedFacility(g)

	g.ClearMessages()
	logMessage(g, "Welcome to the facility.")
	logMessage(g, "ACTION{b}uild, ACTION{c}ultivate or ACTION{g}enetics to open a menu.")
	return g
}

// seedFacility stocks the starting rooms, plants and strain library.
func seedFacility(g *state.Game) {
	g.Strains = []*state.Strain{
		{Name: "Northern Lights", Lineage: "landrace", Generation: 4, Stable: true},
		{Name: "Blue Dream", Lineage: "Blueberry / Haze", Generation: 2},
	}

	veg := &state.Room{Name: "Veg Room", Capacity: 4}
	flower := &state.Room{Name: "Flower Room", Capacity: 6}
	g.Rooms = []*state.Room{veg, flower}

	veg.Plants = append(veg.Plants,
		&state.Plant{ID: g.NextPlantID(), Strain: "Northern Lights", Stage: state.StageVegetative, Health: 90, Hydration: 60, Nutrients: 55},
		&state.Plant{ID: g.NextPlantID(), Strain: "Blue Dream", Stage: state.StageSeedling, Health: 100, Hydration: 70, Nutrients: 50},
	)
	flower.Plants = append(flower.Plants,
		&state.Plant{ID: g.NextPlantID(), Strain: "Northern Lights", Stage: state.StageFlowering, Health: 85, Hydration: 45, Nutrients: 60},
	)

	g.OwnedSchematics.Put("schematic:Veg Room")
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.ApplyMarkup(msg, a...))
}
