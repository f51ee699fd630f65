// Package gameplay implements the facility actions behind the contextual
// menu commands: construction, cultivation and genetics.
package gameplay

import (
	"chimera/pkg/game/menu"
	"chimera/pkg/game/renderer"
	"chimera/pkg/game/state"
)

// Session is the live gameplay context the menu commands operate on. It
// tracks the player's current targets (plant, strain, placement blueprint)
// on top of the persistent game state.
type Session struct {
	Game *state.Game

	// Active placement, empty when nothing is being placed.
	Blueprint string
	Rotation  int
	GridSnap  bool

	// Current targets for cultivation/genetics commands. Empty means
	// "first applicable".
	SelectedPlantID string
	SelectedStrain  string

	// Pending name for rename_strain, set by the rename dialog.
	PendingStrainName string
}

// NewSession creates a session over the given game.
func NewSession(g *state.Game) *Session {
	return &Session{Game: g, GridSnap: true}
}

// RegisterCommands binds the implemented facility commands to the command
// manager. Catalog ids without a binding are deliberate: the menu shows them
// disabled and ExecuteID reports a validation failure.
func (s *Session) RegisterCommands(cm *menu.CommandManager) {
	s.registerConstruction(cm)
	s.registerCultivation(cm)
	s.registerGenetics(cm)
}

// command adapts a pair of closures to the menu command contract.
type command struct {
	can func() bool
	run func() menu.CommandResult
}

func (c *command) CanExecute() bool {
	if c.can == nil {
		return true
	}
	return c.can()
}

func (c *command) Execute() menu.CommandResult {
	return c.run()
}

// targetPlant resolves the plant a cultivation command acts on: the selected
// plant if set, otherwise the first plant in the facility.
func (s *Session) targetPlant() (*state.Plant, *state.Room) {
	if s.SelectedPlantID != "" {
		return s.Game.FindPlant(s.SelectedPlantID)
	}
	for _, r := range s.Game.Rooms {
		if len(r.Plants) > 0 {
			return r.Plants[0], r
		}
	}
	return nil, nil
}

// targetStrain resolves the strain a genetics command acts on.
func (s *Session) targetStrain() *state.Strain {
	if s.SelectedStrain != "" {
		return s.Game.FindStrain(s.SelectedStrain)
	}
	if len(s.Game.Strains) > 0 {
		return s.Game.Strains[0]
	}
	return nil
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.ApplyMarkup(msg, a...))
}

func clampStat(v int) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}
