package setup

import (
	"testing"

	"chimera/pkg/game/menu"
	"chimera/pkg/game/state"
)

func TestNewWorldBindsImplementedCatalogSubset(t *testing.T) {
	w := NewWorld(nil, nil)

	// Seed-bank ids are catalogued but not yet implemented.
	unbound := map[string]bool{"self_pollinate": true, "extract_seed": true}

	for _, mode := range []menu.Mode{menu.ModeConstruction, menu.ModeCultivation, menu.ModeGenetics} {
		if !w.Menus.IsModeAvailable(mode) {
			t.Errorf("mode %s not registered", mode)
		}
		for _, id := range w.Commands.AvailableCommands(mode) {
			if w.Commands.IsCommandRegistered(id) == unbound[id] {
				t.Errorf("catalog entry %q for %s: registered=%v", id, mode, !unbound[id])
			}
		}
	}
}

func TestBuildGameSeedsFacility(t *testing.T) {
	g := BuildGame()

	if len(g.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(g.Rooms))
	}
	if g.PlantCount() != 3 {
		t.Errorf("expected 3 plants, got %d", g.PlantCount())
	}
	if len(g.Strains) != 2 {
		t.Errorf("expected 2 strains, got %d", len(g.Strains))
	}
	if g.OwnedSchematics.Size() != 1 {
		t.Errorf("expected 1 starter schematic, got %d", g.OwnedSchematics.Size())
	}
	if len(g.Messages) == 0 {
		t.Error("expected a welcome message")
	}

	// Seeded plant ids must not collide with future ones.
	seen := map[string]bool{}
	for _, r := range g.Rooms {
		for _, p := range r.Plants {
			if seen[p.ID] {
				t.Errorf("duplicate plant id %s", p.ID)
			}
			seen[p.ID] = true
		}
	}
	if next := g.NextPlantID(); seen[next] {
		t.Errorf("fresh id %s collides with seeded plant", next)
	}
}

func TestWorldMenuFlowAgainstCommands(t *testing.T) {
	w := NewWorld(nil, nil)

	if !w.Menus.OpenMenu(menu.ModeCultivation) {
		t.Fatal("could not open cultivation menu")
	}
	for w.Menus.TransitionState().Active {
		w.Menus.UpdateTransitions(w.Menus.MenuConfigFor(menu.ModeCultivation).TransitionDuration)
	}

	res := w.Commands.ExecuteID("water_plant")
	if !res.IsSuccess {
		t.Fatalf("water_plant failed: %s", res.Message)
	}

	// Cultivation keeps the menu open across selections.
	w.Menus.SelectMenuItem("water_plant")
	if !w.Menus.IsMenuOpen() {
		t.Error("cultivation menu should stay open (multi-select, no auto-close)")
	}
}

func TestWorldFromPreservesLoadedState(t *testing.T) {
	g := state.NewGame()
	g.Day = 9
	w := WorldFrom(g, nil, nil)
	if w.Game.Day != 9 {
		t.Errorf("expected day 9, got %d", w.Game.Day)
	}
	if w.Session.Game != g {
		t.Error("session not bound to loaded game")
	}
}
