package gameplay

import (
	"fmt"

	"chimera/pkg/game/menu"
	"chimera/pkg/game/state"
)

const (
	costNutrients   = 5
	costEnvironment = 10
	harvestValue    = 120
)

func (s *Session) registerCultivation(cm *menu.CommandManager) {
	g := s.Game

	cm.RegisterCommand("water_plant", &command{
		can: func() bool { p, _ := s.targetPlant(); return p != nil },
		run: func() menu.CommandResult {
			p, _ := s.targetPlant()
			p.Hydration = clampStat(p.Hydration + 30)
			logMessage(g, "Watered ITEM{%s} (hydration %d).", p.Strain, p.Hydration)
			return menu.Success(fmt.Sprintf("Watered %s", p.ID))
		},
	})

	cm.RegisterCommand("feed_nutrients", &command{
		can: func() bool {
			p, _ := s.targetPlant()
			return p != nil && g.Credits >= costNutrients
		},
		run: func() menu.CommandResult {
			if !g.Spend(costNutrients) {
				return menu.Failure("Not enough credits")
			}
			p, _ := s.targetPlant()
			p.Nutrients = clampStat(p.Nutrients + 30)
			logMessage(g, "Fed ITEM{%s} (nutrients %d).", p.Strain, p.Nutrients)
			return menu.Success(fmt.Sprintf("Fed %s", p.ID))
		},
	})

	cm.RegisterCommand("prune_plant", &command{
		can: func() bool {
			p, _ := s.targetPlant()
			return p != nil && p.Stage >= state.StageVegetative
		},
		run: func() menu.CommandResult {
			p, _ := s.targetPlant()
			p.Health = clampStat(p.Health + 10)
			logMessage(g, "Pruned ITEM{%s} (health %d).", p.Strain, p.Health)
			return menu.Success(fmt.Sprintf("Pruned %s", p.ID))
		},
	})

	cm.RegisterCommand("train_plant", &command{
		can: func() bool {
			p, _ := s.targetPlant()
			return p != nil && p.Stage == state.StageVegetative
		},
		run: func() menu.CommandResult {
			p, _ := s.targetPlant()
			p.Health = clampStat(p.Health + 5)
			logMessage(g, "Trained ITEM{%s}.", p.Strain)
			return menu.Success(fmt.Sprintf("Trained %s", p.ID))
		},
	})

	cm.RegisterCommand("transplant", &command{
		can: func() bool {
			p, from := s.targetPlant()
			return p != nil && s.roomWithSpace(from) != nil
		},
		run: func() menu.CommandResult {
			p, from := s.targetPlant()
			to := s.roomWithSpace(from)
			if to == nil {
				return menu.Failure("No room has free capacity")
			}
			removePlant(from, p)
			to.Plants = append(to.Plants, p)
			logMessage(g, "Moved ITEM{%s} to ROOM{%s}.", p.Strain, to.Name)
			return menu.Success(fmt.Sprintf("Transplanted %s to %s", p.ID, to.Name))
		},
	})

	cm.RegisterCommand("harvest_plant", &command{
		can: func() bool {
			p, _ := s.targetPlant()
			return p != nil && p.Stage == state.StageHarvestable
		},
		run: func() menu.CommandResult {
			p, room := s.targetPlant()
			removePlant(room, p)
			if s.SelectedPlantID == p.ID {
				s.SelectedPlantID = ""
			}
			g.Earn(harvestValue)
			logMessage(g, "Harvested ITEM{%s}, earned %d credits.", p.Strain, harvestValue)
			return menu.Success(fmt.Sprintf("Harvested %s", p.ID))
		},
	})

	cm.RegisterCommand("inspect_plant", &command{
		can: func() bool { p, _ := s.targetPlant(); return p != nil },
		run: func() menu.CommandResult {
			p, room := s.targetPlant()
			logMessage(g, "ITEM{%s} in ROOM{%s}: %s, health %d, hydration %d, nutrients %d.",
				p.Strain, room.Name, state.StageName(p.Stage), p.Health, p.Hydration, p.Nutrients)
			return menu.Success(fmt.Sprintf("Inspected %s", p.ID))
		},
	})

	// Adjusting environment benefits every plant in the target's room.
	cm.RegisterCommand("adjust_environment", &command{
		can: func() bool {
			p, _ := s.targetPlant()
			return p != nil && g.Credits >= costEnvironment
		},
		run: func() menu.CommandResult {
			if !g.Spend(costEnvironment) {
				return menu.Failure("Not enough credits")
			}
			_, room := s.targetPlant()
			for _, p := range room.Plants {
				p.Health = clampStat(p.Health + 5)
			}
			logMessage(g, "Adjusted environment in ROOM{%s}.", room.Name)
			return menu.Success(fmt.Sprintf("Environment adjusted in %s", room.Name))
		},
	})

	cm.RegisterCommand("clear_waste", &command{
		can: func() bool { return len(g.Rooms) > 0 },
		run: func() menu.CommandResult {
			for _, r := range g.Rooms {
				for _, p := range r.Plants {
					p.Health = clampStat(p.Health + 2)
				}
			}
			logMessage(g, "Cleared plant waste.")
			return menu.Success("Waste cleared")
		},
	})
}

// roomWithSpace returns a room other than exclude with free plant capacity.
func (s *Session) roomWithSpace(exclude *state.Room) *state.Room {
	for _, r := range s.Game.Rooms {
		if r == exclude {
			continue
		}
		if len(r.Plants) < r.Capacity {
			return r
		}
	}
	return nil
}

func removePlant(r *state.Room, p *state.Plant) {
	for i, existing := range r.Plants {
		if existing == p {
			r.Plants = append(r.Plants[:i], r.Plants[i+1:]...)
			return
		}
	}
}
