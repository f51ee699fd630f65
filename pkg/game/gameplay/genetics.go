package gameplay

import (
	"fmt"

	"chimera/pkg/game/menu"
	"chimera/pkg/game/state"
)

const (
	costCrossBreed = 50
	costGerminate  = 20

	// Generations of backcrossing before a line can be stabilized.
	stableGeneration = 3
)

// registerGenetics binds the breeding commands. The seed-bank catalog ids
// (self_pollinate, extract_seed) stay unbound until a seed inventory exists;
// the menu lists them disabled.
func (s *Session) registerGenetics(cm *menu.CommandManager) {
	g := s.Game

	cm.RegisterCommand("cross_breed", &command{
		can: func() bool { return len(g.Strains) >= 2 && g.Credits >= costCrossBreed },
		run: func() menu.CommandResult {
			if !g.Spend(costCrossBreed) {
				return menu.Failure("Not enough credits")
			}
			a, b := g.Strains[0], g.Strains[1]
			if sel := s.targetStrain(); sel != nil && sel != a {
				b = sel
			}
			child := &state.Strain{
				Name:       a.Name + " x " + b.Name,
				Lineage:    a.Name + " / " + b.Name,
				Generation: 1,
			}
			g.Strains = append(g.Strains, child)
			logMessage(g, "Crossed ITEM{%s} with ITEM{%s}.", a.Name, b.Name)
			return menu.Success(fmt.Sprintf("New cross: %s", child.Name))
		},
	})

	cm.RegisterCommand("backcross", &command{
		can: func() bool {
			st := s.targetStrain()
			return st != nil && !st.Stable
		},
		run: func() menu.CommandResult {
			st := s.targetStrain()
			st.Generation++
			logMessage(g, "Backcrossed ITEM{%s} to generation %d.", st.Name, st.Generation)
			return menu.Success(fmt.Sprintf("%s is now F%d", st.Name, st.Generation))
		},
	})

	cm.RegisterCommand("analyze_genotype", &command{
		can: func() bool { return s.targetStrain() != nil },
		run: func() menu.CommandResult {
			st := s.targetStrain()
			stability := "unstable"
			if st.Stable {
				stability = "stable"
			}
			logMessage(g, "ITEM{%s}: generation %d, %s.", st.Name, st.Generation, stability)
			return menu.Success(fmt.Sprintf("Analyzed %s", st.Name))
		},
	})

	cm.RegisterCommand("view_pedigree", &command{
		can: func() bool { return s.targetStrain() != nil },
		run: func() menu.CommandResult {
			st := s.targetStrain()
			lineage := st.Lineage
			if lineage == "" {
				lineage = "landrace"
			}
			logMessage(g, "Pedigree of ITEM{%s}: %s.", st.Name, lineage)
			return menu.Success(fmt.Sprintf("Pedigree: %s", lineage))
		},
	})

	cm.RegisterCommand("germinate_seed", &command{
		can: func() bool {
			return s.targetStrain() != nil && s.roomWithSpace(nil) != nil && g.Credits >= costGerminate
		},
		run: func() menu.CommandResult {
			if !g.Spend(costGerminate) {
				return menu.Failure("Not enough credits")
			}
			st := s.targetStrain()
			room := s.roomWithSpace(nil)
			if room == nil {
				return menu.Failure("No room has free capacity")
			}
			p := &state.Plant{
				ID:        g.NextPlantID(),
				Strain:    st.Name,
				Stage:     state.StageSeedling,
				Health:    100,
				Hydration: 50,
				Nutrients: 50,
			}
			room.Plants = append(room.Plants, p)
			logMessage(g, "Germinated ITEM{%s} in ROOM{%s}.", st.Name, room.Name)
			return menu.Success(fmt.Sprintf("Germinated %s as %s", st.Name, p.ID))
		},
	})

	cm.RegisterCommand("tag_phenotype", &command{
		can: func() bool { p, _ := s.targetPlant(); return p != nil },
		run: func() menu.CommandResult {
			p, _ := s.targetPlant()
			g.TaggedPhenotypes.Put(p.ID)
			logMessage(g, "Tagged phenotype of ITEM{%s}.", p.Strain)
			return menu.Success(fmt.Sprintf("Tagged %s", p.ID))
		},
	})

	cm.RegisterCommand("stabilize_strain", &command{
		can: func() bool {
			st := s.targetStrain()
			return st != nil && !st.Stable && st.Generation >= stableGeneration
		},
		run: func() menu.CommandResult {
			st := s.targetStrain()
			st.Stable = true
			logMessage(g, "ITEM{%s} is now a stable line.", st.Name)
			return menu.Success(fmt.Sprintf("%s stabilized", st.Name))
		},
	})

	cm.RegisterCommand("discard_sample", &command{
		can: func() bool { return g.TaggedPhenotypes.Size() > 0 },
		run: func() menu.CommandResult {
			var victim string
			g.TaggedPhenotypes.Each(func(id string) {
				if victim == "" {
					victim = id
				}
			})
			g.TaggedPhenotypes.Remove(victim)
			logMessage(g, "Discarded sample %s.", victim)
			return menu.Success(fmt.Sprintf("Discarded %s", victim))
		},
	})

	cm.RegisterCommand("rename_strain", &command{
		can: func() bool { return s.targetStrain() != nil && s.PendingStrainName != "" },
		run: func() menu.CommandResult {
			st := s.targetStrain()
			old := st.Name
			st.Name = s.PendingStrainName
			s.PendingStrainName = ""
			if s.SelectedStrain == old {
				s.SelectedStrain = st.Name
			}
			logMessage(g, "Renamed ITEM{%s} to ITEM{%s}.", old, st.Name)
			return menu.Success(fmt.Sprintf("Renamed %s to %s", old, st.Name))
		},
	})
}
