package gameplay

import (
	"fmt"

	"chimera/pkg/game/menu"
	"chimera/pkg/game/state"
)

// Construction costs in credits.
const (
	costRoom      = 150
	costWall      = 10
	costDoor      = 25
	costWindow    = 40
	costEquipment = 75
	refundRoom    = 50
	costSchematic = 100
)

func (s *Session) registerConstruction(cm *menu.CommandManager) {
	g := s.Game

	cm.RegisterCommand("place_room", &command{
		can: func() bool { return g.Credits >= costRoom },
		run: func() menu.CommandResult {
			if !g.Spend(costRoom) {
				return menu.Failure("Not enough credits")
			}
			name := fmt.Sprintf("Grow Room %d", len(g.Rooms)+1)
			g.Rooms = append(g.Rooms, &state.Room{Name: name, Capacity: 6})
			s.Blueprint = "room"
			logMessage(g, "Built ROOM{%s}.", name)
			return menu.Success(fmt.Sprintf("Placed %s", name))
		},
	})

	cm.RegisterCommand("place_wall", &command{
		can: func() bool { return len(g.Rooms) > 0 && g.Credits >= costWall },
		run: func() menu.CommandResult {
			if !g.Spend(costWall) {
				return menu.Failure("Not enough credits")
			}
			s.Blueprint = "wall"
			logMessage(g, "Placed an interior wall.")
			return menu.Success("Wall placed")
		},
	})

	cm.RegisterCommand("place_door", &command{
		can: func() bool { return len(g.Rooms) > 0 && g.Credits >= costDoor },
		run: func() menu.CommandResult {
			if !g.Spend(costDoor) {
				return menu.Failure("Not enough credits")
			}
			s.Blueprint = "door"
			logMessage(g, "Fitted a door.")
			return menu.Success("Door placed")
		},
	})

	cm.RegisterCommand("place_window", &command{
		can: func() bool { return len(g.Rooms) > 0 && g.Credits >= costWindow },
		run: func() menu.CommandResult {
			if !g.Spend(costWindow) {
				return menu.Failure("Not enough credits")
			}
			s.Blueprint = "window"
			logMessage(g, "Fitted a window.")
			return menu.Success("Window placed")
		},
	})

	// Equipment expands a room's plant capacity.
	cm.RegisterCommand("place_equipment", &command{
		can: func() bool { return len(g.Rooms) > 0 && g.Credits >= costEquipment },
		run: func() menu.CommandResult {
			if !g.Spend(costEquipment) {
				return menu.Failure("Not enough credits")
			}
			room := g.Rooms[len(g.Rooms)-1]
			room.Capacity += 2
			s.Blueprint = "equipment"
			logMessage(g, "Installed equipment in ROOM{%s} (capacity %d).", room.Name, room.Capacity)
			return menu.Success("Equipment installed")
		},
	})

	cm.RegisterCommand("rotate_blueprint", &command{
		can: func() bool { return s.Blueprint != "" },
		run: func() menu.CommandResult {
			s.Rotation = (s.Rotation + 90) % 360
			return menu.Success(fmt.Sprintf("Blueprint rotated to %d°", s.Rotation))
		},
	})

	// Demolition refuses rooms that still hold plants.
	cm.RegisterCommand("demolish", &command{
		can: func() bool {
			if len(g.Rooms) == 0 {
				return false
			}
			return len(g.Rooms[len(g.Rooms)-1].Plants) == 0
		},
		run: func() menu.CommandResult {
			room := g.Rooms[len(g.Rooms)-1]
			g.Rooms = g.Rooms[:len(g.Rooms)-1]
			g.Earn(refundRoom)
			logMessage(g, "Demolished ROOM{%s}, reclaimed %d credits.", room.Name, refundRoom)
			return menu.Success(fmt.Sprintf("Demolished %s", room.Name))
		},
	})

	cm.RegisterCommand("copy_schematic", &command{
		can: func() bool { return len(g.Rooms) > 0 },
		run: func() menu.CommandResult {
			room := g.Rooms[len(g.Rooms)-1]
			id := "schematic:" + room.Name
			g.OwnedSchematics.Put(id)
			logMessage(g, "Copied schematic of ROOM{%s}.", room.Name)
			return menu.Success(fmt.Sprintf("Schematic saved: %s", room.Name))
		},
	})

	cm.RegisterCommand("apply_schematic", &command{
		can: func() bool { return g.OwnedSchematics.Size() > 0 && g.Credits >= costSchematic },
		run: func() menu.CommandResult {
			if !g.Spend(costSchematic) {
				return menu.Failure("Not enough credits")
			}
			name := fmt.Sprintf("Grow Room %d", len(g.Rooms)+1)
			g.Rooms = append(g.Rooms, &state.Room{Name: name, Capacity: 6})
			logMessage(g, "Applied schematic, built ROOM{%s}.", name)
			return menu.Success(fmt.Sprintf("Schematic applied: %s", name))
		},
	})

	cm.RegisterCommand("toggle_grid_snap", &command{
		run: func() menu.CommandResult {
			s.GridSnap = !s.GridSnap
			if s.GridSnap {
				return menu.Success("Grid snap on")
			}
			return menu.Success("Grid snap off")
		},
	})

	cm.RegisterCommand("cancel_placement", &command{
		can: func() bool { return s.Blueprint != "" },
		run: func() menu.CommandResult {
			s.Blueprint = ""
			s.Rotation = 0
			return menu.Success("Placement cancelled")
		},
	})
}
