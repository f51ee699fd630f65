package state

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// NavStyle represents the navigation key style
type NavStyle int

// Navigation styles
const (
	NavStyleArrows NavStyle = iota
	NavStyleVim
)

// PlantStage is a plant's growth stage.
type PlantStage int

const (
	StageSeedling PlantStage = iota
	StageVegetative
	StageFlowering
	StageHarvestable
)

// StageName returns a display name for a growth stage.
func StageName(s PlantStage) string {
	switch s {
	case StageSeedling:
		return "Seedling"
	case StageVegetative:
		return "Vegetative"
	case StageFlowering:
		return "Flowering"
	case StageHarvestable:
		return "Harvestable"
	default:
		return "Unknown"
	}
}

// Plant is a single plant under cultivation.
type Plant struct {
	ID        string
	Strain    string
	Stage     PlantStage
	Health    int // 0..100
	Hydration int // 0..100
	Nutrients int // 0..100
}

// Room is one room of the facility.
type Room struct {
	Name     string
	Capacity int
	Plants   []*Plant
}

// Strain is a genetic line in the library.
type Strain struct {
	Name       string
	Lineage    string
	Generation int
	Stable     bool
}

// Game holds the facility state the UI operates on.
type Game struct {
	Rooms   []*Room
	Strains []*Strain
	Credits int
	Day     int

	// Schematics the player owns and phenotypes tagged for breeding.
	OwnedSchematics  mapset.Set[string]
	TaggedPhenotypes mapset.Set[string]

	Messages []string

	NavStyle NavStyle

	// Monotonic counter backing NextPlantID; survives harvests.
	NextID int
}

// NewGame creates an empty game instance.
func NewGame() *Game {
	return &Game{
		OwnedSchematics:  mapset.New[string](),
		TaggedPhenotypes: mapset.New[string](),
		Messages:         make([]string, 0),
		Credits:          500,
		Day:              1,
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// FindRoom returns the named room, or nil.
func (g *Game) FindRoom(name string) *Room {
	for _, r := range g.Rooms {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// FindPlant returns the plant with the given id and its room, or nils.
func (g *Game) FindPlant(id string) (*Plant, *Room) {
	for _, r := range g.Rooms {
		for _, p := range r.Plants {
			if p.ID == id {
				return p, r
			}
		}
	}
	return nil, nil
}

// FindStrain returns the named strain, or nil.
func (g *Game) FindStrain(name string) *Strain {
	for _, s := range g.Strains {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// PlantCount returns the number of plants across all rooms.
func (g *Game) PlantCount() int {
	n := 0
	for _, r := range g.Rooms {
		n += len(r.Plants)
	}
	return n
}

// Spend deducts credits, failing if the balance is insufficient.
func (g *Game) Spend(amount int) bool {
	if amount < 0 || g.Credits < amount {
		return false
	}
	g.Credits -= amount
	return true
}

// Earn adds credits.
func (g *Game) Earn(amount int) {
	if amount > 0 {
		g.Credits += amount
	}
}

// NextPlantID returns a fresh plant id.
func (g *Game) NextPlantID() string {
	g.NextID++
	return fmt.Sprintf("plant-%d", g.NextID)
}
