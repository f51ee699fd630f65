package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// SlotInfo describes one save slot for the save/load menu.
type SlotInfo struct {
	Name    string
	Day     int
	Credits int
	Plants  int
	SavedAt time.Time
}

// saveFile is the serialized form of Game. The mapset fields flatten to
// sorted slices so saves diff cleanly.
type saveFile struct {
	Rooms            []*Room   `json:"rooms"`
	Strains          []*Strain `json:"strains"`
	Credits          int       `json:"credits"`
	Day              int       `json:"day"`
	NextID           int       `json:"next_id"`
	NavStyle         NavStyle  `json:"nav_style"`
	OwnedSchematics  []string  `json:"owned_schematics"`
	TaggedPhenotypes []string  `json:"tagged_phenotypes"`
	SavedAt          time.Time `json:"saved_at"`
}

func setToSlice(s mapset.Set[string]) []string {
	out := make([]string, 0, s.Size())
	s.Each(func(v string) {
		out = append(out, v)
	})
	sort.Strings(out)
	return out
}

func sliceToSet(values []string) mapset.Set[string] {
	s := mapset.New[string]()
	for _, v := range values {
		s.Put(v)
	}
	return s
}

// SaveToSlot writes the game to a named slot under dir.
func (g *Game) SaveToSlot(dir, name string) error {
	if name == "" {
		return fmt.Errorf("save: empty slot name")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	sf := saveFile{
		Rooms:            g.Rooms,
		Strains:          g.Strains,
		Credits:          g.Credits,
		Day:              g.Day,
		NextID:           g.NextID,
		NavStyle:         g.NavStyle,
		OwnedSchematics:  setToSlice(g.OwnedSchematics),
		TaggedPhenotypes: setToSlice(g.TaggedPhenotypes),
		SavedAt:          time.Now(),
	}
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := os.WriteFile(slotPath(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// LoadFromSlot reads a game from a named slot under dir.
func LoadFromSlot(dir, name string) (*Game, error) {
	data, err := os.ReadFile(slotPath(dir, name))
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	var sf saveFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("load: corrupt save %q: %w", name, err)
	}

	g := NewGame()
	g.Rooms = sf.Rooms
	g.Strains = sf.Strains
	g.Credits = sf.Credits
	g.Day = sf.Day
	g.NextID = sf.NextID
	g.NavStyle = sf.NavStyle
	g.OwnedSchematics = sliceToSet(sf.OwnedSchematics)
	g.TaggedPhenotypes = sliceToSet(sf.TaggedPhenotypes)
	return g, nil
}

// ListSlots returns the available save slots under dir, newest first.
// A missing directory is an empty list, not an error.
func ListSlots(dir string) ([]SlotInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	var slots []SlotInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		name := entry.Name()[:len(entry.Name())-len(".json")]
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		var sf saveFile
		if err := json.Unmarshal(data, &sf); err != nil {
			// Unreadable slots are listed so the player can overwrite them.
			slots = append(slots, SlotInfo{Name: name})
			continue
		}
		plants := 0
		for _, r := range sf.Rooms {
			plants += len(r.Plants)
		}
		slots = append(slots, SlotInfo{
			Name:    name,
			Day:     sf.Day,
			Credits: sf.Credits,
			Plants:  plants,
			SavedAt: sf.SavedAt,
		})
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].SavedAt.After(slots[j].SavedAt)
	})
	return slots, nil
}

func slotPath(dir, name string) string {
	return filepath.Join(dir, name+".json")
}
