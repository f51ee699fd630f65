// Package ebiten provides an Ebiten-based 2D graphical renderer for Chimera.
package ebiten

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "chimera/pkg/engine/input"
	"chimera/pkg/game/config"
	"chimera/pkg/game/renderer"
	"chimera/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    1024,
		windowHeight:   768,
		tileSize:       defaultTileSize,
		inputChan:      make(chan engineinput.Intent, 8),
		rawChan:        make(chan string, 1),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init loads fonts and restores the persisted tile size.
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		log.Printf("font init failed: %v", err)
	}
	if size := config.Current().TileSize; size >= minTileSize && size <= maxTileSize {
		e.tileSize = size
	}
}

// Run starts the window and blocks until the game function returns or the
// window is closed. game runs on its own goroutine; Ebiten owns this one.
func (e *EbitenRenderer) Run(game func()) error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Chimera")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	go func() {
		game()
		e.quitMutex.Lock()
		e.quit = true
		e.quitMutex.Unlock()
	}()

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Clear is a no-op: the screen is redrawn from scratch every frame.
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the window produces the next high-level intent.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	return <-e.inputChan
}

// ReadRawCode blocks until the next key press and returns its raw binding
// code. Used by the settings menu for rebinding.
func (e *EbitenRenderer) ReadRawCode() string {
	e.rawMutex.Lock()
	e.rawCapturing = true
	e.rawMutex.Unlock()
	return <-e.rawChan
}

// StyleText wraps text in markup that parseMarkup colors at draw time.
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return "ROOM{" + text + "}"
	case renderer.StyleItem:
		return "ITEM{" + text + "}"
	case renderer.StyleStrain:
		return "STRAIN{" + text + "}"
	case renderer.StyleAction, renderer.StyleActionShort:
		return "ACTION{" + text + "}"
	case renderer.StyleDenied:
		return "DENIED{" + text + "}"
	case renderer.StyleSubtle:
		return "SUBTLE{" + text + "}"
	case renderer.StyleHighlight:
		return "HIGHLIGHT{" + text + "}"
	default:
		return text
	}
}

// FormatText interpolates arguments but keeps markup intact; segments are
// colored when drawn.
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// ShowMessage logs a message; the overlay shows the game's message log.
func (e *EbitenRenderer) ShowMessage(msg string) {
	log.Print(renderer.StripMarkup(msg))
}

// ScreenSize reports the drawable area for menu positioning.
func (e *EbitenRenderer) ScreenSize() (width, height int) {
	if w, h := ebiten.WindowSize(); w > 0 && h > 0 {
		return w, h
	}
	return e.windowWidth, e.windowHeight
}

// RenderFrame captures a snapshot of the facility for the next Draw call.
// The snapshot keeps drawing consistent while the game goroutine mutates state.
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if g == nil {
		e.snapshot.valid = false
		return
	}

	snap := renderSnapshot{
		valid:      true,
		day:        g.Day,
		credits:    g.Credits,
		schematics: g.OwnedSchematics.Size(),
		phenotypes: g.TaggedPhenotypes.Size(),
	}

	snap.rooms = make([]roomSnapshot, 0, len(g.Rooms))
	for _, r := range g.Rooms {
		rs := roomSnapshot{Name: r.Name, Capacity: r.Capacity}
		for _, p := range r.Plants {
			rs.Plants = append(rs.Plants, plantSnapshot{
				ID:        p.ID,
				Strain:    p.Strain,
				Stage:     p.Stage,
				Health:    p.Health,
				Hydration: p.Hydration,
				Nutrients: p.Nutrients,
			})
		}
		snap.rooms = append(snap.rooms, rs)
	}

	snap.strains = make([]strainSnapshot, 0, len(g.Strains))
	for _, s := range g.Strains {
		snap.strains = append(snap.strains, strainSnapshot{Name: s.Name, Stable: s.Stable})
	}

	snap.messages = make([]string, len(g.Messages))
	copy(snap.messages, g.Messages)

	e.snapshot = snap
}
