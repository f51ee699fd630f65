// Package ebiten provides an Ebiten-based 2D graphical renderer for Chimera.
package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "chimera/pkg/engine/input"
	gamemenu "chimera/pkg/game/menu"
	"chimera/pkg/game/state"
)

// plantSnapshot holds one plant's display state.
type plantSnapshot struct {
	ID        string
	Strain    string
	Stage     state.PlantStage
	Health    int
	Hydration int
	Nutrients int
}

// roomSnapshot holds one room's display state.
type roomSnapshot struct {
	Name     string
	Capacity int
	Plants   []plantSnapshot
}

// strainSnapshot holds one strain library row.
type strainSnapshot struct {
	Name   string
	Stable bool
}

// renderSnapshot holds a consistent snapshot of facility state for rendering.
// This prevents jitter from race conditions between game logic and rendering.
type renderSnapshot struct {
	valid      bool
	day        int
	credits    int
	rooms      []roomSnapshot
	strains    []strainSnapshot
	schematics int
	phenotypes int
	messages   []string
}

// keyRepeatInfo tracks the repeat state for a key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource // Monospace font for icons
	sansFontSource     *text.GoTextFaceSource // Sans-serif font for UI text
	sansBoldFontSource *text.GoTextFaceSource // Sans-serif bold for menu titles

	// Cached font faces (recreated when tile size changes)
	cachedUIFontSize        float64
	cachedMonoFontSize      float64
	cachedSansFace          *text.GoTextFace
	cachedSansBoldFace      *text.GoTextFace
	cachedSansBoldTitleFace *text.GoTextFace
	cachedSansBoldTitleSize float64
	cachedMonoFace          *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// Raw key capture for rebinding (ReadRawCode)
	rawChan      chan string
	rawCapturing bool
	rawMutex     sync.Mutex

	// Key repeat state tracking
	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	// Generic list menu overlay state (main menu, settings, save/load)
	genericMenuActive   bool
	genericMenuItems    []gamemenu.MenuItem
	genericMenuSelected int
	genericMenuHelpText string
	genericMenuTitle    string
	genericMenuMutex    sync.RWMutex

	// Contextual menu overlay state
	ctxMenuActive   bool
	ctxMenuInfo     gamemenu.MenuStateInfo
	ctxMenuItems    []gamemenu.MenuItem
	ctxMenuSelected int
	ctxMenuHelpText string
	ctxMenuMutex    sync.RWMutex

	// Transition driver: when set, Update advances the manager's in-flight
	// transition every frame and Draw reads live progress from it.
	menus      *gamemenu.ContextualMenuManager
	menusMutex sync.RWMutex
	lastUpdate int64 // UnixNano of the previous Update tick

	// Set when the game loop finished; Update returns ebiten.Termination.
	quit      bool
	quitMutex sync.Mutex

	windowOpenedLogged bool
}
