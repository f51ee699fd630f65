// Package ebiten provides an Ebiten-based 2D graphical renderer for Chimera.
package ebiten

import (
	"image/color"

	"chimera/pkg/game/state"
)

// Color palette - brighter colors for visibility on the dark background
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorCardBackground  = color.RGBA{22, 36, 30, 235}    // Dark green tint for room cards
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorHighlight       = color.RGBA{255, 220, 100, 255} // Yellow for the selected row
	colorRoom            = color.RGBA{100, 200, 255, 255} // Cyan for room names
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorStrain          = color.RGBA{120, 255, 160, 255} // Green for strain names
	colorCredits         = color.RGBA{255, 200, 100, 255} // Orange for credits

	colorSeedling    = color.RGBA{150, 220, 150, 255}
	colorVegetative  = color.RGBA{80, 220, 80, 255}
	colorFlowering   = color.RGBA{240, 150, 240, 255}
	colorHarvestable = color.RGBA{255, 220, 100, 255}
	colorEmptySlot   = color.RGBA{70, 75, 100, 255}

	colorBarHealth    = color.RGBA{100, 220, 120, 255}
	colorBarHydration = color.RGBA{100, 170, 255, 255}
	colorBarNutrients = color.RGBA{230, 190, 90, 255}
	colorBarTrack     = color.RGBA{50, 52, 76, 255}
)

// Plant slot icons per growth stage
const (
	IconSeedling    = "."
	IconVegetative  = "·"
	IconFlowering   = "*"
	IconHarvestable = "✿"
	IconEmptySlot   = "_"
)

// stageIcon returns the map icon and color for a growth stage.
func stageIcon(s state.PlantStage) (string, color.Color) {
	switch s {
	case state.StageSeedling:
		return IconSeedling, colorSeedling
	case state.StageVegetative:
		return IconVegetative, colorVegetative
	case state.StageFlowering:
		return IconFlowering, colorFlowering
	case state.StageHarvestable:
		return IconHarvestable, colorHarvestable
	default:
		return IconEmptySlot, colorEmptySlot
	}
}

// Tile size constraints
const (
	minTileSize     = 12
	maxTileSize     = 96
	tileSizeStep    = 4
	defaultTileSize = 24
	baseFontSize    = 16.0 // Base font size at default tile size
)

const (
	keyRepeatInitialDelay = 500 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeat events (milliseconds)
)
