// Package ebiten provides an Ebiten-based 2D graphical renderer for Chimera.
package ebiten

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chimera/pkg/game/state"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
// Uses clockwise arcs so the path winds correctly for fill.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding direction.
// CounterClockwise creates a hole when combined with an outer clockwise rect.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawRoundedRectWithShadow draws a rounded rectangle with drop shadow, fill, and border.
// Used by panels and menus. alpha scales the whole draw (for transition fades).
// Shadow color is derived from borderColor (darkened to ~15% brightness).
func drawRoundedRectWithShadow(screen *ebiten.Image, x, y, w, h, cornerRadius, borderWidth float32, bgColor, borderColor color.Color, alpha float32) {
	const shadowSpread = 8
	bor, bog, bob, _ := borderColor.RGBA()
	shadowR := uint8((bor >> 8) * 15 / 255)
	shadowG := uint8((bog >> 8) * 15 / 255)
	shadowB := uint8((bob >> 8) * 15 / 255)
	if shadowR < 8 {
		shadowR = 8
	}
	if shadowG < 8 {
		shadowG = 8
	}
	if shadowB < 8 {
		shadowB = 8
	}

	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		ringAlpha := uint8(12 + i*8)
		if ringAlpha > 55 {
			ringAlpha = 55
		}
		ringAlpha = uint8(float32(ringAlpha) * alpha)
		path.Reset()
		appendRoundedRect(&path,
			x-float32(i), y-float32(i),
			w+float32(i*2), h+float32(i*2),
			cornerRadius+float32(i))
		appendRoundedRectDir(&path,
			x-float32(i-1), y-float32(i-1),
			w+float32((i-1)*2), h+float32((i-1)*2),
			cornerRadius+float32(i-1), vector.CounterClockwise)
		drawOpts := &vector.DrawPathOptions{AntiAlias: true}
		drawOpts.ColorScale.ScaleWithColor(color.RGBA{shadowR, shadowG, shadowB, ringAlpha})
		vector.FillPath(screen, &path, nil, drawOpts)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(applyAlpha(bgColor, float64(alpha)))
	vector.FillPath(screen, &path, nil, drawOpts)

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(applyAlpha(borderColor, float64(alpha)))
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// Draw renders the facility to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if e.monoFontSource == nil || e.sansFontSource == nil {
		return
	}

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	screenWidth := screen.Bounds().Dx()
	screenHeight := screen.Bounds().Dy()

	if snap.valid {
		uiFontSize := e.getUIFontSize()
		headerHeight := int(uiFontSize) + 20

		e.drawHeaderFromSnapshot(screen, &snap, screenWidth, headerHeight)

		// Room cards on the left two-thirds, strain library on the right.
		margin := 20
		libraryWidth := screenWidth / 3
		roomsWidth := screenWidth - libraryWidth - margin*3

		y := headerHeight + margin
		for i := range snap.rooms {
			y = e.drawRoomCard(screen, &snap.rooms[i], margin, y, roomsWidth)
			y += margin / 2
		}

		e.drawStrainLibrary(screen, &snap, margin*2+roomsWidth, headerHeight+margin, libraryWidth)
		e.drawMessagesFromSnapshot(screen, &snap, screenWidth, screenHeight)
	}

	// Menu overlays on top of everything.
	e.drawContextualMenuOverlay(screen)
	e.drawGenericMenuOverlay(screen)
}

// drawHeaderFromSnapshot draws the day counter and credit balance across the top.
func (e *EbitenRenderer) drawHeaderFromSnapshot(screen *ebiten.Image, snap *renderSnapshot, screenWidth, headerHeight int) {
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(headerHeight), colorPanelBackground, false)

	face := e.getSansBoldFontFace()
	e.drawColoredTextWithFace(screen, fmt.Sprintf("Day %d", snap.day), 20, 8, colorText, face)

	credits := fmt.Sprintf("%d credits", snap.credits)
	w := e.getTextWidth(credits)
	e.drawColoredTextWithFace(screen, credits, screenWidth-int(w)-20, 8, colorCredits, face)
}

// drawRoomCard draws one room as a card: name, capacity, plant slot icons and
// per-plant stat bars. Returns the y below the card.
func (e *EbitenRenderer) drawRoomCard(screen *ebiten.Image, room *roomSnapshot, x, y, width int) int {
	uiFontSize := e.getUIFontSize()
	lineHeight := int(uiFontSize) + 6
	slotRowHeight := e.tileSize + 4
	barRowHeight := lineHeight

	height := lineHeight + slotRowHeight + len(room.Plants)*barRowHeight + 16

	drawRoundedRectWithShadow(screen,
		float32(x), float32(y), float32(width), float32(height),
		8, 1.5, colorCardBackground, colorRoom, 1.0)

	// Room name and occupancy
	label := fmt.Sprintf("%s  %d/%d", room.Name, len(room.Plants), room.Capacity)
	e.drawColoredTextWithFace(screen, label, x+12, y+6, colorRoom, e.getSansBoldFontFace())

	// Slot row: one icon per capacity slot
	slotY := y + lineHeight + 8
	for i := 0; i < room.Capacity; i++ {
		icon, col := IconEmptySlot, color.Color(colorEmptySlot)
		if i < len(room.Plants) {
			icon, col = stageIcon(room.Plants[i].Stage)
		}
		e.drawColoredChar(screen, icon, x+12+i*e.tileSize, slotY, col)
	}

	// Per-plant rows: id, strain and stat bars
	rowY := slotY + slotRowHeight
	for i := range room.Plants {
		e.drawPlantRow(screen, &room.Plants[i], x+12, rowY, width-24)
		rowY += barRowHeight
	}

	return y + height
}

// drawPlantRow draws one plant's id, strain and three stat bars.
func (e *EbitenRenderer) drawPlantRow(screen *ebiten.Image, p *plantSnapshot, x, y, width int) {
	label := fmt.Sprintf("%s  %s  (%s)", p.ID, p.Strain, state.StageName(p.Stage))
	e.drawColoredText(screen, label, x, y, colorSubtle)

	// Stat bars right-aligned in the row
	barWidth := 50
	barHeight := 6
	gap := 8
	barsX := x + width - (barWidth+gap)*3
	barY := y + int(e.getUIFontSize())/2

	e.drawStatBar(screen, barsX, barY, barWidth, barHeight, p.Health, colorBarHealth)
	e.drawStatBar(screen, barsX+barWidth+gap, barY, barWidth, barHeight, p.Hydration, colorBarHydration)
	e.drawStatBar(screen, barsX+(barWidth+gap)*2, barY, barWidth, barHeight, p.Nutrients, colorBarNutrients)
}

// drawStatBar draws a 0..100 value as a filled horizontal bar.
func (e *EbitenRenderer) drawStatBar(screen *ebiten.Image, x, y, width, height, value int, col color.Color) {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), colorBarTrack, false)
	fill := float32(width) * float32(value) / 100
	vector.DrawFilledRect(screen, float32(x), float32(y), fill, float32(height), col, false)
}

// drawStrainLibrary draws the strain list and inventory counters.
func (e *EbitenRenderer) drawStrainLibrary(screen *ebiten.Image, snap *renderSnapshot, x, y, width int) {
	uiFontSize := e.getUIFontSize()
	lineHeight := int(uiFontSize) + 6
	height := lineHeight*(len(snap.strains)+3) + 16

	drawRoundedRectWithShadow(screen,
		float32(x), float32(y), float32(width), float32(height),
		8, 1.5, colorPanelBackground, colorStrain, 1.0)

	e.drawColoredTextWithFace(screen, "Strain Library", x+12, y+6, colorStrain, e.getSansBoldFontFace())

	rowY := y + 6 + lineHeight
	for _, s := range snap.strains {
		label := s.Name
		col := color.Color(colorText)
		if s.Stable {
			label += " *"
			col = colorStrain
		}
		e.drawColoredText(screen, label, x+12, rowY, col)
		rowY += lineHeight
	}

	rowY += lineHeight / 2
	counts := fmt.Sprintf("%d schematics, %d tagged phenotypes", snap.schematics, snap.phenotypes)
	e.drawColoredText(screen, counts, x+12, rowY, colorSubtle)
}

// drawMessagesFromSnapshot draws the message log as a bottom-aligned overlay.
func (e *EbitenRenderer) drawMessagesFromSnapshot(screen *ebiten.Image, snap *renderSnapshot, screenWidth, screenHeight int) {
	if len(snap.messages) == 0 {
		return
	}

	uiFontSize := e.getUIFontSize()
	lineHeight := int(uiFontSize) + 4
	panelHeight := lineHeight*len(snap.messages) + 16
	panelY := screenHeight - panelHeight - 12

	drawRoundedRectWithShadow(screen,
		12, float32(panelY), float32(screenWidth-24), float32(panelHeight),
		6, 1, colorPanelBackground, colorSubtle, 1.0)

	y := panelY + 8
	for _, msg := range snap.messages {
		e.drawColoredTextSegments(screen, e.parseMarkup(msg), 24, y)
		y += lineHeight
	}
}
