// Package ebiten provides an Ebiten-based 2D graphical renderer for Chimera.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	gamemenu "chimera/pkg/game/menu"
	"chimera/pkg/game/state"
)

// AnimatesTransitions reports that this renderer advances menu transitions
// from its own frame clock, so run loops must not fast-forward them.
func (e *EbitenRenderer) AnimatesTransitions() bool { return true }

// DriveTransitions hands the renderer the menu manager whose in-flight
// transition it should advance every frame. Draw also reads live transition
// progress from it, so open/close animations play between input events.
func (e *EbitenRenderer) DriveTransitions(menus *gamemenu.ContextualMenuManager) {
	e.menusMutex.Lock()
	e.menus = menus
	e.menusMutex.Unlock()
}

// RenderMenu implements gamemenu.MenuRenderer: it stores the list menu state
// and marks the overlay active. Drawing happens in Draw.
func (e *EbitenRenderer) RenderMenu(g *state.Game, items []gamemenu.MenuItem, selected int, helpText string, title string) {
	e.RenderFrame(g)

	e.genericMenuMutex.Lock()
	defer e.genericMenuMutex.Unlock()
	e.genericMenuActive = true
	e.genericMenuSelected = selected
	e.genericMenuHelpText = helpText
	e.genericMenuTitle = title
	e.genericMenuItems = make([]gamemenu.MenuItem, len(items))
	copy(e.genericMenuItems, items)
}

// RenderContextualMenu implements gamemenu.ContextualMenuRenderer: it stores
// the contextual menu state for Draw. Transition progress passed here is a
// snapshot; Draw prefers the live state from the driven manager.
func (e *EbitenRenderer) RenderContextualMenu(g *state.Game, info gamemenu.MenuStateInfo, tr gamemenu.TransitionState, items []gamemenu.MenuItem, selected int, helpText string) {
	e.RenderFrame(g)

	e.ctxMenuMutex.Lock()
	defer e.ctxMenuMutex.Unlock()
	e.ctxMenuActive = true
	e.ctxMenuInfo = info
	e.ctxMenuSelected = selected
	e.ctxMenuHelpText = helpText
	e.ctxMenuItems = make([]gamemenu.MenuItem, len(items))
	copy(e.ctxMenuItems, items)
}

// ClearMenu hides both menu overlays. The contextual items are retained so a
// closing transition can finish animating before the panel disappears.
func (e *EbitenRenderer) ClearMenu() {
	e.genericMenuMutex.Lock()
	e.genericMenuActive = false
	e.genericMenuItems = nil
	e.genericMenuHelpText = ""
	e.genericMenuTitle = ""
	e.genericMenuMutex.Unlock()

	e.ctxMenuMutex.Lock()
	e.ctxMenuActive = false
	e.ctxMenuMutex.Unlock()
}

// liveTransition returns the current transition state, preferring the driven
// manager over the snapshot captured at render time.
func (e *EbitenRenderer) liveTransition() gamemenu.TransitionState {
	e.menusMutex.RLock()
	menus := e.menus
	e.menusMutex.RUnlock()
	if menus != nil {
		return menus.TransitionState()
	}
	return gamemenu.TransitionState{}
}

// openness converts a transition state into a 0..1 visibility factor.
func openness(tr gamemenu.TransitionState, menuActive bool) float64 {
	if !tr.Active {
		if menuActive {
			return 1
		}
		return 0
	}
	if tr.Opening {
		return tr.Progress
	}
	return 1 - tr.Progress
}

// drawContextualMenuOverlay draws the contextual command menu as a floating
// panel at the menu's resolved position, animated by the in-flight transition.
func (e *EbitenRenderer) drawContextualMenuOverlay(screen *ebiten.Image) {
	e.ctxMenuMutex.RLock()
	active := e.ctxMenuActive
	info := e.ctxMenuInfo
	items := e.ctxMenuItems
	selected := e.ctxMenuSelected
	helpText := e.ctxMenuHelpText
	e.ctxMenuMutex.RUnlock()

	tr := e.liveTransition()
	closing := tr.Active && !tr.Opening

	if (!active && !closing) || len(items) == 0 {
		return
	}
	if !info.IsVisible {
		return
	}

	factor := openness(tr, active)
	if factor <= 0 {
		return
	}

	uiFontSize := e.getUIFontSize()
	lineHeight := int(uiFontSize) + 8
	titleFace := e.getSansBoldTitleFontFace()

	// Panel geometry sized to the widest label.
	width := e.getTextWidth(string(info.Mode)) + titleFace.Size
	for _, item := range items {
		if w := e.getMarkupWidth(item.GetLabel()) + 40; w > width {
			width = w
		}
	}
	if helpText != "" {
		if w := e.getMarkupWidth(helpText) + 24; w > width {
			width = w
		}
	}
	width += 24

	height := float64(lineHeight*(len(items)+1) + 20)
	if helpText != "" {
		height += float64(lineHeight)
	}

	x := float64(info.PositionX)
	y := float64(info.PositionY)

	// Keep the panel on screen.
	screenW := float64(screen.Bounds().Dx())
	screenH := float64(screen.Bounds().Dy())
	if x+width > screenW-12 {
		x = screenW - width - 12
	}
	if y+height > screenH-12 {
		y = screenH - height - 12
	}
	if x < 12 {
		x = 12
	}
	if y < 12 {
		y = 12
	}

	alpha := 1.0
	switch tr.Type {
	case gamemenu.TransitionFade:
		if tr.Active {
			alpha = factor
		}
	case gamemenu.TransitionSlide:
		if tr.Active {
			y -= (1 - factor) * 40
			alpha = factor
		}
	case gamemenu.TransitionScale:
		if tr.Active {
			scale := 0.6 + 0.4*factor
			dx := width * (1 - scale) / 2
			dy := height * (1 - scale) / 2
			x += dx
			y += dy
			width *= scale
			height *= scale
			alpha = factor
		}
	}

	drawRoundedRectWithShadow(screen,
		float32(x), float32(y), float32(width), float32(height),
		10, 2, colorPanelBackground, colorAction, float32(alpha))

	// Don't draw text into a heavily shrunken panel.
	if tr.Type == gamemenu.TransitionScale && tr.Active && factor < 0.5 {
		return
	}

	textAlpha := alpha

	// Title
	e.drawColoredTextWithFace(screen, string(info.Mode),
		int(x)+16, int(y)+8, applyAlpha(colorAction, textAlpha), titleFace)

	// Items with multi-select checkmarks and selection highlight
	selectedIDs := make(map[string]bool, len(info.SelectedItemIDs))
	for _, id := range info.SelectedItemIDs {
		selectedIDs[id] = true
	}

	rowY := int(y) + 8 + lineHeight
	for i, item := range items {
		prefix := "  "
		if ci, ok := item.(*gamemenu.CommandItem); ok && selectedIDs[ci.ID] {
			prefix = "✓ "
		}

		if i == selected {
			e.drawColoredText(screen, "›", int(x)+8, rowY, applyAlpha(colorHighlight, textAlpha))
		}
		segments := e.parseMarkup(prefix + item.GetLabel())
		if i == selected {
			for j := range segments {
				if segments[j].color == colorText {
					segments[j].color = colorHighlight
				}
			}
		}
		for j := range segments {
			segments[j].color = applyAlpha(segments[j].color, textAlpha)
		}
		e.drawColoredTextSegments(screen, segments, int(x)+20, rowY)
		rowY += lineHeight
	}

	if helpText != "" {
		segments := e.parseMarkup(helpText)
		for j := range segments {
			segments[j].color = applyAlpha(colorSubtle, textAlpha)
		}
		e.drawColoredTextSegments(screen, segments, int(x)+16, rowY+4)
	}
}

// drawGenericMenuOverlay draws the list menu (main menu, settings, save/load)
// centered on screen.
func (e *EbitenRenderer) drawGenericMenuOverlay(screen *ebiten.Image) {
	e.genericMenuMutex.RLock()
	active := e.genericMenuActive
	items := e.genericMenuItems
	selected := e.genericMenuSelected
	helpText := e.genericMenuHelpText
	title := e.genericMenuTitle
	e.genericMenuMutex.RUnlock()

	if !active || len(items) == 0 {
		return
	}

	uiFontSize := e.getUIFontSize()
	lineHeight := int(uiFontSize) + 10
	titleFace := e.getSansBoldTitleFontFace()

	width := e.getTextWidth(title) + titleFace.Size
	for _, item := range items {
		if w := e.getMarkupWidth(item.GetLabel()) + 40; w > width {
			width = w
		}
	}
	if helpText != "" {
		if w := e.getMarkupWidth(helpText) + 24; w > width {
			width = w
		}
	}
	width += 32

	height := float64(lineHeight*(len(items)+1) + 36)
	if helpText != "" {
		height += float64(lineHeight)
	}

	screenW := float64(screen.Bounds().Dx())
	screenH := float64(screen.Bounds().Dy())
	x := (screenW - width) / 2
	y := (screenH - height) / 2

	drawRoundedRectWithShadow(screen,
		float32(x), float32(y), float32(width), float32(height),
		12, 2, colorPanelBackground, colorAction, 1.0)

	e.drawColoredTextWithFace(screen, title, int(x)+20, int(y)+10, colorAction, titleFace)

	rowY := int(y) + 16 + lineHeight
	for i, item := range items {
		if i == selected {
			e.drawColoredText(screen, "›", int(x)+10, rowY, colorHighlight)
		}
		segments := e.parseMarkup(item.GetLabel())
		if i == selected {
			for j := range segments {
				if segments[j].color == colorText {
					segments[j].color = colorHighlight
				}
			}
		}
		e.drawColoredTextSegments(screen, segments, int(x)+24, rowY)
		rowY += lineHeight
	}

	if helpText != "" {
		e.drawColoredTextSegments(screen, e.parseMarkup(helpText), int(x)+20, rowY+6)
	}
}
