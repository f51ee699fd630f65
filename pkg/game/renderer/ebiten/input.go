// Package ebiten provides an Ebiten-based 2D graphical renderer for Chimera.
package ebiten

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "chimera/pkg/engine/input"
	"chimera/pkg/game/config"
)

// Update handles input and per-frame state (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	e.quitMutex.Lock()
	quit := e.quit
	e.quitMutex.Unlock()
	if quit {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.advanceTransitions()

	// While a rebinding capture is pending, the next key press is consumed
	// as the raw code and nothing else fires.
	if e.captureRawKey() {
		return nil
	}

	// Handle font size changes (=/- to adjust, 0 to reset)
	e.handleZoom()

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}

	return nil
}

// advanceTransitions drives the menu manager's in-flight transition from the
// frame clock, so open/close animations progress between input events.
func (e *EbitenRenderer) advanceTransitions() {
	e.menusMutex.RLock()
	menus := e.menus
	e.menusMutex.RUnlock()
	if menus == nil {
		return
	}

	now := time.Now().UnixNano()
	last := e.lastUpdate
	e.lastUpdate = now
	if last == 0 {
		return
	}

	// The manager serializes this against the game goroutine's operations;
	// an idle controller ignores the update.
	menus.UpdateTransitions(time.Duration(now - last))
}

// captureRawKey consumes one just-pressed key as a raw binding code when a
// ReadRawCode call is pending. Returns true while capturing.
func (e *EbitenRenderer) captureRawKey() bool {
	e.rawMutex.Lock()
	capturing := e.rawCapturing
	e.rawMutex.Unlock()
	if !capturing {
		return false
	}

	keys := inpututil.AppendJustPressedKeys(nil)
	for _, k := range keys {
		code := keyToCode(k)
		if code == "" {
			continue
		}
		e.rawMutex.Lock()
		e.rawCapturing = false
		e.rawMutex.Unlock()
		select {
		case e.rawChan <- code:
		default:
		}
		break
	}
	return true
}

// keyToCode maps an Ebiten key to the binding-layer raw code.
func keyToCode(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return "arrow_up"
	case ebiten.KeyArrowDown:
		return "arrow_down"
	case ebiten.KeyArrowLeft:
		return "arrow_left"
	case ebiten.KeyArrowRight:
		return "arrow_right"
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "enter"
	case ebiten.KeyEscape:
		return "escape"
	case ebiten.KeyF8:
		return "f8"
	}
	// Letter keys map to their lowercase name.
	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		return string(rune('a' + int(k-ebiten.KeyA)))
	}
	return ""
}

// handleZoom handles =/- for font/tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	// = or + to increase font size
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.increaseTileSize()
	}
	// - to decrease font size
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.decreaseTileSize()
	}
	// 0 to reset font size
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.resetTileSize()
	}
}

// increaseTileSize increases the tile/font size
func (e *EbitenRenderer) increaseTileSize() {
	if e.tileSize < maxTileSize {
		e.tileSize += tileSizeStep
		e.invalidateFontCache()
		e.saveZoomPreference()
	}
}

// decreaseTileSize decreases the tile/font size
func (e *EbitenRenderer) decreaseTileSize() {
	if e.tileSize > minTileSize {
		e.tileSize -= tileSizeStep
		e.invalidateFontCache()
		e.saveZoomPreference()
	}
}

// resetTileSize resets tile size to default
func (e *EbitenRenderer) resetTileSize() {
	e.tileSize = defaultTileSize
	e.invalidateFontCache()
	e.saveZoomPreference()
}

// saveZoomPreference saves the current tile size to preferences
func (e *EbitenRenderer) saveZoomPreference() {
	cfg := config.Current()
	if err := cfg.SetTileSize(e.tileSize); err != nil {
		// Not critical; the session keeps its in-memory size.
		fmt.Fprintf(os.Stderr, "Warning: could not save preferences: %v\n", err)
	}
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	pressed := isPressed()
	st, exists := e.keyRepeatState[code]

	if !pressed {
		if exists {
			delete(e.keyRepeatState, code)
		}
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{
			firstPressed: now,
			lastRepeat:   now,
		}
		return true
	}

	// Key is held - check if we should repeat
	if now-st.firstPressed >= keyRepeatInitialDelay && now-st.lastRepeat >= keyRepeatInterval {
		st.lastRepeat = now
		e.keyRepeatState[code] = st
		return true
	}
	return false
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	keyboardIntent := func(code string) engineinput.Intent {
		return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   code,
		}))
	}

	// Navigation (arrows and Vim keys) with key repeat; everything else is
	// edge-triggered.
	repeated := []struct {
		key  ebiten.Key
		code string
	}{
		{ebiten.KeyArrowUp, "arrow_up"},
		{ebiten.KeyArrowDown, "arrow_down"},
		{ebiten.KeyArrowLeft, "arrow_left"},
		{ebiten.KeyArrowRight, "arrow_right"},
		{ebiten.KeyK, "k"},
		{ebiten.KeyJ, "j"},
		{ebiten.KeyH, "h"},
		{ebiten.KeyL, "l"},
	}
	for _, rk := range repeated {
		key := rk.key
		if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, "key_"+rk.code) {
			return keyboardIntent(rk.code)
		}
	}

	// Contextual menu modes
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		return keyboardIntent("b")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		return keyboardIntent("c")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		return keyboardIntent("g")
	}

	// Confirm (E, Enter)
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		return keyboardIntent("e")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return keyboardIntent("enter")
	}

	// Main menu (M, F10)
	if inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		return keyboardIntent("menu")
	}

	// Overlay visibility
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		return keyboardIntent("v")
	}

	// Developer menu state dump (F8)
	if inpututil.IsKeyJustPressed(ebiten.KeyF8) {
		return keyboardIntent("f8")
	}

	// Quit / close
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return keyboardIntent("quit")
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
	}
	return outsideWidth, outsideHeight
}

// PointerPosition reports the cursor position for menu placement.
func (e *EbitenRenderer) PointerPosition() (x, y int) {
	return ebiten.CursorPosition()
}
