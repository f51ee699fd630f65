// Package terminal reports terminal dimensions for layout and menu
// positioning.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Screen adapts the terminal to the menu system's screen-dimension
// dependency (menu.ScreenProvider).
type Screen struct{}

// ScreenSize implements the screen-dimension provider contract.
func (Screen) ScreenSize() (width, height int) {
	return GetSize()
}
