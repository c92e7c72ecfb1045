package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height in character cells.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetPixelSize returns the terminal's drawable area in half-block pixels:
// a character cell is one pixel wide and two pixels tall when drawn with the
// upper-half-block glyph.
func GetPixelSize() (width, height int) {
	w, h := GetSize()
	return w, 2 * h
}
