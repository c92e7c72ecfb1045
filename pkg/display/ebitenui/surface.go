package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chipview/pkg/display"
)

// Resize recreates both render targets for the new geometry. Prior content
// is discarded; the compositor repaints from the cached grid right after.
func (w *Window) Resize(geo display.Geometry) {
	w.geo = geo
	if geo.PixelSize == 0 {
		w.back = nil
		w.front = nil
		return
	}
	w.back = ebiten.NewImage(geo.CanvasWidth, geo.CanvasHeight)
	w.back.Fill(w.bg)
	w.front = ebiten.NewImage(geo.CanvasWidth, geo.CanvasHeight)
	w.front.Fill(w.bg)
}

// FillCell paints one logical cell's pixel block on the off-screen target.
func (w *Window) FillCell(x, y int, on bool) {
	if w.back == nil || w.geo.PixelSize == 0 {
		return
	}
	c := w.bg
	if on {
		c = w.fg
	}
	ps := w.geo.PixelSize
	vector.DrawFilledRect(w.back,
		float32(x*ps), float32(y*ps), float32(ps), float32(ps), c, false)
}

// FillAll paints the whole off-screen target to one state.
func (w *Window) FillAll(on bool) {
	if w.back == nil {
		return
	}
	if on {
		w.back.Fill(w.fg)
	} else {
		w.back.Fill(w.bg)
	}
}

// Present refreshes the front buffer from the off-screen target in a single
// whole-buffer copy, never pixel by pixel, so partial frames are never
// visible.
func (w *Window) Present() {
	if w.back == nil || w.front == nil {
		return
	}
	w.front.DrawImage(w.back, nil)
}
