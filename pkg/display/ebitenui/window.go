// Package ebitenui is the windowed output backend. The Ebiten draw callback
// is the paint tick: commands drain in Update, the coalesced present happens
// in Draw, and Layout is the resize source for the geometry resolver.
package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zyedidia/generic/mapset"

	"chipview/pkg/bridge"
	"chipview/pkg/config"
	"chipview/pkg/display"
)

// Window hosts the compositor inside a resizable Ebiten window. It implements
// both ebiten.Game and display.Surface.
type Window struct {
	title      string
	baseTitle  string
	fg, bg     color.RGBA
	initWidth  int
	initHeight int

	comp *display.Compositor
	br   *bridge.Bridge

	// Double buffer: back is the off-screen target the compositor mutates,
	// front is only ever written by Present, wholesale.
	back  *ebiten.Image
	front *ebiten.Image
	geo   display.Geometry

	pressed    mapset.Set[string]
	lastWidth  int
	lastHeight int
}

// New builds a window from the video configuration.
func New(cfg config.VideoConfig, title string) (*Window, error) {
	fg, err := config.ParseColor(cfg.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return &Window{
		title:      title,
		baseTitle:  title,
		fg:         fg,
		bg:         bg,
		initWidth:  cfg.WindowWidth,
		initHeight: cfg.WindowHeight,
		pressed:    mapset.New[string](),
	}, nil
}

// Attach wires the compositor and bridge. Must be called before Run.
func (w *Window) Attach(comp *display.Compositor, br *bridge.Bridge) {
	w.comp = comp
	w.br = br
}

// SetStatus appends a status message to the window title.
func (w *Window) SetStatus(msg string) {
	w.title = w.baseTitle
	if msg != "" {
		w.title = w.baseTitle + " - " + msg
	}
	ebiten.SetWindowTitle(w.title)
}

// Update drains pending engine commands and polls input. Runs before Draw on
// every tick, so all of a tick's mutations land ahead of the single present.
func (w *Window) Update() error {
	w.br.Drain()
	w.pollInput()
	return nil
}

// Draw flushes the compositor (at most one present per tick) and copies the
// front buffer to the screen, centered in the container.
func (w *Window) Draw(screen *ebiten.Image) {
	w.comp.Flush()
	screen.Fill(w.bg)
	if w.front == nil || w.geo.PixelSize == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(w.geo.ContainerWidth-w.geo.CanvasWidth)/2,
		float64(w.geo.ContainerHeight-w.geo.CanvasHeight)/2,
	)
	screen.DrawImage(w.front, op)
}

// Layout reports the container size 1:1 and feeds resizes to the geometry
// resolver. Scaling stays integer and under our control rather than Ebiten's.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.lastWidth || outsideHeight != w.lastHeight {
		w.lastWidth, w.lastHeight = outsideWidth, outsideHeight
		w.comp.SetContainerSize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and enters the Ebiten game loop. Blocks until the
// window closes.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.initWidth, w.initHeight)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(w)
}
