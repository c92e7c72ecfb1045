// Package tui is the terminal output backend. The grid is drawn with
// upper-half-block glyphs, two logical pixels per character cell, refreshed
// by reprinting the whole frame from the top-left corner.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/color"

	"chipview/pkg/bridge"
	"chipview/pkg/config"
	"chipview/pkg/display"
	"chipview/pkg/engine/input"
	"chipview/pkg/engine/terminal"
)

const (
	// tickInterval is the paint tick; all mutations within one tick
	// coalesce into a single frame reprint.
	tickInterval = time.Second / 60

	// keyHold is how long a terminal keypress counts as held before a
	// synthetic release. Terminals report no key-up events.
	keyHold = 150 * time.Millisecond
)

// Terminal hosts the compositor on a text terminal. It implements
// display.Surface.
type Terminal struct {
	fg color.RGBColor
	bg color.RGBColor

	comp *display.Compositor
	br   *bridge.Bridge

	// back is the off-screen target in half-block pixels. The visible
	// target is the terminal itself, refreshed wholesale by Present.
	back [][]bool
	geo  display.Geometry

	// heldKeys maps a down key code to its synthetic release deadline.
	heldKeys map[string]time.Time
}

// New builds a terminal backend from the video configuration.
func New(cfg config.VideoConfig) (*Terminal, error) {
	fg, err := config.ParseColor(cfg.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return &Terminal{
		fg:       color.RGB(fg.R, fg.G, fg.B),
		bg:       color.RGB(bg.R, bg.G, bg.B),
		heldKeys: make(map[string]time.Time),
	}, nil
}

// Attach wires the compositor and bridge. Must be called before Run.
func (t *Terminal) Attach(comp *display.Compositor, br *bridge.Bridge) {
	t.comp = comp
	t.br = br
}

// Resize reallocates the off-screen pixel buffer, discarding prior content.
func (t *Terminal) Resize(geo display.Geometry) {
	t.geo = geo
	if geo.PixelSize == 0 {
		t.back = nil
		return
	}
	t.back = make([][]bool, geo.CanvasHeight)
	for i := range t.back {
		t.back[i] = make([]bool, geo.CanvasWidth)
	}
}

// FillCell paints one logical cell's block of half-block pixels.
func (t *Terminal) FillCell(x, y int, on bool) {
	if t.back == nil || t.geo.PixelSize == 0 {
		return
	}
	ps := t.geo.PixelSize
	for py := y * ps; py < (y+1)*ps; py++ {
		for px := x * ps; px < (x+1)*ps; px++ {
			t.back[py][px] = on
		}
	}
}

// FillAll paints the whole off-screen buffer to one state.
func (t *Terminal) FillAll(on bool) {
	for _, row := range t.back {
		for i := range row {
			row[i] = on
		}
	}
}

// Present reprints the entire frame. Pixel rows are paired into half-block
// character cells: the glyph's foreground is the upper pixel, its background
// the lower.
func (t *Terminal) Present() {
	if t.back == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString("\x1b[H")
	for py := 0; py+1 < t.geo.CanvasHeight; py += 2 {
		for px := 0; px < t.geo.CanvasWidth; px++ {
			upper, lower := t.bg, t.bg
			if t.back[py][px] {
				upper = t.fg
			}
			if t.back[py+1][px] {
				lower = t.fg
			}
			sb.WriteString(color.NewRGBStyle(upper, lower).Sprint("▀"))
		}
		sb.WriteString("\x1b[0m\r\n")
	}
	fmt.Print(sb.String())
}

// Run enters the terminal loop: raw-mode input on one goroutine, ticks on
// this one. Blocks until Escape or Ctrl+C.
func (t *Terminal) Run() error {
	reader, err := input.NewReader()
	if err != nil {
		return err
	}
	defer reader.Restore()

	fmt.Print("\x1b[2J\x1b[?25l")
	defer fmt.Print("\x1b[?25h\x1b[0m")

	keys := make(chan string, 16)
	go func() {
		defer close(keys)
		for {
			code, err := reader.ReadKey()
			if err != nil {
				return
			}
			if code != "" {
				keys <- code
			}
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case code, ok := <-keys:
			if !ok || code == "Interrupt" || code == "Escape" {
				return nil
			}
			t.pressKey(code)
		case now := <-ticker.C:
			w, h := terminal.GetPixelSize()
			t.comp.SetContainerSize(w, h)
			t.br.Drain()
			t.releaseExpired(now)
			t.comp.Flush()
		}
	}
}

// pressKey forwards a key down, extending the hold if already down.
func (t *Terminal) pressKey(code string) {
	if _, down := t.heldKeys[code]; !down {
		t.br.KeyDown(code)
	}
	t.heldKeys[code] = time.Now().Add(keyHold)
}

// releaseExpired sends the synthetic key-up events.
func (t *Terminal) releaseExpired(now time.Time) {
	for code, deadline := range t.heldKeys {
		if now.After(deadline) {
			delete(t.heldKeys, code)
			t.br.KeyUp(code)
		}
	}
}
