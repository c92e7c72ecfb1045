// chipview is the presentation layer of a CHIP-8 front end: a 64x32 pixel
// grid kept in sync with a resizable output surface, a gain-gated buzzer,
// and a bridge that forwards input to an external interpreter engine and
// applies the draw commands the engine reports.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"chipview/pkg/audio"
	"chipview/pkg/bridge"
	"chipview/pkg/config"
	"chipview/pkg/display"
	"chipview/pkg/display/ebitenui"
	"chipview/pkg/display/tui"
)

const windowTitle = "chipview"

func initGotext() {
	gotext.Configure("mo", os.Getenv("LANG"), "default")
}

// loadROM reads a ROM file and submits it as a rom-loaded command. The bytes
// are opaque; the bridge arms the buzzer, clears the surface and hands them
// to the engine.
func loadROM(br *bridge.Bridge, path string, logger *log.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error(gotext.Get("cannot read ROM"), "path", path, "err", err)
		return
	}
	logger.Info(gotext.Get("ROM loaded"), "path", path, "bytes", len(data))
	br.Submit(bridge.RomLoaded(data))
}

func runWindow(cfg config.Config, gate *audio.Gate, engine bridge.Engine, logger *log.Logger, romPath string) error {
	win, err := ebitenui.New(cfg.Video, windowTitle)
	if err != nil {
		return fmt.Errorf("window backend: %w", err)
	}
	comp := display.NewCompositor(win)
	br := bridge.New(comp, gate, engine, logger)
	br.OnStop = func() {
		win.SetStatus(gotext.Get("stopped"))
	}
	win.Attach(comp, br)
	if romPath != "" {
		loadROM(br, romPath, logger)
	}
	return win.Run()
}

func runTerminal(cfg config.Config, gate *audio.Gate, engine bridge.Engine, logger *log.Logger, romPath string) error {
	term, err := tui.New(cfg.Video)
	if err != nil {
		return fmt.Errorf("terminal backend: %w", err)
	}
	comp := display.NewCompositor(term)
	br := bridge.New(comp, gate, engine, logger)
	br.OnStop = func() {
		logger.Info(gotext.Get("stopped"))
	}
	term.Attach(comp, br)
	if romPath != "" {
		loadROM(br, romPath, logger)
	}
	return term.Run()
}

func main() {
	romPath := flag.String("rom", "", "ROM file to load on startup")
	configPath := flag.String("config", "", "path to a config file")
	useTUI := flag.Bool("tui", false, "render to the terminal instead of a window")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "chipview",
	})

	initGotext()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
	}
	if *useTUI {
		cfg.Video.Backend = "terminal"
	}

	gate := audio.NewGate(cfg.Audio.Frequency, cfg.Audio.Gain)
	defer gate.Teardown()

	// The interpreter is an external collaborator; without one attached the
	// shell still renders, forwards input and logs the outbound calls.
	engine := &bridge.NopEngine{Logger: logger}

	switch cfg.Video.Backend {
	case "terminal":
		err = runTerminal(cfg, gate, engine, logger, *romPath)
	default:
		err = runWindow(cfg, gate, engine, logger, *romPath)
	}
	if err != nil {
		logger.Fatal("front end exited", "err", err)
	}
}
