package bridge

import "github.com/charmbracelet/log"

// Engine is the narrow contract to the external interpreter. All calls are
// fire-and-forget; the core consumes no return values.
type Engine interface {
	// InitializeInterpreter hands the engine a freshly loaded ROM. The
	// bytes are opaque to the core and passed through unmodified.
	InitializeInterpreter(rom []byte)

	// KeyDown and KeyUp forward a platform-independent key code such as
	// "Digit1" or "KeyQ".
	KeyDown(code string)
	KeyUp(code string)
}

// NopEngine is an Engine that logs and discards everything. Used when the
// shell runs without an attached interpreter.
type NopEngine struct {
	Logger *log.Logger
}

func (e *NopEngine) InitializeInterpreter(rom []byte) {
	if e.Logger != nil {
		e.Logger.Info("interpreter initialized", "rom_bytes", len(rom))
	}
}

func (e *NopEngine) KeyDown(code string) {
	if e.Logger != nil {
		e.Logger.Debug("keydown", "key", code)
	}
}

func (e *NopEngine) KeyUp(code string) {
	if e.Logger != nil {
		e.Logger.Debug("keyup", "key", code)
	}
}
