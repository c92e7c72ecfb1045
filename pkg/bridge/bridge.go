// Package bridge connects the external interpreter engine to the display
// compositor and audio gate. Inbound commands are queued in arrival order and
// drained on the UI thread; outbound key events are forwarded to the engine
// unconditionally and synchronously.
package bridge

import (
	"github.com/charmbracelet/log"

	"chipview/pkg/audio"
	"chipview/pkg/display"
)

// queueDepth bounds the pending-command queue. Submit blocks when the queue
// is full rather than dropping, preserving command order and completeness.
const queueDepth = 256

// Bridge dispatches engine commands to the compositor and audio gate, and
// forwards input the other way.
type Bridge struct {
	comp   *display.Compositor
	gate   *audio.Gate
	engine Engine
	logger *log.Logger

	queue chan Command

	// OnStop, when set, is invoked after a stop command has been applied.
	// The shell uses it to show a status message.
	OnStop func()
}

// New returns a bridge wiring the given components together. engine and
// logger may be nil.
func New(comp *display.Compositor, gate *audio.Gate, engine Engine, logger *log.Logger) *Bridge {
	return &Bridge{
		comp:   comp,
		gate:   gate,
		engine: engine,
		logger: logger,
		queue:  make(chan Command, queueDepth),
	}
}

// Submit queues a command for dispatch on the UI thread. Safe to call from
// any goroutine; commands are applied in submission order.
func (b *Bridge) Submit(cmd Command) {
	b.queue <- cmd
}

// Drain dispatches every queued command. Called once at the start of each
// tick, on the UI thread, so all of a tick's mutations land before the
// coalesced present.
func (b *Bridge) Drain() {
	for {
		select {
		case cmd := <-b.queue:
			b.Dispatch(cmd)
		default:
			return
		}
	}
}

// Dispatch applies a single command. Unknown kinds are ignored as a
// forward-compatible no-op, never fatal.
func (b *Bridge) Dispatch(cmd Command) {
	switch cmd.Kind {
	case KindRomLoaded:
		if err := b.gate.Arm(); err != nil {
			// A denied audio device degrades to a silent gate.
			if b.logger != nil {
				b.logger.Warn("audio unavailable, buzzer stays silent", "err", err)
			}
		}
		b.comp.Clear()
		if b.engine != nil {
			b.engine.InitializeInterpreter(cmd.Rom)
		}
	case KindStop:
		b.comp.Clear()
		if b.OnStop != nil {
			b.OnStop()
		}
	case KindClear:
		b.comp.Clear()
	case KindDrawSprite:
		b.comp.Blit(display.SpriteUpdate{X: cmd.X, Y: cmd.Y, Rows: cmd.Rows})
	case KindPlayBuzzer:
		b.gate.SetAudible(true)
	case KindPauseBuzzer:
		b.gate.SetAudible(false)
	default:
		if b.logger != nil {
			b.logger.Debug("ignoring unknown command", "kind", int(cmd.Kind))
		}
	}
}

// KeyDown forwards a key press to the engine.
func (b *Bridge) KeyDown(code string) {
	if b.engine != nil {
		b.engine.KeyDown(code)
	}
}

// KeyUp forwards a key release to the engine.
func (b *Bridge) KeyUp(code string) {
	if b.engine != nil {
		b.engine.KeyUp(code)
	}
}
