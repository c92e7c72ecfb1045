// Package audio implements the buzzer as a gain-gated tone source: a
// continuously running oscillator that is created lazily, started exactly
// once per session, and made silent or audible by changing gain only.
package audio

// State tracks the gate's lifecycle.
type State int

const (
	// Uninitialized means no ROM has been loaded yet, so no tone source
	// exists. Host audio subsystems may reject output started before a
	// user gesture; deferring creation avoids that failure class.
	Uninitialized State = iota
	// Armed means the tone source exists and is running at zero gain.
	Armed
	Muted
	Audible
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Armed:
		return "armed"
	case Muted:
		return "muted"
	case Audible:
		return "audible"
	}
	return "unknown"
}

// ToneSource is a continuously running oscillator. Start is called at most
// once per session; after that only the gain changes.
type ToneSource interface {
	Start()
	SetGain(gain float64)
	Close() error
}

// Gate owns at most one ToneSource per session and toggles its audibility.
// All methods are safe to call in any state; misuse (toggling before arming)
// is a no-op rather than an error.
type Gate struct {
	state     State
	gain      float64
	source    ToneSource
	newSource func() (ToneSource, error)
}

// NewGate returns a gate that will lazily construct a tone source at the
// given frequency. gain is the audible gain constant; the muted gain is
// always zero.
func NewGate(frequency, gain float64) *Gate {
	return &Gate{
		gain: gain,
		newSource: func() (ToneSource, error) {
			return newOtoTone(frequency)
		},
	}
}

// NewGateWithSource returns a gate backed by the given source constructor.
// Used by tests and by hosts with their own audio pipeline.
func NewGateWithSource(gain float64, newSource func() (ToneSource, error)) *Gate {
	return &Gate{gain: gain, newSource: newSource}
}

// State returns the current gate state.
func (g *Gate) State() State {
	return g.state
}

// Arm constructs and starts the tone source at zero gain. Only the first
// call has any effect; the oscillator is never stopped or recreated for the
// rest of the session. A source that fails to construct leaves the gate
// unarmed and silent.
func (g *Gate) Arm() error {
	if g.state != Uninitialized {
		return nil
	}
	src, err := g.newSource()
	if err != nil {
		return err
	}
	g.source = src
	g.source.SetGain(0)
	g.source.Start()
	g.state = Armed
	return nil
}

// SetAudible moves the gate between Muted and Audible by gain alone. A no-op
// before arming.
func (g *Gate) SetAudible(on bool) {
	if g.state == Uninitialized {
		return
	}
	if on {
		g.source.SetGain(g.gain)
		g.state = Audible
	} else {
		g.source.SetGain(0)
		g.state = Muted
	}
}

// Teardown releases the tone source. Only called at process exit.
func (g *Gate) Teardown() error {
	if g.source == nil {
		return nil
	}
	err := g.source.Close()
	g.source = nil
	g.state = Uninitialized
	return err
}
