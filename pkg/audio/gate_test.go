package audio

import (
	"errors"
	"testing"
)

var errNoDevice = errors.New("no audio device")

// fakeTone records lifecycle calls.
type fakeTone struct {
	starts int
	gain   float64
	closed bool
}

func (f *fakeTone) Start()               { f.starts++ }
func (f *fakeTone) SetGain(gain float64) { f.gain = gain }
func (f *fakeTone) Close() error         { f.closed = true; return nil }

// newTestGate returns a gate whose source constructor counts constructions.
func newTestGate(t *testing.T) (*Gate, *fakeTone, *int) {
	t.Helper()
	tone := &fakeTone{}
	constructed := 0
	g := NewGateWithSource(0.05, func() (ToneSource, error) {
		constructed++
		return tone, nil
	})
	return g, tone, &constructed
}

func TestGateArmOnce(t *testing.T) {
	g, tone, constructed := newTestGate(t)

	// Repeated arming (a second ROM loaded without restart) must never
	// start a second tone source.
	for i := 0; i < 3; i++ {
		if err := g.Arm(); err != nil {
			t.Fatalf("Arm() error: %v", err)
		}
	}
	if *constructed != 1 {
		t.Errorf("constructed %d sources, want 1", *constructed)
	}
	if tone.starts != 1 {
		t.Errorf("Start called %d times, want 1", tone.starts)
	}
	if g.State() != Armed {
		t.Errorf("state = %v, want %v", g.State(), Armed)
	}
	if tone.gain != 0 {
		t.Errorf("gain after arm = %v, want 0", tone.gain)
	}
}

func TestGateToggleBeforeArmIsNoOp(t *testing.T) {
	g, tone, constructed := newTestGate(t)

	g.SetAudible(true)
	g.SetAudible(false)

	if *constructed != 0 {
		t.Errorf("constructed %d sources before arming, want 0", *constructed)
	}
	if tone.starts != 0 {
		t.Errorf("Start called %d times before arming, want 0", tone.starts)
	}
	if g.State() != Uninitialized {
		t.Errorf("state = %v, want %v", g.State(), Uninitialized)
	}
}

func TestGateToggleIsGainOnly(t *testing.T) {
	g, tone, _ := newTestGate(t)
	if err := g.Arm(); err != nil {
		t.Fatal(err)
	}

	g.SetAudible(true)
	if g.State() != Audible {
		t.Errorf("state = %v, want %v", g.State(), Audible)
	}
	if tone.gain != 0.05 {
		t.Errorf("gain = %v, want 0.05", tone.gain)
	}

	g.SetAudible(false)
	if g.State() != Muted {
		t.Errorf("state = %v, want %v", g.State(), Muted)
	}
	if tone.gain != 0 {
		t.Errorf("gain = %v, want 0", tone.gain)
	}

	// The oscillator itself is never stopped or restarted by toggling.
	g.SetAudible(true)
	if tone.starts != 1 {
		t.Errorf("Start called %d times across toggles, want 1", tone.starts)
	}
}

func TestGateArmFailureStaysSilent(t *testing.T) {
	g := NewGateWithSource(0.05, func() (ToneSource, error) {
		return nil, errNoDevice
	})
	if err := g.Arm(); err == nil {
		t.Fatal("Arm() = nil error, want failure")
	}
	if g.State() != Uninitialized {
		t.Errorf("state = %v, want %v", g.State(), Uninitialized)
	}
	// Toggling after a failed arm must still be safe.
	g.SetAudible(true)
}

func TestGateTeardown(t *testing.T) {
	g, tone, _ := newTestGate(t)
	if err := g.Arm(); err != nil {
		t.Fatal(err)
	}
	if err := g.Teardown(); err != nil {
		t.Fatalf("Teardown() error: %v", err)
	}
	if !tone.closed {
		t.Error("tone source not closed")
	}
	// Teardown with no source is a no-op.
	if err := g.Teardown(); err != nil {
		t.Fatalf("second Teardown() error: %v", err)
	}
}
