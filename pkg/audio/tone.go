package audio

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate = 44100

	// toneAmplitude is the raw waveform amplitude; audibility is controlled
	// entirely by the player's volume so the oscillator never needs to be
	// stopped to go silent.
	toneAmplitude = 8192
)

// oto supports one context per process; every tone source shares it.
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
)

func otoContext() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			otoErr = err
			return
		}
		<-ready
		otoCtx = ctx
	})
	return otoCtx, otoErr
}

// squareWave is an endless square-wave sample stream at a fixed frequency.
type squareWave struct {
	freq float64
	pos  int64
}

func (w *squareWave) Read(p []byte) (int, error) {
	halfPeriod := int64(float64(sampleRate) / (2 * w.freq))
	if halfPeriod < 1 {
		halfPeriod = 1
	}
	n := len(p) / 2
	for i := 0; i < n; i++ {
		v := int16(toneAmplitude)
		if (w.pos/halfPeriod)%2 == 1 {
			v = -v
		}
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
		w.pos++
	}
	return n * 2, nil
}

// otoTone is the production ToneSource: an oto player over a square wave,
// gated by player volume.
type otoTone struct {
	player *oto.Player
}

func newOtoTone(frequency float64) (ToneSource, error) {
	ctx, err := otoContext()
	if err != nil {
		return nil, err
	}
	return &otoTone{player: ctx.NewPlayer(&squareWave{freq: frequency})}, nil
}

func (t *otoTone) Start() {
	t.player.Play()
}

func (t *otoTone) SetGain(gain float64) {
	t.player.SetVolume(gain)
}

func (t *otoTone) Close() error {
	return t.player.Close()
}
