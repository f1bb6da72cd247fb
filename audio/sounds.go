package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound effect timings
const (
	coinNote1Duration = 80 * time.Millisecond
	coinNote2Duration = 300 * time.Millisecond
	coinAttack        = 2 * time.Millisecond
	coinNote1Release  = 20 * time.Millisecond
	coinNote2Release  = 250 * time.Millisecond

	toneDuration = 500 * time.Millisecond
	toneAttack   = 10 * time.Millisecond
	toneRelease  = 100 * time.Millisecond
)

// CoinSound is a two-note square chime for coin pickups: B5 into E6
func CoinSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(987.77, coinNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, coinNote1Duration, coinAttack, coinNote1Release, rate)

	n2 := NewOscillator(1318.51, coinNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, coinNote2Duration, coinAttack, coinNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.MasterVolume)
}

// Tone is a single shaped note, the building block of the visualizer's
// test pattern
func Tone(cfg *Config, freq float64, wave WaveType) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(freq, toneDuration, wave, rate)
	shaped := NewEnvelope(osc, toneDuration, toneAttack, toneRelease, rate)
	return newVolume(shaped, cfg.MasterVolume)
}

// patternSeq builds one pass of rising notes across wave shapes,
// enough spectral variety to make the analyzer display move
func patternSeq(cfg *Config) beep.Streamer {
	freqs := []float64{220, 330, 440, 660, 880, 1320}
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw}

	var steps []beep.Streamer
	for _, w := range waves {
		for _, f := range freqs {
			steps = append(steps, Tone(cfg, f, w))
		}
	}
	return beep.Seq(steps...)
}

// tonePattern regenerates the note sequence each time it drains, so
// the stream never ends
type tonePattern struct {
	cfg *Config
	cur beep.Streamer
}

// TonePattern is the endless test signal the visualizer plays
func TonePattern(cfg *Config) beep.Streamer {
	return &tonePattern{cfg: cfg}
}

func (p *tonePattern) Stream(samples [][2]float64) (n int, ok bool) {
	total := 0
	for total < len(samples) {
		if p.cur == nil {
			p.cur = patternSeq(p.cfg)
		}
		m, more := p.cur.Stream(samples[total:])
		total += m
		if !more {
			p.cur = nil
		}
	}
	return total, true
}

func (p *tonePattern) Err() error { return nil }
