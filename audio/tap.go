package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// Tap passes a stream through unchanged while copying its mono mixdown
// into a ring buffer. The speaker streams from its own goroutine, so
// the ring is mutex-guarded; the visualizer drains chunks from the
// render loop.
type Tap struct {
	streamer beep.Streamer

	mu     sync.Mutex
	ring   []float64
	head   int
	filled int
}

// NewTap wraps a streamer with a ring of the given sample capacity
func NewTap(s beep.Streamer, capacity int) *Tap {
	return &Tap{
		streamer: s,
		ring:     make([]float64, capacity),
	}
}

func (t *Tap) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.streamer.Stream(samples)

	t.mu.Lock()
	for i := 0; i < n; i++ {
		t.ring[t.head] = (samples[i][0] + samples[i][1]) / 2
		t.head = (t.head + 1) % len(t.ring)
		if t.filled < len(t.ring) {
			t.filled++
		}
	}
	t.mu.Unlock()

	return n, ok
}

func (t *Tap) Err() error { return t.streamer.Err() }

// Chunk copies the most recent len(out) samples in playback order.
// Returns false until the ring has seen that many samples.
func (t *Tap) Chunk(out []float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(out)
	if n > t.filled {
		return false
	}
	start := (t.head - n + len(t.ring)) % len(t.ring)
	for i := 0; i < n; i++ {
		out[i] = t.ring[(start+i)%len(t.ring)]
	}
	return true
}
