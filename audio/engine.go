// Package audio plays generated sound effects through the beep speaker
// and exposes the playback stream to the spectrum visualizer.
package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Engine manages the speaker. When the audio device cannot be opened it
// drops into silent mode: Play calls succeed as no-ops so callers never
// need a sound/no-sound branch.
type Engine struct {
	config *Config

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
}

// NewEngine creates an engine with the given config, or defaults
func NewEngine(cfg ...*Config) *Engine {
	config := DefaultConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}
	config.Clamp()

	e := &Engine{config: config}
	e.muted.Store(!config.Enabled)
	return e
}

// Start opens the speaker. A device failure is not an error: the engine
// keeps running silently.
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	rate := beep.SampleRate(e.config.SampleRate)
	buffer := rate.N(time.Duration(e.config.BufferMillis) * time.Millisecond)
	if err := speaker.Init(rate, buffer); err != nil {
		e.silentMode.Store(true)
	}

	e.running.Store(true)
	return nil
}

// Stop drains and closes the speaker
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if !e.silentMode.Load() {
		speaker.Clear()
		speaker.Close()
	}
}

// Play queues a streamer for playback, returns false when dropped
func (e *Engine) Play(s beep.Streamer) bool {
	if s == nil || !e.IsEnabled() {
		return false
	}
	speaker.Play(s)
	return true
}

// ToggleMute toggles mute state, returns true if now audible
func (e *Engine) ToggleMute() bool {
	newMute := !e.muted.Load()
	e.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsEnabled returns true if running, unmuted, and not silent
func (e *Engine) IsEnabled() bool {
	return e.running.Load() && !e.muted.Load() && !e.silentMode.Load()
}

// IsRunning returns true if the engine started (even in silent mode)
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// SampleRate returns the configured playback rate
func (e *Engine) SampleRate() beep.SampleRate {
	return beep.SampleRate(e.config.SampleRate)
}

// Config returns the engine's config
func (e *Engine) Config() *Config {
	return e.config
}
