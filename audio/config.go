package audio

// Config holds playback settings
type Config struct {
	Enabled      bool
	SampleRate   int
	BufferMillis int
	MasterVolume float64
}

// DefaultConfig returns the standard playback settings: 48 kHz, a 50 ms
// speaker buffer, moderate volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   48000,
		BufferMillis: 50,
		MasterVolume: 0.7,
	}
}

// Clamp normalizes out-of-range values in place
func (c *Config) Clamp() {
	if c.SampleRate <= 0 {
		c.SampleRate = 48000
	}
	if c.BufferMillis <= 0 {
		c.BufferMillis = 50
	}
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
}
