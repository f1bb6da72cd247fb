// Package config loads demo settings from TOML, falling back to
// defaults for anything unset.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Game holds the platformer tunables
type Game struct {
	FPS          int     `toml:"fps"`
	Gravity      float64 `toml:"gravity"`
	MoveSpeed    float64 `toml:"move_speed"`
	JumpImpulse  float64 `toml:"jump_impulse"`
	Damping      float64 `toml:"damping"`
	MaxYVelocity float64 `toml:"max_y_velocity"`
	CoinCount    int     `toml:"coin_count"`
}

// Audio holds playback settings
type Audio struct {
	Enabled      bool    `toml:"enabled"`
	SampleRate   int     `toml:"sample_rate"`
	BufferMillis int     `toml:"buffer_millis"`
	MasterVolume float64 `toml:"master_volume"`
}

// Config is the full settings file
type Config struct {
	Game  Game  `toml:"game"`
	Audio Audio `toml:"audio"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Game: Game{
			FPS:          60,
			Gravity:      15,
			MoveSpeed:    5,
			JumpImpulse:  5,
			Damping:      0.95,
			MaxYVelocity: 15,
			CoinCount:    40,
		},
		Audio: Audio{
			Enabled:      true,
			SampleRate:   48000,
			BufferMillis: 50,
			MasterVolume: 0.7,
		},
	}
}

// Load reads a TOML file over the defaults. A missing file is fine and
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Game.FPS <= 0 || c.Game.FPS > 240 {
		return fmt.Errorf("config: fps %d outside 1..240", c.Game.FPS)
	}
	if c.Game.Damping < 0 || c.Game.Damping > 1 {
		return fmt.Errorf("config: damping %g outside 0..1", c.Game.Damping)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: sample rate %d must be positive", c.Audio.SampleRate)
	}
	return nil
}
