// Platformer: collect the coins. A swept-collision sandbox where the
// player box slides, jumps, and lands on platforms without ever
// tunneling through them.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellworks/audio"
	"github.com/lixenwraith/cellworks/config"
	"github.com/lixenwraith/cellworks/geom"
	"github.com/lixenwraith/cellworks/physics"
	"github.com/lixenwraith/cellworks/render"
)

// World coordinates: 600x400 units regardless of terminal size
const (
	worldW = 600
	worldH = 400

	playerSize = 15
	coinSize   = playerSize * 0.75
)

var step = geom.Interval{Min: 0, Max: 1}

type world struct {
	player    physics.Actor
	platforms []geom.Box
	coins     []geom.Box
	coinCount int
}

// newWorld lays out the arena: floor, ceiling and walls framing the
// screen, a mid ledge, and a pillar to jump over
func newWorld(coins int) *world {
	w := &world{
		player: physics.Actor{
			Box: geom.BoxAt(worldW/2, worldH/2, playerSize, playerSize),
		},
		platforms: []geom.Box{
			geom.BoxAt(worldW/2, worldH-40, worldW*0.9, 10),
			geom.BoxAt(worldW/2, 0, worldW*1.5, 10),
			geom.BoxAt(worldW/2, worldH, worldW*1.5, 10),
			geom.BoxAt(0, worldH/2, 10, worldH*1.5),
			geom.BoxAt(worldW, worldH/2, 10, worldH*1.5),
			geom.BoxAt(worldW/4, worldH*3/4, worldW*0.4, 10),
			geom.BoxAt(worldW/8, worldH/2, 20, worldH*0.45),
		},
	}
	w.scatterCoins(coins)
	return w
}

// scatterCoins rejection-samples coin spots that clear every platform
func (w *world) scatterCoins(n int) {
	w.coins = w.coins[:0]
	for len(w.coins) < n {
		x := randomUniform(2*coinSize, worldW-2*coinSize)
		y := randomUniform(2*coinSize, worldH-2*coinSize)
		box := geom.BoxAt(x, y, coinSize, coinSize)

		open := true
		for _, platform := range w.platforms {
			if box.Intersect(platform).NonEmpty() {
				open = false
				break
			}
		}
		if open {
			w.coins = append(w.coins, box)
		}
	}
}

func randomUniform(low, high float64) float64 {
	return low + (high-low)*rand.Float64()
}

// pickupCoins removes every coin the player's sweep touches this tick
// and returns how many it grabbed
func (w *world) pickupCoins() int {
	grabbed := 0
	i := 0
	for i < len(w.coins) {
		sweep := geom.SweepBoxStatic(w.player.Box, w.player.Vel, w.coins[i])
		if step.Intersect(sweep).NonEmpty() {
			w.coins = append(w.coins[:i], w.coins[i+1:]...)
			w.coinCount++
			grabbed++
		} else {
			i++
		}
	}
	return grabbed
}

// tick advances the simulation one frame. Velocities are in world units
// per frame; gravity alone integrates against wall time.
func (w *world) tick(cfg *config.Game, dt float64) int {
	w.player.Vel = physics.DampHorizontal(w.player.Vel, cfg.Damping)
	w.player.Vel = physics.ApplyGravity(w.player.Vel, geom.Vec{Y: cfg.Gravity}, dt)
	w.player.Vel = physics.ClampVertical(w.player.Vel, cfg.MaxYVelocity)

	grabbed := w.pickupCoins()
	w.player.Step(w.platforms)
	return grabbed
}

func (w *world) jump(impulse float64) {
	vy := w.player.Vel.Y
	if vy > 0 {
		vy = 0
	}
	w.player.Vel.Y = vy - impulse
}

// draw maps world boxes onto the pixel buffer
func draw(buf *render.Buffer, w *world) {
	buf.Clear(render.DarkGrey)

	sx := float64(buf.Width()) / worldW
	sy := float64(buf.Height()) / worldH
	box := func(b geom.Box, c render.RGBA) {
		buf.FillRect(b.X.Min*sx, b.Y.Min*sy, b.Width()*sx, b.Height()*sy, c)
	}

	for _, p := range w.platforms {
		box(p, render.Lavender)
	}
	for _, c := range w.coins {
		box(c, render.LightYellow)
	}
	box(w.player.Box, render.Peach)
}

func pollEvents(screen tcell.Screen) chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	}()
	return ch
}

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	fontPath := flag.String("font", "", "path to a 128-glyph BMP font sheet for the HUD")
	mute := flag.Bool("mute", false, "start without sound")
	debug := flag.Bool("debug", false, "write a debug log to platformer.log")
	flag.Parse()

	logger, closeLog := debugLogger("platformer.log", *debug)
	defer closeLog()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Debug("config loaded",
		"fps", cfg.Game.FPS, "gravity", cfg.Game.Gravity, "coins", cfg.Game.CoinCount)

	engine := audio.NewEngine(&audio.Config{
		Enabled:      cfg.Audio.Enabled && !*mute,
		SampleRate:   cfg.Audio.SampleRate,
		BufferMillis: cfg.Audio.BufferMillis,
		MasterVolume: cfg.Audio.MasterVolume,
	})
	if err := engine.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer engine.Stop()
	logger.Debug("audio started", "enabled", engine.IsEnabled())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	cols, rows := screen.Size()
	buf := render.NewBufferForScreen(cols, rows)
	status := newHUD(logger, *fontPath, screen)

	w := newWorld(cfg.Game.CoinCount)
	dt := 1.0 / float64(cfg.Game.FPS)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Game.FPS))
	defer ticker.Stop()

	events := pollEvents(screen)
	running := true

	for running {
		select {
		case <-ticker.C:
		drain:
			for {
				select {
				case ev, ok := <-events:
					if !ok {
						running = false
						break drain
					}
					switch ev := ev.(type) {
					case *tcell.EventResize:
						cols, rows = screen.Size()
						buf.Resize(cols, rows*2)
						screen.Sync()
					case *tcell.EventKey:
						switch {
						case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
							running = false
						case ev.Rune() == ' ':
							w.jump(cfg.Game.JumpImpulse)
						case ev.Rune() == 'a' || ev.Key() == tcell.KeyLeft:
							w.player.Vel.X = -cfg.Game.MoveSpeed
						case ev.Rune() == 'd' || ev.Key() == tcell.KeyRight:
							w.player.Vel.X = +cfg.Game.MoveSpeed
						case ev.Rune() == 'm':
							engine.ToggleMute()
						case ev.Rune() == 'r':
							w = newWorld(cfg.Game.CoinCount)
						}
					}
				default:
					break drain
				}
			}

			if w.tick(&cfg.Game, dt) > 0 {
				engine.Play(audio.CoinSound(engine.Config()))
				logger.Debug("coin picked up", "total", w.coinCount)
			}

			msg := fmt.Sprintf("COIN COUNT: %d", w.coinCount)
			draw(buf, w)
			status.stamp(buf, msg)
			buf.Flush(screen)
			status.print(msg)
			screen.Show()
		}
	}
}
