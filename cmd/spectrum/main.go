// Spectrum: plays an endless tone pattern and draws the live FFT of
// whatever reaches the speaker. Magnitude bars in orange, phase-ratio
// bars in green, over a blue field.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellworks/audio"
	"github.com/lixenwraith/cellworks/dsp"
	"github.com/lixenwraith/cellworks/render"
)

const (
	targetFPS   = 60
	framePeriod = time.Second / targetFPS

	chunkSize = 2048
	binCount  = 128
)

func drawBars(buf *render.Buffer, bins []dsp.Bin) {
	buf.Clear(render.Blue)

	width := float64(buf.Width())
	height := float64(buf.Height())
	baseline := height - height/8
	// A full-scale tone concentrates about chunkSize/4 of energy per
	// peak bin after windowing; map that to the full bar height
	scale := height / (chunkSize / 4)

	w := width / float64(len(bins))
	for i, bin := range bins {
		x := float64(i) * w
		h := bin.Magnitude * scale
		if h > baseline {
			h = baseline
		}
		h2 := h * bin.Phase
		buf.FillRect(x, baseline-h, w, h, render.Orange)
		buf.FillRect(x, baseline-h2, w, h2, render.Green)
	}
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

// debugLogger returns a file-backed debug logger when enabled and a
// discarding one otherwise, plus a close func for the file
func debugLogger(path string, enabled bool) (*charmlog.Logger, func()) {
	if !enabled {
		return charmlog.New(io.Discard), func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		return charmlog.New(io.Discard), func() {}
	}
	logger := charmlog.NewWithOptions(f, charmlog.Options{
		Level:           charmlog.DebugLevel,
		ReportTimestamp: true,
	})
	return logger, func() { f.Close() }
}

func main() {
	debug := flag.Bool("debug", false, "write a debug log to spectrum.log")
	flag.Parse()

	logger, closeLog := debugLogger("spectrum.log", *debug)
	defer closeLog()

	engine := audio.NewEngine()
	if err := engine.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer engine.Stop()

	tap := audio.NewTap(audio.TonePattern(engine.Config()), 4*chunkSize)
	played := engine.Play(tap)
	if played {
		logger.Debug("playback started", "sampleRate", int(engine.SampleRate()))
	} else {
		logger.Debug("no playback device, pumping the stream silently")
	}

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
	hud := render.NewPrinter(screen, 1, 0)
	hud.SetColor(render.White)
	hud.SetBackground(render.Blue)

	// Without a playback device the speaker never pulls the stream, so
	// pump the tap at the playback rate ourselves and visualize silently
	samplesPerFrame := int(engine.SampleRate()) / targetFPS
	pump := make([][2]float64, samplesPerFrame)

	chunk := make([]float64, chunkSize)
	var bins []dsp.Bin

	ticker := time.NewTicker(framePeriod)
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
						case ev.Rune() == 'm':
							engine.ToggleMute()
						}
					}
				default:
					break drain
				}
			}

			if !played {
				tap.Stream(pump)
			}

			if tap.Chunk(chunk) {
				if b, err := dsp.Spectrum(chunk, binCount); err == nil {
					bins = b
				} else {
					logger.Error("spectrum failed", "error", err)
				}
			}

			drawBars(buf, bins)
			buf.Flush(screen)
			hud.MoveTo(1, 0)
			if played && engine.IsEnabled() {
				hud.Print("SPECTRUM  m:mute  q:quit")
			} else {
				hud.Print("SPECTRUM (silent)  q:quit")
			}
			screen.Show()
		}
	}
}
