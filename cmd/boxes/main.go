// Boxes: spinning cubes falling toward a gravity well, drawn through
// the full viewport/perspective/camera transform chain with painter
// depth sorting. Hover a cube with the mouse to pick it.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellworks/render"
	"github.com/lixenwraith/cellworks/scene"
	"github.com/lixenwraith/cellworks/vmath"
)

const (
	targetFPS   = 60
	framePeriod = time.Second / targetFPS
	secPerFrame = 1.0 / targetFPS

	tau      = 2 * math.Pi
	rotStep  = tau / 48
	gravity  = 1.0
	maxBoxes = 50
)

var center = vmath.Vec4{X: 0, Y: 0, Z: -50, W: 1}

type box struct {
	position    vmath.Vec4
	velocity    vmath.Vec4
	rotation    vmath.Vec4
	rotationVel vmath.Vec4
	fill        render.RGBA
	stroke      render.RGBA
}

func randomUniform(low, high float64) float64 {
	return low + (high-low)*rand.Float64()
}

func randomColor() render.RGBA {
	return render.PaletteAt(rand.Intn(len(render.Palette)))
}

func makeRandomBox() box {
	hasFill := randomUniform(0, 1) < 0.9
	hasStroke := hasFill && randomUniform(0, 1) < 0.5

	b := box{
		position: center.Add(vmath.Vec4{
			X: randomUniform(-10, 10),
			Y: randomUniform(-10, 10),
			Z: randomUniform(-10, 10),
		}),
		velocity: vmath.Vec4{
			X: randomUniform(-0.1, 0.1),
			Y: randomUniform(-0.1, 0.1),
			Z: randomUniform(-0.1, 0.1),
		},
		rotation: vmath.Vec4{W: 1},
		rotationVel: vmath.Vec4{
			X: randomUniform(-0.1, 0.1),
			Y: randomUniform(-0.1, 0.1),
			Z: randomUniform(-0.1, 0.1),
		},
	}
	if hasFill {
		b.fill = randomColor()
	}
	if hasStroke {
		b.stroke = randomColor()
	}
	return b
}

type demo struct {
	logger      *charmlog.Logger
	boxes       []box
	cameraRot   vmath.Vec4
	cameraZoom  vmath.Vec4
	perspective bool
	paused      bool

	frameCount   int
	lastSpawn    int
	latestFPS    float64
	lastFPSCount int
	lastFPSTime  time.Time

	mouseX, mouseY float64
}

func newDemo(logger *charmlog.Logger) *demo {
	d := &demo{
		logger:      logger,
		cameraZoom:  vmath.Vec4{X: 1, Y: 1},
		perspective: true,
		lastFPSTime: time.Now(),
	}
	d.boxes = append(d.boxes, makeRandomBox())
	return d
}

func (d *demo) reset() {
	d.cameraZoom = vmath.Vec4{X: 1, Y: 1}
	d.cameraRot = vmath.Vec4{}
	d.boxes = d.boxes[:0]
}

// jerk nudges every box velocity at once
func (d *demo) jerk(v vmath.Vec4) {
	for i := range d.boxes {
		d.boxes[i].velocity = d.boxes[i].velocity.Add(v)
	}
}

func (d *demo) update() {
	if d.paused {
		return
	}
	if len(d.boxes) < maxBoxes && d.frameCount-d.lastSpawn >= targetFPS/3 {
		d.lastSpawn = d.frameCount
		d.boxes = append(d.boxes, makeRandomBox())
		d.logger.Debug("box spawned", "count", len(d.boxes))
	}
	for i := range d.boxes {
		b := &d.boxes[i]
		pull := center.Sub(b.position).Normalize(gravity * secPerFrame)
		b.velocity = b.velocity.Add(pull)
		b.position = b.position.Add(b.velocity)
		b.rotation = b.rotation.Add(b.rotationVel)
	}
}

// frame renders one frame into the batch and returns the hovered box,
// if any, with its screen bound
func (d *demo) frame(batch *scene.Batch, width, height float64) (*box, vmath.AABB) {
	stack := scene.NewStack()
	defer stack.Scope()()

	stack.Apply(vmath.Viewport(width, height))
	if d.perspective {
		stack.Apply(vmath.Perspective(tau/6, width/height, 1.0/1024, 1024))
	} else {
		// Far too zoomed in without perspective; scale down and correct
		// for aspect
		stack.Apply(vmath.Scaling(0.04*height/width, 0.04, 0.04))
	}
	stack.Apply(vmath.Scaling(d.cameraZoom.X, d.cameraZoom.Y, 1))
	stack.Apply(vmath.RotationVec(d.cameraRot.Neg()))

	var hovered *box
	hoverMinZ := math.Inf(1)
	hoverBound := vmath.AABBBottom

	for i := range d.boxes {
		b := &d.boxes[i]
		restore := stack.Scope()
		stack.State().Fill = b.fill
		stack.State().Stroke = b.stroke
		stack.Apply(vmath.TranslationVec(b.position))
		stack.Apply(vmath.RotationVec(b.rotation))

		bound := batch.UnitBox(stack.State())
		if bound.Min.Z < hoverMinZ && bound.ContainsXY(d.mouseX, d.mouseY) {
			hovered = b
			hoverMinZ = bound.Min.Z
			hoverBound = bound
		}
		restore()
	}
	return hovered, hoverBound
}

// highlight frames the hovered box with a white screen-space rectangle
func highlight(batch *scene.Batch, bound vmath.AABB) {
	st := scene.NewState()
	st.Fill = render.White
	z := bound.Min.Z
	batch.FillRect(&st,
		vmath.Vec4{X: bound.Min.X - 2, Y: bound.Min.Y - 2, Z: z, W: 1},
		vmath.Vec4{X: bound.Max.X + 2, Y: bound.Min.Y - 2, Z: z, W: 1},
		vmath.Vec4{X: bound.Max.X + 2, Y: bound.Max.Y + 2, Z: z, W: 1},
		vmath.Vec4{X: bound.Min.X - 2, Y: bound.Max.Y + 2, Z: z, W: 1})
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
	debug := flag.Bool("debug", false, "write a debug log to boxes.log")
	flag.Parse()

	logger, closeLog := debugLogger("boxes.log", *debug)
	defer closeLog()

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
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	buf := render.NewBufferForScreen(cols, rows)
	raster := render.NewRaster(buf)
	batch := scene.NewBatch(float64(buf.Width()), float64(buf.Height()))
	hud := render.NewPrinter(screen, 1, 0)
	hud.SetColor(render.White)
	hud.SetBackground(render.DarkGrey)

	d := newDemo(logger)
	logger.Debug("screen ready", "cols", cols, "rows", rows)

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
						batch.Width = float64(buf.Width())
						batch.Height = float64(buf.Height())
						screen.Sync()
					case *tcell.EventMouse:
						mx, my := ev.Position()
						d.mouseX = float64(mx)
						d.mouseY = float64(my * 2) // cell row to pixel row
					case *tcell.EventKey:
						switch {
						case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
							running = false
						case ev.Rune() == 'a':
							d.jerk(vmath.Vec4{X: -0.1})
						case ev.Rune() == 'd':
							d.jerk(vmath.Vec4{X: 0.1})
						case ev.Rune() == 'w':
							d.jerk(vmath.Vec4{Y: 0.1})
						case ev.Rune() == 's':
							d.jerk(vmath.Vec4{Y: -0.1})
						case ev.Rune() == 'q':
							d.jerk(vmath.Vec4{Z: -0.1})
						case ev.Rune() == 'e':
							d.jerk(vmath.Vec4{Z: 0.1})
						case ev.Key() == tcell.KeyLeft:
							d.cameraRot.Y += rotStep
						case ev.Key() == tcell.KeyRight:
							d.cameraRot.Y -= rotStep
						case ev.Key() == tcell.KeyUp:
							d.cameraRot.X += rotStep
						case ev.Key() == tcell.KeyDown:
							d.cameraRot.X -= rotStep
						case ev.Rune() == '+':
							d.cameraZoom.X *= math.Pow(2, 1.0/3)
							d.cameraZoom.Y *= math.Pow(2, 1.0/3)
						case ev.Rune() == '-':
							d.cameraZoom.X *= math.Pow(2, -1.0/3)
							d.cameraZoom.Y *= math.Pow(2, -1.0/3)
						case ev.Rune() == 'p':
							d.perspective = !d.perspective
							// The orthographic path flips the Z axis in
							// its transform, so the painter order flips
							// with it
							batch.Reverse = !d.perspective
							logger.Debug("projection toggled", "perspective", d.perspective)
						case ev.Rune() == 'r':
							d.reset()
						case ev.Rune() == ' ':
							d.paused = !d.paused
						}
					}
				default:
					break drain
				}
			}

			d.update()
			d.frameCount++

			buf.Clear(render.DarkGrey)
			hovered, bound := d.frame(batch, float64(buf.Width()), float64(buf.Height()))
			if hovered != nil {
				highlight(batch, bound)
			}
			triangles := batch.Flush(raster)
			buf.Flush(screen)

			now := time.Now()
			if now.Sub(d.lastFPSTime) >= time.Second {
				d.latestFPS = float64(d.frameCount-d.lastFPSCount) / now.Sub(d.lastFPSTime).Seconds()
				d.lastFPSCount = d.frameCount
				d.lastFPSTime = now
			}

			hud.MoveTo(1, 0)
			hud.Printf("box count    = %d\n", len(d.boxes))
			hud.Printf("frame count  = %d\n", d.frameCount)
			hud.Printf("fps          = %.1f\n", d.latestFPS)
			hud.Printf("render count = %d\n", triangles)
			if hovered != nil {
				hud.Printf("BOXPOS = %v", hovered.position)
			}
			screen.Show()
		}
	}
}
