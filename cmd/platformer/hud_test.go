package main

import (
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	xbmp "golang.org/x/image/bmp"

	"github.com/lixenwraith/cellworks/font"
	"github.com/lixenwraith/cellworks/geom"
	"github.com/lixenwraith/cellworks/render"
)

// cellRecorder captures SetContent calls in place of a real screen
type cellRecorder struct {
	cells map[[2]int]rune
}

func newCellRecorder() *cellRecorder {
	return &cellRecorder{cells: make(map[[2]int]rune)}
}

func (r *cellRecorder) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	r.cells[[2]int{x, y}] = primary
}

func testLogger() *charmlog.Logger {
	return charmlog.New(io.Discard)
}

// writeSheet saves a 2x3-cell font strip whose 'A' cell has two white
// pixels in its top row
func writeSheet(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, font.Glyphs*2, 3))
	for i := range img.Pix {
		if i%4 == 3 {
			img.Pix[i] = 255
		}
	}
	img.SetRGBA('A'*2, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA('A'*2+1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "font.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create sheet file: %v", err)
	}
	defer f.Close()
	if err := xbmp.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode sheet: %v", err)
	}
	return path
}

func TestHUDStampsWithSheet(t *testing.T) {
	screen := newCellRecorder()
	h := newHUD(testLogger(), writeSheet(t), screen)
	if h.sheet == nil {
		t.Fatal("Expected font sheet loaded")
	}

	buf := render.NewBuffer(20, 10)
	h.stamp(buf, "A")
	if buf.At(2, 2) != render.White || buf.At(3, 2) != render.White {
		t.Error("Expected glyph pixels stamped into the buffer")
	}

	h.print("A")
	if len(screen.cells) != 0 {
		t.Error("Expected no terminal cells written when a sheet carries the text")
	}
}

func TestHUDFallsBackToCells(t *testing.T) {
	screen := newCellRecorder()
	h := newHUD(testLogger(), "", screen)
	if h.sheet != nil {
		t.Fatal("Expected no sheet without a path")
	}

	buf := render.NewBuffer(20, 10)
	h.stamp(buf, "A")
	if buf.At(2, 2) != (render.RGBA{}) {
		t.Error("Expected stamp to be a no-op without a sheet")
	}

	h.print("HI")
	if screen.cells[[2]int{1, 0}] != 'H' || screen.cells[[2]int{2, 0}] != 'I' {
		t.Errorf("Expected HI at the origin cells, got %v", screen.cells)
	}
}

func TestHUDSurvivesMissingSheet(t *testing.T) {
	screen := newCellRecorder()
	h := newHUD(testLogger(), filepath.Join(t.TempDir(), "missing.bmp"), screen)
	if h.sheet != nil {
		t.Error("Expected fallback when the sheet file does not exist")
	}
}

func TestDebugLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closeLog := debugLogger(path, true)
	logger.Debug("tick", "frame", 1)
	closeLog()

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	if fi.Size() == 0 {
		t.Error("Expected logged output in the file")
	}
}

func TestDebugLoggerDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closeLog := debugLogger(path, false)
	logger.Debug("tick")
	closeLog()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no log file when disabled")
	}
}

func TestDrawUsesOriginalPalette(t *testing.T) {
	w := newWorld(0)
	w.coins = append(w.coins, geom.BoxAt(100, 100, coinSize, coinSize))

	buf := render.NewBuffer(worldW, worldH)
	draw(buf, w)

	if got := buf.At(worldW/2, worldH/2); got != render.Peach {
		t.Errorf("Expected peach player, got %v", got)
	}
	if got := buf.At(worldW/2, worldH-40); got != render.Lavender {
		t.Errorf("Expected lavender platform, got %v", got)
	}
	if got := buf.At(100, 100); got != render.LightYellow {
		t.Errorf("Expected light yellow coin, got %v", got)
	}
	if got := buf.At(50, 50); got != render.DarkGrey {
		t.Errorf("Expected dark grey background, got %v", got)
	}
}
