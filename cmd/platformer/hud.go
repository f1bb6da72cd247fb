package main

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/lixenwraith/cellworks/font"
	"github.com/lixenwraith/cellworks/render"
)

// hud draws the status line. With a font sheet loaded the text is
// stamped into the pixel buffer; without one it falls back to plain
// terminal cells.
type hud struct {
	sheet *font.Sheet
	text  *render.Printer
}

func newHUD(logger *charmlog.Logger, sheetPath string, screen render.ContentWriter) *hud {
	h := &hud{text: render.NewPrinter(screen, 1, 0)}
	h.text.SetColor(render.White)
	h.text.SetBackground(render.DarkGrey)

	if sheetPath == "" {
		return h
	}
	f, err := os.Open(sheetPath)
	if err != nil {
		logger.Warn("font sheet unavailable", "path", sheetPath, "error", err)
		return h
	}
	defer f.Close()

	sheet, err := font.Load(f)
	if err != nil {
		logger.Warn("font sheet unusable", "path", sheetPath, "error", err)
		return h
	}
	logger.Debug("font sheet loaded", "path", sheetPath,
		"charWidth", sheet.CharWidth(), "charHeight", sheet.CharHeight())
	h.sheet = sheet
	return h
}

// stamp draws the message into the pixel buffer. Must run before the
// buffer is flushed. No-op without a sheet.
func (h *hud) stamp(buf *render.Buffer, msg string) {
	if h.sheet == nil {
		return
	}
	h.sheet.Print(buf, msg, 2, 2, render.White)
}

// print draws the message as terminal cells on top of the flushed
// buffer. No-op when a sheet carries the text instead.
func (h *hud) print(msg string) {
	if h.sheet != nil {
		return
	}
	h.text.MoveTo(1, 0)
	h.text.Print(msg)
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
