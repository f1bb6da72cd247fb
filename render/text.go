package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ContentWriter is the slice of tcell.Screen that text printing needs.
// Tests substitute an in-memory implementation.
type ContentWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Printer writes HUD text into terminal cells with an explicit cursor.
// Newlines return the cursor to the origin column and advance one row;
// there is no wrapping, clipping is left to the screen.
type Printer struct {
	screen  ContentWriter
	style   tcell.Style
	originX int
	x, y    int
}

// NewPrinter starts a printer at cell (x, y)
func NewPrinter(screen ContentWriter, x, y int) *Printer {
	return &Printer{
		screen:  screen,
		style:   tcell.StyleDefault,
		originX: x,
		x:       x,
		y:       y,
	}
}

// SetColor changes the foreground for subsequent output
func (p *Printer) SetColor(c RGBA) {
	p.style = p.style.Foreground(c.Tcell())
}

// SetBackground changes the background for subsequent output
func (p *Printer) SetBackground(c RGBA) {
	p.style = p.style.Background(c.Tcell())
}

// MoveTo repositions the cursor and makes x the new origin column
func (p *Printer) MoveTo(x, y int) {
	p.originX = x
	p.x = x
	p.y = y
}

// Print formats the arguments like fmt.Sprint and writes them at the
// cursor
func (p *Printer) Print(args ...any) {
	p.write(fmt.Sprint(args...))
}

// Printf formats and writes at the cursor
func (p *Printer) Printf(format string, args ...any) {
	p.write(fmt.Sprintf(format, args...))
}

func (p *Printer) write(s string) {
	for _, ch := range s {
		if ch == '\n' {
			p.x = p.originX
			p.y++
			continue
		}
		p.screen.SetContent(p.x, p.y, ch, nil, p.style)
		p.x++
	}
}
