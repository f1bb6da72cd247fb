package render

import "github.com/gdamore/tcell/v2"

// halfBlock shows the cell foreground in its upper half and the cell
// background in its lower half, giving two pixels per cell.
const halfBlock = '▀'

// Buffer is a pixel compositor backed by a flat RGBA array. Pixel rows
// map pairwise onto terminal cell rows at flush time.
type Buffer struct {
	pixels []RGBA
	width  int
	height int
}

// NewBuffer creates a buffer with the given pixel dimensions
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		pixels: make([]RGBA, width*height),
		width:  width,
		height: height,
	}
}

// NewBufferForScreen sizes a buffer to a terminal of cols x rows cells,
// two pixels per cell vertically
func NewBufferForScreen(cols, rows int) *Buffer {
	return NewBuffer(cols, rows*2)
}

// Width returns the buffer width in pixels
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels
func (b *Buffer) Height() int { return b.height }

// Resize adjusts pixel dimensions, reallocating only when capacity is
// insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.pixels) < size {
		b.pixels = make([]RGBA, size)
	} else {
		b.pixels = b.pixels[:size]
	}
	b.width = width
	b.height = height
}

// Clear floods the buffer with one color using exponential copy
func (b *Buffer) Clear(c RGBA) {
	if len(b.pixels) == 0 {
		return
	}
	b.pixels[0] = c
	for filled := 1; filled < len(b.pixels); filled *= 2 {
		copy(b.pixels[filled:], b.pixels[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one pixel, ignoring out-of-bounds coordinates
func (b *Buffer) Set(x, y int, c RGBA) {
	if !b.inBounds(x, y) {
		return
	}
	b.pixels[y*b.width+x] = c
}

// At reads one pixel; out-of-bounds reads return black
func (b *Buffer) At(x, y int) RGBA {
	if !b.inBounds(x, y) {
		return RGBA{}
	}
	return b.pixels[y*b.width+x]
}

// BlendAt lerps c over the existing pixel by alpha
func (b *Buffer) BlendAt(x, y int, c RGBA, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.pixels[idx] = Blend(b.pixels[idx], c, alpha)
}

// FillRect fills the axis-aligned pixel rectangle [x, x+w) x [y, y+h).
// Fractional edges round toward the nearest pixel, matching how the
// original demos drew boxes with float geometry.
func (b *Buffer) FillRect(x, y, w, h float64, c RGBA) {
	x0, y0 := int(x+0.5), int(y+0.5)
	x1, y1 := int(x+w+0.5), int(y+h+0.5)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b.Set(px, py, c)
		}
	}
}

// Flush draws the buffer onto a tcell screen using half-block runes:
// each cell's foreground is the upper pixel, its background the lower.
// The final odd pixel row of an odd-height buffer is dropped.
func (b *Buffer) Flush(screen ContentWriter) {
	rows := b.height / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < b.width; col++ {
			upper := b.pixels[(2*row)*b.width+col]
			lower := b.pixels[(2*row+1)*b.width+col]
			style := tcell.StyleDefault.
				Foreground(upper.Tcell()).
				Background(lower.Tcell())
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}
