// Package font renders text from a bitmap font sheet: a single
// monospace strip of the 128 ASCII glyphs, stamped into a pixel buffer
// with a color mod.
package font

import (
	"fmt"
	"image"
	"io"

	xbmp "golang.org/x/image/bmp"

	"github.com/lixenwraith/cellworks/render"
)

// Glyphs is the number of characters in a sheet, one per ASCII code
const Glyphs = 128

// Sheet is a loaded font strip. Glyph cells are the image height tall
// and width/128 wide.
type Sheet struct {
	img        image.Image
	charWidth  int
	charHeight int
}

// Load decodes a BMP font strip. The image width must divide evenly
// into 128 glyph cells.
func Load(r io.Reader) (*Sheet, error) {
	img, err := xbmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("font: decode sheet: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx()%Glyphs != 0 {
		return nil, fmt.Errorf("font: sheet width %d not divisible by %d", bounds.Dx(), Glyphs)
	}
	return &Sheet{
		img:        img,
		charWidth:  bounds.Dx() / Glyphs,
		charHeight: bounds.Dy(),
	}, nil
}

// CharWidth returns the glyph cell width in pixels
func (s *Sheet) CharWidth() int {
	return s.charWidth
}

// CharHeight returns the glyph cell height in pixels
func (s *Sheet) CharHeight() int {
	return s.charHeight
}

// coverage maps a sheet pixel to a 0..255 mask value. Sheets with an
// alpha channel use it directly; opaque sheets treat brightness as
// coverage so a white-on-black strip works unchanged.
func (s *Sheet) coverage(x, y int) uint8 {
	r, g, b, a := s.img.At(x, y).RGBA()
	if a < 0xFFFF {
		return uint8(a >> 8)
	}
	m := r
	if g > m {
		m = g
	}
	if b > m {
		m = b
	}
	return uint8(m >> 8)
}

// Glyph stamps one character at pixel position (x, y) in the given
// color. Runes outside the sheet draw as space.
func (s *Sheet) Glyph(buf *render.Buffer, ch rune, x, y int, tint render.RGBA) {
	if ch < 0 || ch >= Glyphs {
		ch = ' '
	}
	base := s.img.Bounds().Min
	srcX := base.X + int(ch)*s.charWidth
	for dy := 0; dy < s.charHeight; dy++ {
		for dx := 0; dx < s.charWidth; dx++ {
			cov := s.coverage(srcX+dx, base.Y+dy)
			if cov == 0 {
				continue
			}
			alpha := float64(cov) / 255 * float64(tint.A) / 255
			buf.BlendAt(x+dx, y+dy, tint, alpha)
		}
	}
}

// Print stamps a string left to right starting at (x, y)
func (s *Sheet) Print(buf *render.Buffer, text string, x, y int, tint render.RGBA) {
	for _, ch := range text {
		s.Glyph(buf, ch, x, y, tint)
		x += s.charWidth
	}
}
