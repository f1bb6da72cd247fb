// Package render draws pixels into a terminal cell buffer: each text cell
// carries two vertically stacked pixels via the upper-half-block rune, and
// a scanline rasterizer turns batched triangles into those pixels.
package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with an alpha channel. Alpha zero means "absent" in the
// scene state (a box with a zero-alpha stroke simply has no stroke).
type RGBA struct {
	R, G, B, A uint8
}

// Opaque builds a fully opaque color
func Opaque(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// Visible reports whether the color contributes at all
func (c RGBA) Visible() bool {
	return c.A != 0
}

// Tcell converts to a tcell color, dropping alpha
func (c RGBA) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Colorful converts to a go-colorful color for Lab-space math
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// clamp converts float to uint8, saturating at both ends
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend lerps src over c by alpha. Alpha 0 or 1 short-circuit.
func Blend(c, src RGBA, alpha float64) RGBA {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	return RGBA{
		R: clamp(float64(c.R) + (float64(src.R)-float64(c.R))*alpha),
		G: clamp(float64(c.G) + (float64(src.G)-float64(c.G))*alpha),
		B: clamp(float64(c.B) + (float64(src.B)-float64(c.B))*alpha),
		A: 255,
	}
}

// Add saturating-adds src onto c, for glow effects
func Add(c, src RGBA) RGBA {
	return RGBA{
		R: clamp(float64(c.R) + float64(src.R)),
		G: clamp(float64(c.G) + float64(src.G)),
		B: clamp(float64(c.B) + float64(src.B)),
		A: 255,
	}
}

// Max takes the channel-wise maximum of both colors
func Max(c, src RGBA) RGBA {
	return RGBA{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
		A: 255,
	}
}

// Gradient interpolates between two colors in Lab space, which keeps the
// midpoints perceptually even where plain RGB lerps go muddy
func Gradient(from, to RGBA, t float64) RGBA {
	mixed := from.Colorful().BlendLab(to.Colorful(), t).Clamped()
	return RGBA{R: clamp(mixed.R * 255), G: clamp(mixed.G * 255), B: clamp(mixed.B * 255), A: 255}
}
