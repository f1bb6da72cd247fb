package render

import "math"

// Raster rasterizes triangles into a pixel buffer. It implements
// Rasterizer, so a scene batch can flush straight into it.
type Raster struct {
	buf *Buffer
}

// NewRaster wraps a buffer for triangle drawing
func NewRaster(buf *Buffer) *Raster {
	return &Raster{buf: buf}
}

// Triangle draws one triangle: filled via half-space coverage tests over
// its bounding box, or as an outline when the triangle is a stroke.
// The fill color is taken from the first vertex; batched triangles are
// flat-colored.
func (r *Raster) Triangle(t Triangle) {
	if t.Stroke {
		r.line(t.V[0], t.V[1], t.V[0].Color)
		r.line(t.V[1], t.V[2], t.V[1].Color)
		r.line(t.V[2], t.V[0], t.V[2].Color)
		return
	}
	r.fill(t.V, t.V[0].Color)
}

// edge is the signed area of (a, b, p) doubled: positive when p is to
// the left of a->b
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (r *Raster) fill(v [3]Vertex, c RGBA) {
	minX := int(math.Floor(min(v[0].X, min(v[1].X, v[2].X))))
	maxX := int(math.Ceil(max(v[0].X, max(v[1].X, v[2].X))))
	minY := int(math.Floor(min(v[0].Y, min(v[1].Y, v[2].Y))))
	maxY := int(math.Ceil(max(v[0].Y, max(v[1].Y, v[2].Y))))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= r.buf.Width() {
		maxX = r.buf.Width() - 1
	}
	if maxY >= r.buf.Height() {
		maxY = r.buf.Height() - 1
	}

	// Degenerate triangles have no area to fill
	area := edge(v[0].X, v[0].Y, v[1].X, v[1].Y, v[2].X, v[2].Y)
	if area == 0 {
		return
	}

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			cx, cy := float64(px)+0.5, float64(py)+0.5
			w0 := edge(v[1].X, v[1].Y, v[2].X, v[2].Y, cx, cy)
			w1 := edge(v[2].X, v[2].Y, v[0].X, v[0].Y, cx, cy)
			w2 := edge(v[0].X, v[0].Y, v[1].X, v[1].Y, cx, cy)
			// Accept either winding: all weights share the sign of the
			// full area
			if area > 0 {
				if w0 >= 0 && w1 >= 0 && w2 >= 0 {
					r.buf.Set(px, py, c)
				}
			} else {
				if w0 <= 0 && w1 <= 0 && w2 <= 0 {
					r.buf.Set(px, py, c)
				}
			}
		}
	}
}

// line draws a pixel segment between two vertices with simple DDA
func (r *Raster) line(a, b Vertex, c RGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		r.buf.Set(int(a.X), int(a.Y), c)
		return
	}
	stepX := dx / steps
	stepY := dy / steps
	x, y := a.X, a.Y
	for i := 0; i <= int(steps); i++ {
		r.buf.Set(int(x), int(y), c)
		x += stepX
		y += stepY
	}
}
