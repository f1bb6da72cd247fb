package geom

import "fmt"

// Box is a 2D axis-aligned bounding box, the product of two intervals
type Box struct {
	X, Y Interval
}

// BoxAt builds a box centered on (cx, cy) with the given full extents
func BoxAt(cx, cy, w, h float64) Box {
	return Box{
		X: Interval{Min: cx - w/2, Max: cx + w/2},
		Y: Interval{Min: cy - h/2, Max: cy + h/2},
	}
}

// NonEmpty reports whether the box contains any points
func (b Box) NonEmpty() bool {
	return b.X.NonEmpty() && b.Y.NonEmpty()
}

// Width returns the horizontal extent, never negative
func (b Box) Width() float64 {
	return b.X.Length()
}

// Height returns the vertical extent, never negative
func (b Box) Height() float64 {
	return b.Y.Length()
}

// Translate shifts the box by v
func (b Box) Translate(v Vec) Box {
	return Box{X: b.X.Translate(v.X), Y: b.Y.Translate(v.Y)}
}

// Intersect returns the overlap of two boxes, empty when they do not overlap
func (b Box) Intersect(o Box) Box {
	return Box{X: b.X.Intersect(o.X), Y: b.Y.Intersect(o.Y)}
}

// Union returns the smallest box containing both inputs
func (b Box) Union(o Box) Box {
	return Box{X: b.X.Union(o.X), Y: b.Y.Union(o.Y)}
}

func (b Box) String() string {
	return fmt.Sprintf("Box{{%g, %g}, {%g, %g}}", b.X.Min, b.X.Max, b.Y.Min, b.Y.Max)
}
