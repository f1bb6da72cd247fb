// Package geom provides the 1D/2D axis-aligned primitives shared by the
// demos: closed intervals, boxes as products of intervals, and the swept
// collision queries the platformer's resolver is built on.
package geom

import "fmt"

// Interval is a closed range [Min, Max] on one axis
// An interval with Min >= Max is empty
type Interval struct {
	Min, Max float64
}

// NonEmpty reports whether the interval contains any points
func (iv Interval) NonEmpty() bool {
	return iv.Min < iv.Max
}

// Length returns the extent of the interval, never negative
func (iv Interval) Length() float64 {
	if iv.Max > iv.Min {
		return iv.Max - iv.Min
	}
	return 0
}

// Contains reports whether x lies within the closed interval
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// Intersect returns the overlap of two intervals
// The result is empty when the intervals do not overlap
func (iv Interval) Intersect(o Interval) Interval {
	return Interval{Min: max(iv.Min, o.Min), Max: min(iv.Max, o.Max)}
}

// Union returns the smallest interval containing both inputs
func (iv Interval) Union(o Interval) Interval {
	return Interval{Min: min(iv.Min, o.Min), Max: max(iv.Max, o.Max)}
}

// Translate shifts both endpoints by d
func (iv Interval) Translate(d float64) Interval {
	return Interval{Min: iv.Min + d, Max: iv.Max + d}
}

func (iv Interval) String() string {
	return fmt.Sprintf("Interval{%g, %g}", iv.Min, iv.Max)
}
