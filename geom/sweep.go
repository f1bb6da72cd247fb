package geom

import "math"

// SweepInterval returns the span of relative time during which interval a,
// moving at va, overlaps interval b, moving at vb. Under constant relative
// velocity the two edge-crossing times are
//
//	t1: a.Max + va*t1 = b.Min + vb*t1
//	t2: a.Min + va*t2 = b.Max + vb*t2
//
// and the result is [min(t1,t2), max(t1,t2)].
//
// Zero relative velocity makes both divisions degenerate (±Inf or NaN), so
// it is handled explicitly: the intervals either overlap at every time or
// at none. This keeps NaN out of collision-time aggregation downstream.
func SweepInterval(a Interval, va float64, b Interval, vb float64) Interval {
	rel := va - vb
	if rel == 0 {
		if a.Min < b.Max && b.Min < a.Max {
			return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
		}
		return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	}

	t1 := (b.Min - a.Max) / rel
	t2 := (b.Max - a.Min) / rel
	if t1 < t2 {
		return Interval{Min: t1, Max: t2}
	}
	return Interval{Min: t2, Max: t1}
}

// SweepBox returns the time span during which the two boxes overlap on
// both axes simultaneously. The per-axis sweeps are independent, so their
// intersection is exactly the window of 2D overlap. The result is empty
// when the boxes never collide. Trajectories are assumed straight for the
// whole step; b is stationary when vb is zero.
func SweepBox(a Box, va Vec, b Box, vb Vec) Interval {
	x := SweepInterval(a.X, va.X, b.X, vb.X)
	y := SweepInterval(a.Y, va.Y, b.Y, vb.Y)
	return x.Intersect(y)
}

// SweepBoxStatic is SweepBox against a stationary obstacle
func SweepBoxStatic(a Box, va Vec, b Box) Interval {
	return SweepBox(a, va, b, Vec{})
}
