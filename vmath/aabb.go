package vmath

import "math"

// AABB is an axis-aligned bounding box over homogeneous vectors, used
// for screen-space bounds of batched geometry.
type AABB struct {
	Min, Max Vec4
}

// AABBBottom contains no points: the identity element under Union
var AABBBottom = AABB{
	Min: Vec4{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)},
	Max: Vec4{math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1)},
}

// AABBTop contains all points: the identity element under Intersect
var AABBTop = AABB{
	Min: Vec4{math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	Max: Vec4{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)},
}

// Union returns the smallest box containing both inputs
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: MinPairwise(a.Min, b.Min), Max: MaxPairwise(a.Max, b.Max)}
}

// Intersect returns the overlap of both boxes
func (a AABB) Intersect(b AABB) AABB {
	return AABB{Min: MaxPairwise(a.Min, b.Min), Max: MinPairwise(a.Max, b.Max)}
}

// ContainsXY reports whether the screen point (x, y) lies within the box,
// ignoring Z and W
func (a AABB) ContainsXY(x, y float64) bool {
	return x >= a.Min.X && x <= a.Max.X && y >= a.Min.Y && y <= a.Max.Y
}

// AABBOf returns the bounding box of the given points
func AABBOf(points ...Vec4) AABB {
	box := AABBBottom
	for _, p := range points {
		box.Min = MinPairwise(box.Min, p)
		box.Max = MaxPairwise(box.Max, p)
	}
	return box
}
