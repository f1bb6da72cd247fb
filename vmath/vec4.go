// Package vmath implements the homogeneous-coordinate algebra behind the
// 3D demos: 4-component vectors, 4x4 row-major matrices, the standard
// transform constructors, and screen-space bounding boxes.
package vmath

import (
	"fmt"
	"math"
)

// Vec4 is a point or direction in homogeneous coordinates
type Vec4 struct {
	X, Y, Z, W float64
}

// Add returns the component-wise sum
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the component-wise difference
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Neg returns the negation of every component
func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns the vector multiplied by s
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the 4-component dot product
func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Length returns the Euclidean norm over all four components
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize scales the vector to the given length
// Zero vectors normalize to zero
func (v Vec4) Normalize(length float64) Vec4 {
	l := v.Length()
	if l == 0 {
		return Vec4{}
	}
	return v.Scale(length / l)
}

// PerspectiveDivide maps homogeneous coordinates back to W = 1
func (v Vec4) PerspectiveDivide() Vec4 {
	return Vec4{v.X / v.W, v.Y / v.W, v.Z / v.W, 1}
}

// MinPairwise returns the component-wise minimum
func MinPairwise(a, b Vec4) Vec4 {
	return Vec4{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z), min(a.W, b.W)}
}

// MaxPairwise returns the component-wise maximum
func MaxPairwise(a, b Vec4) Vec4 {
	return Vec4{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z), max(a.W, b.W)}
}

func (v Vec4) String() string {
	return fmt.Sprintf("{%g, %g, %g, %g}", v.X, v.Y, v.Z, v.W)
}
