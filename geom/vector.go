package geom

import "fmt"

// Vec is a 2D displacement or velocity
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector multiplied by s
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// IsZero reports whether both components are exactly zero
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// MinPairwise returns the component-wise minimum
func MinPairwise(a, b Vec) Vec {
	return Vec{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
}

// MaxPairwise returns the component-wise maximum
func MaxPairwise(a, b Vec) Vec {
	return Vec{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}

func (v Vec) String() string {
	return fmt.Sprintf("Vec{%g, %g}", v.X, v.Y)
}
