package vmath

import "math"

// Mat4 is a 4x4 row-major matrix. Each field holds one row, which lets
// matrix-vector multiplication reuse Vec4 dot products directly.
type Mat4 struct {
	X, Y, Z, W Vec4
}

// Identity is the multiplicative identity transform
var Identity = Mat4{
	X: Vec4{1, 0, 0, 0},
	Y: Vec4{0, 1, 0, 0},
	Z: Vec4{0, 0, 1, 0},
	W: Vec4{0, 0, 0, 1},
}

// Col returns column i as a vector
func (m Mat4) Col(i int) Vec4 {
	switch i {
	case 0:
		return Vec4{m.X.X, m.Y.X, m.Z.X, m.W.X}
	case 1:
		return Vec4{m.X.Y, m.Y.Y, m.Z.Y, m.W.Y}
	case 2:
		return Vec4{m.X.Z, m.Y.Z, m.Z.Z, m.W.Z}
	default:
		return Vec4{m.X.W, m.Y.W, m.Z.W, m.W.W}
	}
}

// MulVec applies the transform to a homogeneous vector
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{m.X.Dot(v), m.Y.Dot(v), m.Z.Dot(v), m.W.Dot(v)}
}

// Mul returns the matrix product m * o
func (m Mat4) Mul(o Mat4) Mat4 {
	c0, c1, c2, c3 := o.Col(0), o.Col(1), o.Col(2), o.Col(3)
	return Mat4{
		X: Vec4{m.X.Dot(c0), m.X.Dot(c1), m.X.Dot(c2), m.X.Dot(c3)},
		Y: Vec4{m.Y.Dot(c0), m.Y.Dot(c1), m.Y.Dot(c2), m.Y.Dot(c3)},
		Z: Vec4{m.Z.Dot(c0), m.Z.Dot(c1), m.Z.Dot(c2), m.Z.Dot(c3)},
		W: Vec4{m.W.Dot(c0), m.W.Dot(c1), m.W.Dot(c2), m.W.Dot(c3)},
	}
}

// Translation moves points by (x, y, z)
func Translation(x, y, z float64) Mat4 {
	return Mat4{
		X: Vec4{1, 0, 0, x},
		Y: Vec4{0, 1, 0, y},
		Z: Vec4{0, 0, 1, z},
		W: Vec4{0, 0, 0, 1},
	}
}

// TranslationVec moves points by the XYZ of v
func TranslationVec(v Vec4) Mat4 {
	return Translation(v.X, v.Y, v.Z)
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Mat4 {
	return Mat4{
		X: Vec4{x, 0, 0, 0},
		Y: Vec4{0, y, 0, 0},
		Z: Vec4{0, 0, z, 0},
		W: Vec4{0, 0, 0, 1},
	}
}

// RotationX rotates around the X axis
func RotationX(radians float64) Mat4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return Mat4{
		X: Vec4{1, 0, 0, 0},
		Y: Vec4{0, c, -s, 0},
		Z: Vec4{0, s, c, 0},
		W: Vec4{0, 0, 0, 1},
	}
}

// RotationY rotates around the Y axis
func RotationY(radians float64) Mat4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return Mat4{
		X: Vec4{c, 0, s, 0},
		Y: Vec4{0, 1, 0, 0},
		Z: Vec4{-s, 0, c, 0},
		W: Vec4{0, 0, 0, 1},
	}
}

// RotationZ rotates around the Z axis
func RotationZ(radians float64) Mat4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return Mat4{
		X: Vec4{c, -s, 0, 0},
		Y: Vec4{s, c, 0, 0},
		Z: Vec4{0, 0, 1, 0},
		W: Vec4{0, 0, 0, 1},
	}
}

// Rotation composes the per-axis rotations in X * Y * Z order
func Rotation(x, y, z float64) Mat4 {
	return RotationX(x).Mul(RotationY(y)).Mul(RotationZ(z))
}

// RotationVec is Rotation over the XYZ of v
func RotationVec(v Vec4) Mat4 {
	return Rotation(v.X, v.Y, v.Z)
}

// Viewport maps normalized device coordinates [-1,1]x[-1,1] to pixel
// coordinates [0,w]x[0,h] with Y flipped so positive Y points up
func Viewport(w, h float64) Mat4 {
	return Mat4{
		X: Vec4{w / 2, 0, 0, w / 2},
		Y: Vec4{0, -h / 2, 0, h / 2},
		Z: Vec4{0, 0, -1, 0},
		W: Vec4{0, 0, 0, 1},
	}
}

// Perspective builds the standard perspective projection. fov is the
// vertical field of view in radians; near and far bound the view frustum.
func Perspective(fov, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fov/2)
	nf := 1 / (near - far)
	return Mat4{
		X: Vec4{f / aspect, 0, 0, 0},
		Y: Vec4{0, f, 0, 0},
		Z: Vec4{0, 0, (far + near) * nf, 2 * far * near * nf},
		W: Vec4{0, 0, -1, 0},
	}
}
