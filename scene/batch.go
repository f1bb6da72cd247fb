package scene

import (
	"sort"

	"github.com/lixenwraith/cellworks/render"
	"github.com/lixenwraith/cellworks/vmath"
)

// Batch accumulates screen-space triangles between Add and Flush. The
// explicit add/flush lifecycle keeps all depth sorting in one place: no
// triangle touches the rasterizer until the whole frame is batched.
type Batch struct {
	// Width and Height bound the screen in pixels for offscreen culling
	Width, Height float64
	// Reverse flips the draw order after sorting. The orthographic
	// fallback flips the Z axis during its transform, so it needs
	// back-to-front reversed.
	Reverse bool

	triangles []render.Triangle
}

// NewBatch creates an empty batch for a screen of the given pixel size
func NewBatch(width, height float64) *Batch {
	return &Batch{Width: width, Height: height}
}

// Len returns the number of pending triangles
func (b *Batch) Len() int {
	return len(b.triangles)
}

// Add transforms one triangle by the state transform and queues it for
// the next flush. Triangles with any vertex behind the camera (w <= 0)
// and triangles entirely outside the screen are rejected. Returns the
// screen-space bounding box of what was queued, AABBBottom when nothing
// was.
func (b *Batch) Add(st *State, color render.RGBA, ia, ib, ic vmath.Vec4, uv [3][2]float64, stroke bool) vmath.AABB {
	va := st.Transform.MulVec(ia)
	vb := st.Transform.MulVec(ib)
	vc := st.Transform.MulVec(ic)
	if va.W <= 0 || vb.W <= 0 || vc.W <= 0 {
		return vmath.AABBBottom
	}
	va = va.PerspectiveDivide()
	vb = vb.PerspectiveDivide()
	vc = vc.PerspectiveDivide()

	// Entirely beyond one screen edge means invisible
	if va.X < 0 && vb.X < 0 && vc.X < 0 {
		return vmath.AABBBottom
	}
	if va.X > b.Width && vb.X > b.Width && vc.X > b.Width {
		return vmath.AABBBottom
	}
	if va.Y < 0 && vb.Y < 0 && vc.Y < 0 {
		return vmath.AABBBottom
	}
	if va.Y > b.Height && vb.Y > b.Height && vc.Y > b.Height {
		return vmath.AABBBottom
	}

	b.triangles = append(b.triangles, render.Triangle{
		V: [3]render.Vertex{
			{X: va.X, Y: va.Y, Z: va.Z, Color: color, U: uv[0][0], V: uv[0][1]},
			{X: vb.X, Y: vb.Y, Z: vb.Z, Color: color, U: uv[1][0], V: uv[1][1]},
			{X: vc.X, Y: vc.Y, Z: vc.Z, Color: color, U: uv[2][0], V: uv[2][1]},
		},
		Stroke: stroke,
	})
	return vmath.AABBOf(va, vb, vc)
}

// FillRect queues the quad (a, b, c, d) as two fill-colored triangles
func (b *Batch) FillRect(st *State, a, bb, c, d vmath.Vec4) vmath.AABB {
	return b.Add(st, st.Fill, a, bb, c, [3][2]float64{{0, 0}, {0.5, 0}, {0.5, 0.5}}, false).
		Union(b.Add(st, st.Fill, d, a, c, [3][2]float64{{0, 0.5}, {0, 0}, {0.5, 0.5}}, false))
}

// StrokeRect queues the quad outline as two stroke triangles
func (b *Batch) StrokeRect(st *State, a, bb, c, d vmath.Vec4) vmath.AABB {
	return b.Add(st, st.Stroke, a, bb, c, [3][2]float64{{0.5, 0.5}, {1, 0.5}, {1, 1}}, true).
		Union(b.Add(st, st.Stroke, d, a, c, [3][2]float64{{0.5, 1}, {0.5, 0.5}, {1, 1}}, true))
}

// boxCorners are the eight corners of a unit cube centered on the
// origin, scaled by s
func boxCorners(s float64) [8]vmath.Vec4 {
	return [8]vmath.Vec4{
		{X: -s, Y: +s, Z: +s, W: 1},
		{X: +s, Y: +s, Z: +s, W: 1},
		{X: +s, Y: -s, Z: +s, W: 1},
		{X: -s, Y: -s, Z: +s, W: 1},
		{X: -s, Y: +s, Z: -s, W: 1},
		{X: +s, Y: +s, Z: -s, W: 1},
		{X: +s, Y: -s, Z: -s, W: 1},
		{X: -s, Y: -s, Z: -s, W: 1},
	}
}

// faces index boxCorners quad by quad
var faces = [6][4]int{
	{0, 1, 2, 3},
	{1, 5, 6, 2},
	{5, 4, 7, 6},
	{4, 0, 3, 7},
	{4, 5, 1, 0},
	{3, 2, 6, 7},
}

// UnitBox queues a unit cube under the current transform: filled faces
// in the fill color and, slightly inflated so it reads as an outline, a
// stroked copy in the stroke color. Zero-alpha colors skip their pass.
func (b *Batch) UnitBox(st *State) vmath.AABB {
	bound := vmath.AABBBottom
	if st.Fill.Visible() {
		corners := boxCorners(0.5)
		for _, f := range faces {
			bound = bound.Union(b.FillRect(st, corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]]))
		}
	}
	if st.Stroke.Visible() {
		corners := boxCorners(0.51)
		for _, f := range faces {
			bound = bound.Union(b.StrokeRect(st, corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]]))
		}
	}
	return bound
}

// vertexLess orders vertices by (z, y, x); z first so triangle order
// tracks depth
func vertexLess(a, b render.Vertex) bool {
	if a.Z != b.Z {
		return a.Z < b.Z
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Flush depth-sorts the pending triangles and hands them to the
// rasterizer in painter order, then clears the batch. Returns how many
// triangles were drawn.
//
// Within each triangle the vertices are sorted (z, y, x) first so the
// inter-triangle comparison is well defined. Triangles then sort by
// their vertex z values, with y and x breaking ties to keep the order
// deterministic and cut down on flicker between equal-depth triangles.
// The ordering is not a correct visibility sort in every case, but it is
// fast, stable, and right often enough for convex scenes.
func (b *Batch) Flush(r render.Rasterizer) int {
	if len(b.triangles) == 0 {
		return 0
	}
	for i := range b.triangles {
		v := &b.triangles[i].V
		if vertexLess(v[1], v[0]) {
			v[0], v[1] = v[1], v[0]
		}
		if vertexLess(v[2], v[1]) {
			v[1], v[2] = v[2], v[1]
		}
		if vertexLess(v[1], v[0]) {
			v[0], v[1] = v[1], v[0]
		}
	}
	sort.SliceStable(b.triangles, func(i, j int) bool {
		lhs, rhs := &b.triangles[i].V, &b.triangles[j].V
		for k := 0; k < 3; k++ {
			if lhs[k].Z != rhs[k].Z {
				return lhs[k].Z < rhs[k].Z
			}
		}
		for k := 0; k < 3; k++ {
			if lhs[k].Y != rhs[k].Y {
				return lhs[k].Y < rhs[k].Y
			}
		}
		for k := 0; k < 3; k++ {
			if lhs[k].X != rhs[k].X {
				return lhs[k].X < rhs[k].X
			}
		}
		return false
	})
	if b.Reverse {
		for i, j := 0, len(b.triangles)-1; i < j; i, j = i+1, j-1 {
			b.triangles[i], b.triangles[j] = b.triangles[j], b.triangles[i]
		}
	}
	for _, t := range b.triangles {
		r.Triangle(t)
	}
	count := len(b.triangles)
	b.triangles = b.triangles[:0]
	return count
}
