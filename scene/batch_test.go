package scene

import (
	"testing"

	"github.com/lixenwraith/cellworks/render"
	"github.com/lixenwraith/cellworks/vmath"
)

// recorder captures flushed triangles in draw order
type recorder struct {
	triangles []render.Triangle
}

func (r *recorder) Triangle(t render.Triangle) {
	r.triangles = append(r.triangles, t)
}

func uvZero() [3][2]float64 {
	return [3][2]float64{}
}

func addAtDepth(b *Batch, st *State, z float64, c render.RGBA) {
	b.Add(st, c,
		vmath.Vec4{X: 10, Y: 10, Z: z, W: 1},
		vmath.Vec4{X: 30, Y: 10, Z: z, W: 1},
		vmath.Vec4{X: 10, Y: 30, Z: z, W: 1},
		uvZero(), false)
}

func TestBatchAddAndLen(t *testing.T) {
	b := NewBatch(100, 100)
	st := NewState()

	bound := b.Add(&st, render.Red,
		vmath.Vec4{X: 10, Y: 10, Z: 0, W: 1},
		vmath.Vec4{X: 30, Y: 10, Z: 0, W: 1},
		vmath.Vec4{X: 10, Y: 30, Z: 0, W: 1},
		uvZero(), false)

	if b.Len() != 1 {
		t.Fatalf("Expected 1 pending triangle, got %d", b.Len())
	}
	if bound.Min.X != 10 || bound.Max.X != 30 || bound.Min.Y != 10 || bound.Max.Y != 30 {
		t.Errorf("Unexpected bound %v", bound)
	}
}

func TestBatchRejectsBehindCamera(t *testing.T) {
	b := NewBatch(100, 100)
	st := NewState()

	bound := b.Add(&st, render.Red,
		vmath.Vec4{X: 0, Y: 0, Z: 0, W: -1}, // behind the camera
		vmath.Vec4{X: 30, Y: 10, Z: 0, W: 1},
		vmath.Vec4{X: 10, Y: 30, Z: 0, W: 1},
		uvZero(), false)

	if b.Len() != 0 {
		t.Errorf("Expected rejection, got %d triangles", b.Len())
	}
	if bound != vmath.AABBBottom {
		t.Errorf("Expected AABBBottom for rejected triangle, got %v", bound)
	}
}

func TestBatchCullsOffscreen(t *testing.T) {
	b := NewBatch(100, 100)
	st := NewState()

	// Entirely to the left of the screen
	b.Add(&st, render.Red,
		vmath.Vec4{X: -50, Y: 10, Z: 0, W: 1},
		vmath.Vec4{X: -30, Y: 10, Z: 0, W: 1},
		vmath.Vec4{X: -40, Y: 30, Z: 0, W: 1},
		uvZero(), false)
	// Entirely below
	b.Add(&st, render.Red,
		vmath.Vec4{X: 10, Y: 150, Z: 0, W: 1},
		vmath.Vec4{X: 30, Y: 150, Z: 0, W: 1},
		vmath.Vec4{X: 10, Y: 170, Z: 0, W: 1},
		uvZero(), false)
	// Straddling an edge survives
	b.Add(&st, render.Red,
		vmath.Vec4{X: -10, Y: 10, Z: 0, W: 1},
		vmath.Vec4{X: 30, Y: 10, Z: 0, W: 1},
		vmath.Vec4{X: 10, Y: 30, Z: 0, W: 1},
		uvZero(), false)

	if b.Len() != 1 {
		t.Errorf("Expected only the straddling triangle kept, got %d", b.Len())
	}
}

func TestFlushDepthOrder(t *testing.T) {
	b := NewBatch(100, 100)
	st := NewState()

	// Added far-first order must not matter
	addAtDepth(b, &st, 5, render.Red)
	addAtDepth(b, &st, 1, render.Green)
	addAtDepth(b, &st, 3, render.Blue)

	rec := &recorder{}
	if n := b.Flush(rec); n != 3 {
		t.Fatalf("Expected 3 triangles flushed, got %d", n)
	}

	want := []render.RGBA{render.Green, render.Blue, render.Red}
	for i, c := range want {
		if rec.triangles[i].V[0].Color != c {
			t.Errorf("Draw position %d: expected %v, got %v", i, c, rec.triangles[i].V[0].Color)
		}
	}
}

func TestFlushReverse(t *testing.T) {
	b := NewBatch(100, 100)
	b.Reverse = true
	st := NewState()

	addAtDepth(b, &st, 1, render.Green)
	addAtDepth(b, &st, 5, render.Red)

	rec := &recorder{}
	b.Flush(rec)
	if rec.triangles[0].V[0].Color != render.Red {
		t.Errorf("Expected reversed order to draw far triangle first, got %v", rec.triangles[0].V[0].Color)
	}
}

func TestFlushSortsVerticesWithinTriangle(t *testing.T) {
	b := NewBatch(100, 100)
	st := NewState()

	// Vertices supplied out of (z, y, x) order
	b.Add(&st, render.Red,
		vmath.Vec4{X: 10, Y: 30, Z: 2, W: 1},
		vmath.Vec4{X: 30, Y: 10, Z: 1, W: 1},
		vmath.Vec4{X: 10, Y: 10, Z: 1, W: 1},
		uvZero(), false)

	rec := &recorder{}
	b.Flush(rec)
	v := rec.triangles[0].V
	if v[0].Z != 1 || v[0].Y != 10 {
		t.Errorf("Expected first vertex (z=1, y=10), got (z=%g, y=%g)", v[0].Z, v[0].Y)
	}
	if v[2].Z != 2 {
		t.Errorf("Expected last vertex z=2, got %g", v[2].Z)
	}
}

func TestFlushClearsBatch(t *testing.T) {
	b := NewBatch(100, 100)
	st := NewState()
	addAtDepth(b, &st, 1, render.Red)

	rec := &recorder{}
	b.Flush(rec)
	if b.Len() != 0 {
		t.Errorf("Expected empty batch after flush, got %d", b.Len())
	}
	if n := b.Flush(rec); n != 0 {
		t.Errorf("Expected empty flush to draw nothing, got %d", n)
	}
}

func TestUnitBoxSkipsInvisiblePasses(t *testing.T) {
	st := NewState()
	st.Fill = render.RGBA{} // invisible
	st.Stroke = render.Red

	b := NewBatch(1000, 1000)
	// Push the cube in front of the screen origin so it is not culled
	stack := NewStack()
	stack.State().Fill = st.Fill
	stack.State().Stroke = st.Stroke
	stack.Apply(vmath.Translation(500, 500, 0))
	stack.Apply(vmath.Scaling(100, 100, 1))

	b.UnitBox(stack.State())
	// 6 faces x 2 triangles, stroke pass only
	if b.Len() != 12 {
		t.Errorf("Expected 12 stroke triangles, got %d", b.Len())
	}
	for _, tri := range b.triangles {
		if !tri.Stroke {
			t.Error("Expected only stroke triangles when fill is invisible")
		}
	}
}
