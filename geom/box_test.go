package geom

import "testing"

func TestBoxAt(t *testing.T) {
	b := BoxAt(50, 30, 20, 10)
	if b.X.Min != 40 || b.X.Max != 60 {
		t.Errorf("Expected X [40, 60], got %v", b.X)
	}
	if b.Y.Min != 25 || b.Y.Max != 35 {
		t.Errorf("Expected Y [25, 35], got %v", b.Y)
	}
	if b.Width() != 20 || b.Height() != 10 {
		t.Errorf("Expected 20x10, got %gx%g", b.Width(), b.Height())
	}
}

func TestBoxNonEmpty(t *testing.T) {
	if !BoxAt(0, 0, 2, 2).NonEmpty() {
		t.Error("Expected 2x2 box to be non-empty")
	}
	// Empty on one axis is empty overall
	flat := Box{X: Interval{0, 5}, Y: Interval{3, 3}}
	if flat.NonEmpty() {
		t.Error("Expected zero-height box to be empty")
	}
}

func TestBoxIntersect(t *testing.T) {
	a := BoxAt(0, 0, 10, 10)
	b := BoxAt(4, 4, 10, 10)

	got := a.Intersect(b)
	if !got.NonEmpty() {
		t.Fatalf("Expected overlapping boxes to intersect, got %v", got)
	}
	if got.X.Min != -1 || got.X.Max != 5 || got.Y.Min != -1 || got.Y.Max != 5 {
		t.Errorf("Expected intersection [-1,5]x[-1,5], got %v", got)
	}

	far := BoxAt(100, 100, 2, 2)
	if a.Intersect(far).NonEmpty() {
		t.Error("Expected disjoint boxes to have empty intersection")
	}
}

func TestBoxIntersectSymmetry(t *testing.T) {
	a := BoxAt(0, 0, 6, 4)
	b := BoxAt(2, 1, 6, 4)
	if a.Intersect(b) != b.Intersect(a) {
		t.Errorf("Intersect not symmetric: %v vs %v", a.Intersect(b), b.Intersect(a))
	}
	if a.Union(b) != b.Union(a) {
		t.Errorf("Union not symmetric: %v vs %v", a.Union(b), b.Union(a))
	}
}

func TestBoxUnionContainsBoth(t *testing.T) {
	a := BoxAt(-5, -5, 2, 2)
	b := BoxAt(5, 5, 2, 2)
	u := a.Union(b)
	if u.X.Min != -6 || u.X.Max != 6 || u.Y.Min != -6 || u.Y.Max != 6 {
		t.Errorf("Expected union [-6,6]x[-6,6], got %v", u)
	}
}

func TestBoxTranslate(t *testing.T) {
	b := BoxAt(0, 0, 4, 4).Translate(Vec{X: 3, Y: -2})
	if b.X.Min != 1 || b.X.Max != 5 || b.Y.Min != -4 || b.Y.Max != 0 {
		t.Errorf("Unexpected translated box %v", b)
	}
}
