package geom

import (
	"math"
	"testing"
)

func TestIntervalNonEmpty(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		want bool
	}{
		{"normal", Interval{0, 10}, true},
		{"point", Interval{5, 5}, false},
		{"inverted", Interval{10, 0}, false},
		{"tiny", Interval{0, 1e-9}, true},
	}
	for _, tt := range tests {
		if got := tt.iv.NonEmpty(); got != tt.want {
			t.Errorf("%s: NonEmpty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIntervalLength(t *testing.T) {
	if got := (Interval{2, 7}).Length(); got != 5 {
		t.Errorf("Expected length 5, got %g", got)
	}
	// Empty intervals report zero length, not negative
	if got := (Interval{7, 2}).Length(); got != 0 {
		t.Errorf("Expected empty interval length 0, got %g", got)
	}
}

func TestIntervalIntersect(t *testing.T) {
	a := Interval{0, 10}
	b := Interval{5, 15}

	got := a.Intersect(b)
	if got.Min != 5 || got.Max != 10 {
		t.Errorf("Expected [5, 10], got %v", got)
	}

	// Disjoint intervals intersect to empty
	c := Interval{20, 30}
	if a.Intersect(c).NonEmpty() {
		t.Errorf("Expected empty intersection, got %v", a.Intersect(c))
	}
}

func TestIntervalIntersectLengthBound(t *testing.T) {
	// (a & b).Length() <= min(a.Length(), b.Length()) for every pair
	pairs := []struct{ a, b Interval }{
		{Interval{0, 10}, Interval{5, 15}},
		{Interval{-3, 3}, Interval{-1, 1}},
		{Interval{0, 1}, Interval{2, 3}},
		{Interval{0, 0}, Interval{0, 5}},
		{Interval{-100, 100}, Interval{-100, 100}},
	}
	for _, p := range pairs {
		bound := min(p.a.Length(), p.b.Length())
		if got := p.a.Intersect(p.b).Length(); got > bound {
			t.Errorf("(%v & %v).Length() = %g exceeds min of lengths %g", p.a, p.b, got, bound)
		}
	}
}

func TestIntervalUnionContainsBoth(t *testing.T) {
	pairs := []struct{ a, b Interval }{
		{Interval{0, 10}, Interval{5, 15}},
		{Interval{-3, -1}, Interval{4, 9}},
		{Interval{0, 1}, Interval{0, 1}},
	}
	for _, p := range pairs {
		u := p.a.Union(p.b)
		for _, x := range []float64{p.a.Min, p.a.Max, p.b.Min, p.b.Max} {
			if !u.Contains(x) {
				t.Errorf("Union %v of %v and %v does not contain %g", u, p.a, p.b, x)
			}
		}
	}
}

func TestIntervalSymmetry(t *testing.T) {
	a := Interval{-2, 6}
	b := Interval{1, 9}
	if a.Intersect(b) != b.Intersect(a) {
		t.Errorf("Intersect not symmetric: %v vs %v", a.Intersect(b), b.Intersect(a))
	}
	if a.Union(b) != b.Union(a) {
		t.Errorf("Union not symmetric: %v vs %v", a.Union(b), b.Union(a))
	}
}

func TestIntervalTranslate(t *testing.T) {
	got := Interval{1, 4}.Translate(2.5)
	if got.Min != 3.5 || got.Max != 6.5 {
		t.Errorf("Expected [3.5, 6.5], got %v", got)
	}
}

func TestIntervalContainsInfinity(t *testing.T) {
	all := Interval{math.Inf(-1), math.Inf(1)}
	if !all.Contains(0) || !all.Contains(1e300) {
		t.Error("Expected [-Inf, +Inf] to contain all finite values")
	}
	if !all.NonEmpty() {
		t.Error("Expected [-Inf, +Inf] to be non-empty")
	}
}
