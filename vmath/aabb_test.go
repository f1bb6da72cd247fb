package vmath

import "testing"

func TestAABBIdentities(t *testing.T) {
	box := AABBOf(Vec4{0, 0, 0, 1}, Vec4{4, 5, 6, 1})

	if got := box.Union(AABBBottom); got != box {
		t.Errorf("Expected Bottom to be union identity, got %v", got)
	}
	if got := box.Intersect(AABBTop); got != box {
		t.Errorf("Expected Top to be intersect identity, got %v", got)
	}
}

func TestAABBOf(t *testing.T) {
	box := AABBOf(Vec4{3, -1, 2, 1}, Vec4{-2, 4, 0, 1}, Vec4{1, 1, 5, 1})
	if box.Min != (Vec4{-2, -1, 0, 1}) {
		t.Errorf("Unexpected min %v", box.Min)
	}
	if box.Max != (Vec4{3, 4, 5, 1}) {
		t.Errorf("Unexpected max %v", box.Max)
	}
}

func TestAABBUnion(t *testing.T) {
	a := AABBOf(Vec4{0, 0, 0, 1}, Vec4{1, 1, 1, 1})
	b := AABBOf(Vec4{2, 2, 2, 1}, Vec4{3, 3, 3, 1})
	u := a.Union(b)
	if u.Min != (Vec4{0, 0, 0, 1}) || u.Max != (Vec4{3, 3, 3, 1}) {
		t.Errorf("Unexpected union %v", u)
	}
}

func TestAABBContainsXY(t *testing.T) {
	box := AABBOf(Vec4{10, 20, 0, 1}, Vec4{30, 40, 5, 1})
	if !box.ContainsXY(15, 25) {
		t.Error("Expected point inside to be contained")
	}
	if !box.ContainsXY(10, 40) {
		t.Error("Expected boundary point to be contained")
	}
	if box.ContainsXY(5, 25) || box.ContainsXY(15, 50) {
		t.Error("Expected outside points to be rejected")
	}
	if AABBBottom.ContainsXY(0, 0) {
		t.Error("Expected empty box to contain nothing")
	}
}
