package render

// Vertex is one corner of a batched triangle in screen coordinates.
// U and V are normalized texture coordinates kept for backends that
// texture their fills; the cell rasterizer draws solid colors and
// ignores them.
type Vertex struct {
	X, Y, Z float64
	Color   RGBA
	U, V    float64
}

// Triangle is a batched primitive. Stroke triangles rasterize as
// outlines instead of filled spans.
type Triangle struct {
	V      [3]Vertex
	Stroke bool
}

// Rasterizer consumes depth-sorted triangles from a batch flush
type Rasterizer interface {
	Triangle(t Triangle)
}
