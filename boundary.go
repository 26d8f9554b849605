package ranged

// BoundaryMesh is a triangulated outline in a surface's local plane.
type BoundaryMesh struct {
	Vertices []Vec2
	Indices  []uint32
	// Closed reports whether the outline has been completed. An open mesh is
	// still triangulated so the enclosed area can be previewed.
	Closed bool
}

// Bounds returns the axis-aligned bounds of the vertices.
func (m BoundaryMesh) Bounds() Rect {
	if len(m.Vertices) == 0 {
		return Rect{}
	}
	minX, minY := m.Vertices[0].X, m.Vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range m.Vertices[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Triangles returns the number of triangles in the mesh.
func (m BoundaryMesh) Triangles() int {
	return len(m.Indices) / 3
}

// BuildBoundary triangulates points by ear clipping. Outlines that cannot be
// clipped (self-intersecting lasso paths) fall back to a fan from the first
// point. Fewer than three points yield a mesh with no triangles.
func BuildBoundary(points []Vec2, closed bool) BoundaryMesh {
	m := BoundaryMesh{
		Vertices: append([]Vec2(nil), points...),
		Closed:   closed,
	}
	if len(points) < 3 {
		return m
	}
	if inds, ok := earClip(points); ok {
		m.Indices = inds
	} else {
		m.Indices = buildFan(len(points))
	}
	return m
}

// buildFan generates indices for a fan-triangulated polygon.
// N vertices, 3*(N-2) indices.
func buildFan(n int) []uint32 {
	inds := make([]uint32, 0, (n-2)*3)
	for i := 0; i < n-2; i++ {
		inds = append(inds, 0, uint32(i+1), uint32(i+2))
	}
	return inds
}

// signedArea returns twice the signed area of the polygon; positive for
// counter-clockwise winding.
func signedArea(points []Vec2) float64 {
	var a float64
	j := len(points) - 1
	for i := range points {
		a += points[j].Cross(points[i])
		j = i
	}
	return a
}

// earClip triangulates a simple polygon of either winding. It reports false
// when no ear can be found, which happens for self-intersecting outlines.
func earClip(points []Vec2) ([]uint32, bool) {
	n := len(points)
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	// Work in counter-clockwise order.
	if signedArea(points) < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		}
	}

	inds := make([]uint32, 0, (n-2)*3)
	for len(remaining) > 3 {
		clipped := false
		for i := range remaining {
			prev := remaining[(i+len(remaining)-1)%len(remaining)]
			cur := remaining[i]
			next := remaining[(i+1)%len(remaining)]
			if !isEar(points, remaining, prev, cur, next) {
				continue
			}
			inds = append(inds, uint32(prev), uint32(cur), uint32(next))
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, false
		}
	}
	inds = append(inds, uint32(remaining[0]), uint32(remaining[1]), uint32(remaining[2]))
	return inds, true
}

// isEar reports whether the corner prev-cur-next is convex and contains no
// other remaining vertex.
func isEar(points []Vec2, remaining []int, prev, cur, next int) bool {
	a, b, c := points[prev], points[cur], points[next]
	if b.Sub(a).Cross(c.Sub(b)) <= 0 {
		return false
	}
	for _, idx := range remaining {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		if inTriangle(points[idx], a, b, c) {
			return false
		}
	}
	return true
}

// inTriangle reports whether p lies inside or on the counter-clockwise
// triangle abc.
func inTriangle(p, a, b, c Vec2) bool {
	return b.Sub(a).Cross(p.Sub(a)) >= 0 &&
		c.Sub(b).Cross(p.Sub(b)) >= 0 &&
		a.Sub(c).Cross(p.Sub(c)) >= 0
}
