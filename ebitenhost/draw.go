package ebitenhost

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ranged"
)

// circleSegments is the number of fan triangles per sphere outline.
const circleSegments = 20

// selectedTint is blended over selected shapes.
var selectedTint = ranged.Color{R: 1, G: 0.85, B: 0.2, A: 1}

// --- White pixel singleton (single-threaded: only touched from Draw) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// batch accumulates untextured triangles for a single DrawTriangles32 call.
type batch struct {
	verts []ebiten.Vertex
	inds  []uint32
}

func (b *batch) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

// vertex appends one vertex with premultiplied color and returns its index.
func (b *batch) vertex(x, y float64, c ranged.Color) uint32 {
	i := uint32(len(b.verts))
	a := float32(c.A)
	b.verts = append(b.verts, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R) * a,
		ColorG: float32(c.G) * a,
		ColorB: float32(c.B) * a,
		ColorA: a,
	})
	return i
}

// quad appends the convex quad p0-p1-p2-p3 as two triangles.
func (b *batch) quad(p [4][2]float64, c ranged.Color) {
	base := uint32(len(b.verts))
	for _, q := range p {
		b.vertex(q[0], q[1], c)
	}
	b.inds = append(b.inds,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
}

// circle appends a filled circle as a triangle fan around its center.
func (b *batch) circle(cx, cy, r float64, c ranged.Color) {
	center := b.vertex(cx, cy, c)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		b.vertex(cx+r*math.Cos(a), cy+r*math.Sin(a), c)
	}
	for i := uint32(0); i < circleSegments; i++ {
		next := (i+1)%circleSegments + 1
		b.inds = append(b.inds, center, center+i+1, center+next)
	}
}

// segment appends a line of the given pixel width. Zero-length segments are
// skipped.
func (b *batch) segment(x0, y0, x1, y1, width float64, c ranged.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	b.quad([4][2]float64{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, c)
}

// flush submits the accumulated triangles and clears the batch.
func (b *batch) flush(dst *ebiten.Image) {
	if len(b.inds) == 0 {
		b.reset()
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles32(b.verts, b.inds, ensureWhitePixel(), &op)
	b.reset()
}

// --- Scene drawing ---

// entityColor returns the fill for e, tinted when it is selected.
func entityColor(e *ranged.Entity) ranged.Color {
	if !e.Selected {
		return e.Color
	}
	c := e.Color
	return ranged.Color{
		R: (c.R + selectedTint.R) / 2,
		G: (c.G + selectedTint.G) / 2,
		B: (c.B + selectedTint.B) / 2,
		A: c.A,
	}
}

// appendEntity appends e's top-down silhouette to b.
func appendEntity(b *batch, cam *Camera, e *ranged.Entity) {
	switch e.Kind {
	case ranged.KindBox:
		b.quad(boxFootprint(cam, e), entityColor(e))
	case ranged.KindSphere:
		x, y := cam.WorldToScreen(e.WorldPosition())
		s := e.WorldScale()
		r := e.Radius * math.Max(s[0], math.Max(s[1], s[2]))
		b.circle(x, y, math.Max(cam.Pixels(r), 1), entityColor(e))
	case ranged.KindLine:
		w := math.Max(cam.Pixels(e.Width), 1)
		for i := 1; i < len(e.Points); i++ {
			x0, y0 := cam.WorldToScreen(e.Points[i-1])
			x1, y1 := cam.WorldToScreen(e.Points[i])
			b.segment(x0, y0, x1, y1, w, e.Color)
		}
	case ranged.KindMesh:
		appendBoundary(b, cam, e)
	}
}

// boxFootprint returns the screen corners of the box face whose normal is
// closest to world up.
func boxFootprint(cam *Camera, e *ranged.Entity) [4][2]float64 {
	box := e.OrientedBounds()
	axes := [3]ranged.Vec3{
		box.Rotation.Rotate(ranged.Vec3{1, 0, 0}),
		box.Rotation.Rotate(ranged.Vec3{0, 1, 0}),
		box.Rotation.Rotate(ranged.Vec3{0, 0, 1}),
	}
	up := 0
	for i := 1; i < 3; i++ {
		if math.Abs(axes[i][1]) > math.Abs(axes[up][1]) {
			up = i
		}
	}
	u, v := (up+1)%3, (up+2)%3
	du := axes[u].Mul(box.HalfExtents[u])
	dv := axes[v].Mul(box.HalfExtents[v])
	top := box.Center.Add(axes[up].Mul(box.HalfExtents[up]))

	var out [4][2]float64
	for i, s := range [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		p := top.Add(du.Mul(s[0])).Add(dv.Mul(s[1]))
		out[i][0], out[i][1] = cam.WorldToScreen(p)
	}
	return out
}

// appendBoundary appends a boundary mesh, whose vertices live in the parent
// surface's local XY plane.
func appendBoundary(b *batch, cam *Camera, e *ranged.Entity) {
	m := e.Boundary
	if len(m.Indices) == 0 || e.Parent == nil {
		return
	}
	c := e.Color
	c.A *= 0.35
	base := uint32(len(b.verts))
	for _, p := range m.Vertices {
		x, y := cam.WorldToScreen(e.Parent.LocalToWorld(ranged.Vec3{p.X, p.Y, 0}))
		b.vertex(x, y, c)
	}
	for _, i := range m.Indices {
		b.inds = append(b.inds, base+i)
	}
}

// appendScene walks the scene in order, skipping hidden subtrees.
func appendScene(b *batch, cam *Camera, s *ranged.Scene) {
	s.Walk(func(e *ranged.Entity) bool {
		if !e.Visible {
			return false
		}
		appendEntity(b, cam, e)
		return true
	})
}
