package ranged

import (
	"fmt"
	"math"
)

// Demo is a ready-made tabletop world: a horizontal selection surface with
// a grid of indexed shapes on it, a pullable crate and a UI button.
type Demo struct {
	Scene    *Scene
	Surface  *Entity
	Shapes   []*Entity
	Pullable *Entity
	Button   *Entity
	// Eye is a good default device position looking down at the table.
	Eye Vec3
}

// Demo layout, in world units.
const (
	demoSurfaceHalfW = 1.0
	demoSurfaceHalfD = 0.6
	demoSurfaceHalfH = 0.01
	demoShapeRadius  = 0.03
	demoCols         = 7
	demoRows         = 4
	demoSpacing      = 0.18
)

// BuildDemoScene creates the demo world. The surface's local XY plane is the
// table top and its local +Z axis points up.
func BuildDemoScene() *Demo {
	s := NewScene()

	surface := NewBox("surface", Vec3{demoSurfaceHalfW, demoSurfaceHalfD, demoSurfaceHalfH})
	surface.Tag = TagSurface
	surface.Rotation = AxisAngle(-math.Pi/2, Vec3{1, 0, 0})
	surface.Color = Color{R: 0.16, G: 0.18, B: 0.22, A: 1}
	s.Add(surface)

	d := &Demo{Scene: s, Surface: surface, Eye: Vec3{0, 1.2, 0.9}}

	top := demoSurfaceHalfH + demoShapeRadius
	x0 := -float64(demoCols-1) * demoSpacing / 2
	z0 := -float64(demoRows-1) * demoSpacing / 2
	for row := 0; row < demoRows; row++ {
		for col := 0; col < demoCols; col++ {
			i := row*demoCols + col
			shape := NewSphere(fmt.Sprintf("shape-%02d", i), demoShapeRadius)
			shape.Tag = TagShape
			shape.Index = i
			shape.Position = Vec3{x0 + float64(col)*demoSpacing, top, z0 + float64(row)*demoSpacing}
			shape.Color = Color{R: 0.4, G: 0.6, B: 1, A: 1}
			s.Add(shape)
			d.Shapes = append(d.Shapes, shape)
		}
	}

	crate := NewBox("crate", Vec3{0.05, 0.05, 0.05})
	crate.Tag = TagPullable
	crate.Position = Vec3{demoSurfaceHalfW - 0.1, demoSurfaceHalfH + 0.05, demoSurfaceHalfD + 0.15}
	crate.Color = Color{R: 0.8, G: 0.55, B: 0.25, A: 1}
	s.Add(crate)
	d.Pullable = crate

	button := NewBox("button", Vec3{0.08, 0.02, 0.04})
	button.Tag = TagUIElement
	button.Position = Vec3{-demoSurfaceHalfW + 0.1, demoSurfaceHalfH + 0.02, demoSurfaceHalfD + 0.15}
	button.Color = Color{R: 0.9, G: 0.3, B: 0.35, A: 1}
	s.Add(button)
	d.Button = button

	return d
}

// ShapePosition returns the world position of shape i in the demo grid.
func (d *Demo) ShapePosition(i int) Vec3 {
	return d.Shapes[i].WorldPosition()
}

// TablePoint returns the world point on the table top at local plane
// coordinates (x, z), measured from the surface center.
func (d *Demo) TablePoint(x, z float64) Vec3 {
	return Vec3{x, demoSurfaceHalfH, z}
}
