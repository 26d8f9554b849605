package ranged

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3D vector used for positions, extents and directions throughout
// the API.
type Vec3 = mgl64.Vec3

// Quat is a rotation quaternion.
type Quat = mgl64.Quat

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for points in a surface's local plane.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Rect is an axis-aligned rectangle in a surface's local plane.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Tag classifies an entity for the controller's tool logic.
type Tag uint8

const (
	TagNone          Tag = iota // untagged scenery
	TagShape                    // eligible for selection
	TagSurface                  // the selection surface (display screen)
	TagUIElement                // clickable UI
	TagUIAxisElement            // UI axis element, treated like TagUIElement
	TagPullable                 // can be pulled toward the controller
)

var tagNames = [...]string{"none", "shape", "surface", "ui", "ui-axis", "pullable"}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// IsUI reports whether the tag redirects a trigger press to ranged interaction.
func (t Tag) IsUI() bool {
	return t == TagUIElement || t == TagUIAxisElement
}

// Layer is a collision layer index in [0, 31].
type Layer uint8

const (
	LayerDefault       Layer = 0
	LayerIgnoreRaycast Layer = 2
)

const maxLayer = 31

// LayerMask is a bit set of layers. Bit n set means layer n is included.
type LayerMask uint32

// MaskOf returns a mask containing the given layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << (l & maxLayer)
	}
	return m
}

// Has reports whether l is in the mask.
func (m LayerMask) Has(l Layer) bool {
	return m&(1<<(l&maxLayer)) != 0
}

// Layers returns the layers in the mask in ascending order.
func (m LayerMask) Layers() []Layer {
	var out []Layer
	for l := Layer(0); l <= maxLayer; l++ {
		if m.Has(l) {
			out = append(out, l)
		}
	}
	return out
}

// EntityKind distinguishes the collider and drawing behavior of an Entity.
type EntityKind uint8

const (
	KindEmpty  EntityKind = iota // group entity with no collider
	KindBox                      // oriented box collider of HalfExtents
	KindSphere                   // sphere collider of Radius
	KindLine                     // world-space polyline, no collider
	KindMesh                     // boundary mesh in the parent's plane, no collider
)
