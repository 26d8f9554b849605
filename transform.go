package ranged

import "github.com/go-gl/mathgl/mgl64"

// QuatIdent returns the identity rotation.
func QuatIdent() Quat {
	return mgl64.QuatIdent()
}

// AxisAngle returns a rotation of angle radians about axis.
func AxisAngle(angle float64, axis Vec3) Quat {
	return mgl64.QuatRotate(angle, axis.Normalize())
}

// localMatrix computes the entity's local transform.
//
// Composition order:
//
//	Scale -> Rotate -> Translate(Position)
func localMatrix(e *Entity) mgl64.Mat4 {
	t := mgl64.Translate3D(e.Position[0], e.Position[1], e.Position[2])
	s := mgl64.Scale3D(e.Scale[0], e.Scale[1], e.Scale[2])
	return t.Mul4(e.Rotation.Mat4()).Mul4(s)
}

// WorldMatrix returns the entity's local-to-world transform. Transforms are
// recomputed on every call; scenes handled here are small.
func (e *Entity) WorldMatrix() mgl64.Mat4 {
	m := localMatrix(e)
	for p := e.Parent; p != nil; p = p.Parent {
		m = localMatrix(p).Mul4(m)
	}
	return m
}

// WorldPosition returns the entity's origin in world space.
func (e *Entity) WorldPosition() Vec3 {
	return e.LocalToWorld(Vec3{})
}

// WorldRotation returns the accumulated rotation of the entity and its
// ancestors. Non-uniform scale on ancestors is ignored.
func (e *Entity) WorldRotation() Quat {
	q := e.Rotation
	for p := e.Parent; p != nil; p = p.Parent {
		q = p.Rotation.Mul(q)
	}
	return q.Normalize()
}

// WorldScale returns the component-wise product of the entity's scale and
// its ancestors' scales.
func (e *Entity) WorldScale() Vec3 {
	s := e.Scale
	for p := e.Parent; p != nil; p = p.Parent {
		s = Vec3{s[0] * p.Scale[0], s[1] * p.Scale[1], s[2] * p.Scale[2]}
	}
	return s
}

// SetWorldPosition moves the entity so that its origin lands on p in world
// space, whatever its parent.
func (e *Entity) SetWorldPosition(p Vec3) {
	if e.Parent == nil {
		e.Position = p
		return
	}
	e.Position = e.Parent.WorldToLocal(p)
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this entity's local coordinate space.
func (e *Entity) WorldToLocal(p Vec3) Vec3 {
	inv := e.WorldMatrix().Inv()
	return inv.Mul4x1(p.Vec4(1)).Vec3()
}

// LocalToWorld converts a local-space point to world-space.
func (e *Entity) LocalToWorld(p Vec3) Vec3 {
	return e.WorldMatrix().Mul4x1(p.Vec4(1)).Vec3()
}

// localDirection converts a world-space direction to local space, keeping
// the ray parameterization shared with world space.
func (e *Entity) localDirection(d Vec3) Vec3 {
	inv := e.WorldMatrix().Inv()
	return inv.Mul4x1(d.Vec4(0)).Vec3()
}

// Bounds returns the entity's bounding sphere in world space. Entities
// without a collider report a zero radius at their origin.
func (e *Entity) Bounds() (center Vec3, radius float64) {
	center = e.WorldPosition()
	s := Abs(e.WorldScale())
	maxScale := s[0]
	if s[1] > maxScale {
		maxScale = s[1]
	}
	if s[2] > maxScale {
		maxScale = s[2]
	}
	switch e.Kind {
	case KindSphere:
		radius = e.Radius * maxScale
	case KindBox:
		h := e.HalfExtents
		radius = Vec3{h[0] * s[0], h[1] * s[1], h[2] * s[2]}.Len()
	}
	return center, radius
}

// OrientedBounds returns the world-space oriented box of a KindBox entity.
func (e *Entity) OrientedBounds() OrientedBox {
	s := Abs(e.WorldScale())
	h := e.HalfExtents
	return OrientedBox{
		Center:      e.WorldPosition(),
		HalfExtents: Vec3{h[0] * s[0], h[1] * s[1], h[2] * s[2]},
		Rotation:    e.WorldRotation(),
	}
}

// PlaneProjector returns a function mapping world points into the entity's
// local XY plane, dropping the local Z offset.
func (e *Entity) PlaneProjector() func(Vec3) Vec2 {
	inv := e.WorldMatrix().Inv()
	return func(p Vec3) Vec2 {
		l := inv.Mul4x1(p.Vec4(1))
		return Vec2{l[0], l[1]}
	}
}

// ProjectToSurface maps world points into surface's local XY plane.
func ProjectToSurface(surface *Entity, points []Vec3) []Vec2 {
	project := surface.PlaneProjector()
	out := make([]Vec2, len(points))
	for i, p := range points {
		out[i] = project(p)
	}
	return out
}
