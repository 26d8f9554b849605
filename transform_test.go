package ranged

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVecNear(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

// --- World transforms ---

func TestWorldPositionIdentity(t *testing.T) {
	e := NewEntity("e")
	e.Position = Vec3{1, 2, 3}
	assertVecNear(t, "WorldPosition", e.WorldPosition(), Vec3{1, 2, 3})
}

func TestWorldPositionParentChild(t *testing.T) {
	parent := NewEntity("parent")
	parent.Position = Vec3{10, 0, 0}
	parent.Scale = Vec3{2, 2, 2}
	parent.Rotation = AxisAngle(math.Pi/2, Vec3{0, 0, 1})
	child := NewEntity("child")
	child.Position = Vec3{1, 0, 0}
	parent.AddChild(child)

	// Scaled by 2, rotated so local X points along world Y, then translated.
	assertVecNear(t, "child world", child.WorldPosition(), Vec3{10, 2, 0})
	assertVecNear(t, "child scale", child.WorldScale(), Vec3{2, 2, 2})
}

func TestWorldRotationAccumulates(t *testing.T) {
	parent := NewEntity("parent")
	parent.Rotation = AxisAngle(math.Pi/4, Vec3{0, 1, 0})
	child := NewEntity("child")
	child.Rotation = AxisAngle(math.Pi/4, Vec3{0, 1, 0})
	parent.AddChild(child)

	got := child.WorldRotation().Rotate(Vec3{1, 0, 0})
	assertVecNear(t, "rotated X", got, Vec3{0, 0, -1})
}

func TestWorldToLocalRoundtrip(t *testing.T) {
	parent := NewEntity("parent")
	parent.Position = Vec3{100, 50, -3}
	parent.Rotation = AxisAngle(0.7, Vec3{1, 1, 0})
	child := NewEntity("child")
	child.Position = Vec3{10, 20, 1}
	child.Scale = Vec3{2, 3, 0.5}
	child.Rotation = AxisAngle(math.Pi/6, Vec3{0, 0, 1})
	parent.AddChild(child)

	w := Vec3{150, 80, 7}
	l := child.WorldToLocal(w)
	assertVecNear(t, "roundtrip", child.LocalToWorld(l), w)
}

func TestSetWorldPosition(t *testing.T) {
	parent := NewEntity("parent")
	parent.Position = Vec3{5, 0, 0}
	parent.Scale = Vec3{2, 2, 2}
	child := NewEntity("child")
	parent.AddChild(child)

	child.SetWorldPosition(Vec3{9, 4, 0})
	assertVecNear(t, "local", child.Position, Vec3{2, 2, 0})
	assertVecNear(t, "world", child.WorldPosition(), Vec3{9, 4, 0})

	orphan := NewEntity("orphan")
	orphan.SetWorldPosition(Vec3{1, 1, 1})
	if orphan.Position != (Vec3{1, 1, 1}) {
		t.Errorf("Position = %v, want {1 1 1}", orphan.Position)
	}
}

func TestDeepHierarchy(t *testing.T) {
	entities := make([]*Entity, 10)
	for i := range entities {
		entities[i] = NewEntity("")
		entities[i].Position = Vec3{10, 0, 0}
		if i > 0 {
			entities[i-1].AddChild(entities[i])
		}
	}
	assertNear(t, "leaf x", entities[9].WorldPosition()[0], 100)
}

// --- Bounds ---

func TestBoundsSphere(t *testing.T) {
	e := NewSphere("s", 0.5)
	e.Position = Vec3{1, 0, 0}
	e.Scale = Vec3{1, 4, 2}
	c, r := e.Bounds()
	assertVecNear(t, "center", c, Vec3{1, 0, 0})
	assertNear(t, "radius", r, 2)
}

func TestBoundsBox(t *testing.T) {
	e := NewBox("b", Vec3{1, 2, 2})
	_, r := e.Bounds()
	assertNear(t, "radius", r, 3)

	ob := e.OrientedBounds()
	if ob.HalfExtents != (Vec3{1, 2, 2}) {
		t.Errorf("HalfExtents = %v, want {1 2 2}", ob.HalfExtents)
	}
}

func TestBoundsEmpty(t *testing.T) {
	_, r := NewEntity("e").Bounds()
	if r != 0 {
		t.Errorf("radius = %v, want 0", r)
	}
}

// --- Surface projection ---

func TestProjectToSurface(t *testing.T) {
	// A table top: local XY is world XZ, local +Z is world +Y.
	surface := NewBox("surface", Vec3{1, 1, 0.01})
	surface.Rotation = AxisAngle(-math.Pi/2, Vec3{1, 0, 0})
	surface.Position = Vec3{0, 1, 0}

	got := ProjectToSurface(surface, []Vec3{{0.5, 1.2, -0.25}, {0, 1, 0}})
	want := []Vec2{{0.5, 0.25}, {0, 0}}
	for i := range want {
		assertNear(t, "x", got[i].X, want[i].X)
		assertNear(t, "y", got[i].Y, want[i].Y)
	}
}

func BenchmarkWorldMatrixDepth8(b *testing.B) {
	var leaf *Entity
	parent := NewEntity("root")
	for i := 0; i < 8; i++ {
		leaf = NewEntity("")
		leaf.Position = Vec3{1, 0, 0}
		parent.AddChild(leaf)
		parent = leaf
	}
	for i := 0; i < b.N; i++ {
		leaf.WorldMatrix()
	}
}
