package ranged

import (
	"math"
	"sort"
)

// Hit describes the nearest collider struck by a ray.
type Hit struct {
	Entity   *Entity
	Point    Vec3
	Distance float64
}

// collectColliders walks the tree in depth-first order, appending visible
// entities with a collider to buf. Skips Visible=false subtrees and disposed
// entities.
func collectColliders(e *Entity, buf []*Entity) []*Entity {
	if !e.Visible || e.disposed {
		return buf
	}
	if e.HasCollider() {
		buf = append(buf, e)
	}
	for _, child := range e.children {
		buf = collectColliders(child, buf)
	}
	return buf
}

// Raycast returns the nearest collider along ray within maxLength whose
// layer is not in ignore.
func (s *Scene) Raycast(ray Ray, maxLength float64, ignore LayerMask) (Hit, bool) {
	s.hitBuf = collectColliders(s.root, s.hitBuf[:0])

	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, e := range s.hitBuf {
		if ignore.Has(e.Layer) {
			continue
		}
		t, ok := intersectEntity(ray, e)
		if !ok || t > maxLength || t >= best.Distance {
			continue
		}
		best = Hit{Entity: e, Point: ray.At(t), Distance: t}
		found = true
	}
	return best, found
}

// intersectEntity returns the ray parameter at which ray meets e's collider.
func intersectEntity(ray Ray, e *Entity) (float64, bool) {
	switch e.Kind {
	case KindSphere:
		center, radius := e.Bounds()
		return intersectSphere(ray, center, radius)
	case KindBox:
		// Slab test in the box's local frame. The inverse transform keeps the
		// parameterization, so t is a world distance for a unit direction.
		origin := e.WorldToLocal(ray.Origin)
		dir := e.localDirection(ray.Direction)
		return intersectAABB(origin, dir, e.HalfExtents)
	}
	return 0, false
}

// overlapsSphere reports whether e's collider touches a sphere. Entities without a
// collider are tested by their origin.
func overlapsSphere(e *Entity, center Vec3, radius float64) bool {
	switch e.Kind {
	case KindBox:
		return e.OrientedBounds().IntersectsSphere(center, radius)
	default:
		c, r := e.Bounds()
		return c.Sub(center).Len() <= radius+r
	}
}

// OverlapSphere returns the entities tagged tag that touch the sphere.
func (s *Scene) OverlapSphere(center Vec3, radius float64, tag Tag) []*Entity {
	var out []*Entity
	for _, e := range s.tagged(tag) {
		if overlapsSphere(e, center, radius) {
			out = append(out, e)
		}
	}
	return out
}

// OverlapBox returns the entities tagged tag that touch box.
func (s *Scene) OverlapBox(box OrientedBox, tag Tag) []*Entity {
	var out []*Entity
	for _, e := range s.tagged(tag) {
		if overlapsBox(e, box) {
			out = append(out, e)
		}
	}
	return out
}

func overlapsBox(e *Entity, box OrientedBox) bool {
	if e.Kind == KindBox {
		return box.IntersectsBox(e.OrientedBounds())
	}
	c, r := e.Bounds()
	return box.IntersectsSphere(c, r)
}

// SweepSphere returns the entities tagged tag touched by a sphere of radius
// moving from one point to another.
func (s *Scene) SweepSphere(from, to Vec3, radius float64, tag Tag) []*Entity {
	var out []*Entity
	for _, e := range s.tagged(tag) {
		c, r := e.Bounds()
		if segmentDistance(c, from, to) <= radius+r {
			out = append(out, e)
		}
	}
	return out
}

// Eligible returns the entities that lasso and rectangle selection consider.
func (s *Scene) Eligible() []*Entity {
	return s.tagged(TagShape)
}

// tagged returns visible, live entities carrying tag.
func (s *Scene) tagged(tag Tag) []*Entity {
	var out []*Entity
	s.Walk(func(e *Entity) bool {
		if !e.Visible || e.disposed {
			return false
		}
		if e.Tag == tag {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Indices returns the sorted, de-duplicated selection indices of entities.
// Entities without an index are skipped.
func Indices(entities []*Entity) []int {
	seen := make(map[int]struct{}, len(entities))
	out := make([]int, 0, len(entities))
	for _, e := range entities {
		if e.Index < 0 {
			continue
		}
		if _, ok := seen[e.Index]; ok {
			continue
		}
		seen[e.Index] = struct{}{}
		out = append(out, e.Index)
	}
	sort.Ints(out)
	return out
}
