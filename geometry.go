package ranged

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ContainsPoint reports whether p lies inside the closed polygon using the
// crossing-number rule: a horizontal ray cast from p toggles the result each
// time it crosses an edge. Polygons with fewer than three points contain
// nothing. Self-intersecting polygons follow the even-odd rule.
func ContainsPoint(polygon []Vec2, p Vec2) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		start, end := polygon[j], polygon[i]
		if (end.Y > p.Y) != (start.Y > p.Y) &&
			p.X-end.X < (p.Y-end.Y)*(start.X-end.X)/(start.Y-end.Y) {
			inside = !inside
		}
		j = i
	}
	return inside
}

// AngleDelta returns the signed change from prev to next in degrees, folded
// into [-180, 180) so that a step across the 0/360 seam reads as the short
// way around.
func AngleDelta(prev, next float64) float64 {
	delta := next - prev
	if delta >= 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return delta
}

// Lerp linearly interpolates between a and b. t is not clamped.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Abs returns the component-wise absolute value of v.
func Abs(v Vec3) Vec3 {
	return Vec3{math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])}
}

// Extent is an axis-aligned box expressed in a surface's local frame.
type Extent struct {
	Center Vec3
	Size   Vec3
}

// RectangleExtent computes the box spanned by two surface-local corners.
// The footprint is the component-wise absolute difference; thickness is added
// along the surface normal (local Z) so the box has depth.
func RectangleExtent(start, end Vec3, thickness float64) Extent {
	size := Abs(start.Sub(end))
	size[2] += thickness
	return Extent{
		Center: start.Add(end).Mul(0.5),
		Size:   size,
	}
}

// Empty reports whether the extent's footprint has zero area.
func (e Extent) Empty() bool {
	return e.Size[0] == 0 || e.Size[1] == 0
}

// OrientedBox is a box in world space with its own rotation.
type OrientedBox struct {
	Center      Vec3
	HalfExtents Vec3
	Rotation    Quat
}

// local converts a world point into the box's axis-aligned frame.
func (b OrientedBox) local(p Vec3) Vec3 {
	return b.Rotation.Inverse().Rotate(p.Sub(b.Center))
}

// Contains reports whether p lies inside or on the box.
func (b OrientedBox) Contains(p Vec3) bool {
	l := b.local(p)
	for i := 0; i < 3; i++ {
		if math.Abs(l[i]) > b.HalfExtents[i] {
			return false
		}
	}
	return true
}

// ClosestPoint returns the point of the box nearest to p.
func (b OrientedBox) ClosestPoint(p Vec3) Vec3 {
	l := b.local(p)
	for i := 0; i < 3; i++ {
		l[i] = mgl64.Clamp(l[i], -b.HalfExtents[i], b.HalfExtents[i])
	}
	return b.Center.Add(b.Rotation.Rotate(l))
}

// IntersectsSphere reports whether a sphere touches the box.
func (b OrientedBox) IntersectsSphere(center Vec3, radius float64) bool {
	return b.ClosestPoint(center).Sub(center).Len() <= radius
}

// axes returns the box's world-space unit axes.
func (b OrientedBox) axes() [3]Vec3 {
	return [3]Vec3{
		b.Rotation.Rotate(Vec3{1, 0, 0}),
		b.Rotation.Rotate(Vec3{0, 1, 0}),
		b.Rotation.Rotate(Vec3{0, 0, 1}),
	}
}

// radiusOn returns the half-length of the box's projection onto axis l.
func (b OrientedBox) radiusOn(axes [3]Vec3, l Vec3) float64 {
	r := 0.0
	for i := 0; i < 3; i++ {
		r += math.Abs(axes[i].Dot(l)) * b.HalfExtents[i]
	}
	return r
}

// IntersectsBox reports whether two oriented boxes touch, using the
// separating axis test over face normals and edge cross products.
func (b OrientedBox) IntersectsBox(o OrientedBox) bool {
	a, c := b.axes(), o.axes()
	d := o.Center.Sub(b.Center)
	separated := func(l Vec3) bool {
		return math.Abs(d.Dot(l)) > b.radiusOn(a, l)+o.radiusOn(c, l)
	}
	for i := 0; i < 3; i++ {
		if separated(a[i]) || separated(c[i]) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			l := a[i].Cross(c[j])
			// Parallel edges add nothing the face axes missed.
			if l.Len() < 1e-9 {
				continue
			}
			if separated(l) {
				return false
			}
		}
	}
	return true
}

// Ray is a half-line. Direction is expected to be normalized.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// intersectAABB runs the slab test of a ray against the box [-half, half].
// Returns the entry parameter, or the exit parameter when the origin is
// inside. Direction need not be normalized.
func intersectAABB(origin, dir, half Vec3) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < -half[i] || origin[i] > half[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (-half[i] - origin[i]) * inv
		t2 := (half[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return tMax, true
	}
	return tMin, true
}

// intersectSphere returns the nearest non-negative ray parameter at which the
// ray meets the sphere.
func intersectSphere(r Ray, center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// segmentDistance returns the distance from p to the segment [a, b].
func segmentDistance(p, a, b Vec3) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Len()
	}
	t := mgl64.Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return p.Sub(a.Add(ab.Mul(t))).Len()
}

// TouchpadAngle converts a touchpad or thumbstick axis pair to an angle in
// [0, 360), measured counter-clockwise from the positive X axis.
func TouchpadAngle(x, y float64) float64 {
	a := math.Atan2(y, x) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}
