package ranged

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an Entity simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenColor) and call Update(dt) each frame. If the target entity is
// disposed, the group stops immediately.
//
// The controller advances the tweens it starts from Tick; groups created by
// callers are updated by the caller.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Entity
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target entity has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates the entity's local
// Position to the given target over the specified duration using the easing
// function.
func TweenPosition(e *Entity, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: e}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(e.Position[i]), float32(to[i]), duration, fn)
		g.fields[i] = &e.Position[i]
	}
	return g
}

// TweenScale creates a TweenGroup that animates the entity's Scale to the
// given target over the specified duration using the easing function.
func TweenScale(e *Entity, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: e}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(e.Scale[i]), float32(to[i]), duration, fn)
		g.fields[i] = &e.Scale[i]
	}
	return g
}

// TweenColor creates a TweenGroup that animates all four components of
// e.Color (R, G, B, A) to the target color over the specified duration.
func TweenColor(e *Entity, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: e}
	g.tweens[0] = gween.New(float32(e.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(e.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(e.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(e.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &e.Color.R
	g.fields[1] = &e.Color.G
	g.fields[2] = &e.Color.B
	g.fields[3] = &e.Color.A
	return g
}
