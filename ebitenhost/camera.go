package ebitenhost

import (
	"math"

	"github.com/phanxgames/ranged"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Z.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenZ *gween.Tween
	doneX  bool
	doneZ  bool
}

// Camera is a top-down orthographic view of the world's XZ plane. Screen Y
// grows with world Z, so the far side of the table is drawn at the top.
type Camera struct {
	// X and Z are the world-space ground position the camera centers on.
	X, Z float64
	// Zoom is pixels per world unit.
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport ranged.Rect

	// MinZoom and MaxZoom bound ZoomBy.
	MinZoom, MaxZoom float64

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on the world origin.
func NewCamera(viewport ranged.Rect, zoom float64) *Camera {
	return &Camera{
		Zoom:     zoom,
		Viewport: viewport,
		MinZoom:  zoom / 4,
		MaxZoom:  zoom * 4,
		dirty:    true,
	}
}

// SetViewport resizes the viewport, keeping the center and zoom.
func (c *Camera) SetViewport(r ranged.Rect) {
	if c.Viewport != r {
		c.Viewport = r
		c.dirty = true
	}
}

// ScrollTo animates the camera to the given ground position over duration
// seconds.
func (c *Camera) ScrollTo(x, z float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenZ: gween.New(float32(c.Z), float32(z), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// ZoomBy multiplies the zoom by f, clamped to [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(f float64) {
	z := math.Max(c.MinZoom, math.Min(c.Zoom*f, c.MaxZoom))
	if z != c.Zoom {
		c.Zoom = z
		c.dirty = true
	}
}

// Update advances the scroll animation.
func (c *Camera) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneZ {
		val, done := c.scrollTween.tweenZ.Update(dt)
		c.Z = float64(val)
		c.scrollTween.doneZ = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneZ {
		c.scrollTween = nil
	}
	c.dirty = true
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Z)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Z)
	ty := cy + z*(-sin*c.X-cos*c.Z)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen projects a world point straight down onto the screen.
func (c *Camera) WorldToScreen(p ranged.Vec3) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, p[0], p[2])
}

// ScreenToGround returns the ground-plane (x, z) under a screen point.
func (c *Camera) ScreenToGround(sx, sy float64) (x, z float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// changing X, Z or Rotation directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// Pixels converts a world length to screen pixels.
func (c *Camera) Pixels(length float64) float64 {
	return length * c.Zoom
}

// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// x' = a*x + c*y + tx, y' = b*x + d*y + ty
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func invertAffine(m [6]float64) [6]float64 {
	a, b, c, d, tx, ty := m[0], m[1], m[2], m[3], m[4], m[5]
	det := a*d - b*c
	if det == 0 {
		return [6]float64{1, 0, 0, 1, 0, 0}
	}
	inv := 1 / det
	return [6]float64{
		d * inv,
		-b * inv,
		-c * inv,
		a * inv,
		(c*ty - d*tx) * inv,
		(b*tx - a*ty) * inv,
	}
}
