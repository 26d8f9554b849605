package ranged

import "go.uber.org/zap"

// RectangleState is a snapshot of the rectangle being dragged.
type RectangleState struct {
	Surface *Entity
	Start   Vec3
	End     Vec3
	// Extent is the box in the surface's local frame. Zero until the pointer
	// has crossed the surface once.
	Extent Extent
	Shown  bool
}

// Rectangle returns the rectangle snapshot, or false when no rectangle is
// being dragged.
func (c *Controller) Rectangle() (RectangleState, bool) {
	g, ok := c.gesture.(*rectangleGesture)
	if !ok {
		return RectangleState{}, false
	}
	return RectangleState{
		Surface: g.surface,
		Start:   g.start,
		End:     g.current,
		Extent:  g.extent,
		Shown:   g.box != nil,
	}, true
}

type rectangleGesture struct {
	surface *Entity
	start   Vec3
	current Vec3
	extent  Extent
	box     *Entity
}

// startRectangle begins a rectangle only on the surface or a shape.
func (c *Controller) startRectangle(hit Hit, ok bool) {
	if !ok {
		return
	}
	if !c.isSurface(hit.Entity) && hit.Entity.Tag != TagShape {
		return
	}
	surface := c.frameFor(hit.Entity)
	if surface == nil {
		c.log.Debug("rectangle start ignored, no surface frame",
			zap.String("entity", hit.Entity.Name))
		return
	}
	c.begin(&rectangleGesture{surface: surface, start: hit.Point, current: hit.Point})
}

func (g *rectangleGesture) state() InteractionState { return StateRectangleSelecting }

func (g *rectangleGesture) tick(c *Controller) {
	hit, ok := c.raycast()
	if !ok || hit.Entity != g.surface {
		return
	}
	if g.box == nil {
		g.box = NewBox("rectangle-selection", Vec3{0.5, 0.5, 0.5})
		g.box.Layer = LayerIgnoreRaycast
		g.box.Color = c.cfg.Rectangle.Color
		g.box.Width = c.cfg.Rectangle.Width
		c.stage.Spawn(g.surface, g.box)
	}
	g.current = hit.Point
	g.extent = RectangleExtent(
		g.surface.WorldToLocal(g.start),
		g.surface.WorldToLocal(g.current),
		c.cfg.Rectangle.Thickness,
	)
	g.box.Position = g.extent.Center
	g.box.Scale = g.extent.Size
	g.box.Rotation = QuatIdent()
}

// selectionBox returns the world box that is tested against shapes, grown
// by the configured margin along the surface normal.
func (g *rectangleGesture) selectionBox(margin float64) OrientedBox {
	ws := Abs(g.surface.WorldScale())
	size := g.extent.Size
	half := Vec3{size[0] * ws[0] / 2, size[1] * ws[1] / 2, size[2] * ws[2] / 2}
	half[2] += margin
	return OrientedBox{
		Center:      g.surface.LocalToWorld(g.extent.Center),
		HalfExtents: half,
		Rotation:    g.surface.WorldRotation(),
	}
}

func (g *rectangleGesture) end(c *Controller) {
	if g.box != nil && !g.extent.Empty() {
		box := g.selectionBox(c.cfg.Rectangle.Margin)
		c.deliver(c.world.OverlapBox(box, TagShape))
	}
	g.teardown(c)
	c.setIdle(c.tool)
}

func (g *rectangleGesture) cancel(c *Controller) {
	g.teardown(c)
}

func (g *rectangleGesture) teardown(c *Controller) {
	if g.box != nil {
		c.stage.Despawn(g.box)
		g.box = nil
	}
}
