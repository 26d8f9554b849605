package ranged

import "go.uber.org/zap"

// BrushExtent is the brush size, kept as a base scale times a multiplier
// that the touchpad adjusts.
type BrushExtent struct {
	Scale      float64
	Multiplier float64
}

// Size returns the brush diameter.
func (b BrushExtent) Size() float64 {
	return b.Scale * b.Multiplier
}

// Adjust adds delta*factor to the multiplier. When the resulting size falls
// outside [min, max] the change is rolled back and Adjust returns false.
func (b *BrushExtent) Adjust(delta, factor, min, max float64) bool {
	next := b.Multiplier + delta*factor
	size := b.Scale * next
	if size < min || size > max {
		return false
	}
	b.Multiplier = next
	return true
}

// BrushState is a snapshot of the brush.
type BrushState struct {
	Size       float64
	Multiplier float64
	Visible    bool
	Position   Vec3
	Valid      bool
	Color      Color
}

// Brush returns the brush snapshot. The brush persists across activations.
func (c *Controller) Brush() BrushState {
	return BrushState{
		Size:       c.brush.Size(),
		Multiplier: c.brush.Multiplier,
		Visible:    c.brushViz.Visible,
		Position:   c.brushViz.WorldPosition(),
		Valid:      c.brushViz.Color == c.cfg.Brush.ValidColor,
		Color:      c.brushViz.Color,
	}
}

// BrushEntity returns the brush visual.
func (c *Controller) BrushEntity() *Entity {
	return c.brushViz
}

func (c *Controller) resizeBrush() {
	s := c.brush.Size()
	c.brushViz.Scale = Vec3{s, s, s}
}

type brushGesture struct {
	last   Vec3
	placed bool
}

func (c *Controller) startBrush() {
	c.begin(&brushGesture{})
}

func (g *brushGesture) state() InteractionState { return StateRangedBrushing }

func (g *brushGesture) tick(c *Controller) {
	hit, ok := c.raycast()
	viz := c.brushViz
	if ok {
		viz.Visible = true
		if c.cfg.Brush.SweepCapture {
			g.capture(c, hit.Point)
		}
		viz.SetWorldPosition(hit.Point)
		g.last = hit.Point
		g.placed = true
	} else {
		viz.Visible = false
		g.placed = false
	}
	if c.validity(hit, ok) {
		viz.Color = c.cfg.Brush.ValidColor
	} else {
		viz.Color = c.cfg.Brush.InvalidColor
	}
}

// capture selects the shapes swept by the brush between its previous and
// new position whose state differs from the press's mode.
func (g *brushGesture) capture(c *Controller, to Vec3) {
	from := to
	if g.placed {
		from = g.last
	}
	radius := c.brush.Size() / 2
	var pending []*Entity
	for _, e := range c.world.SweepSphere(from, to, radius, TagShape) {
		if (c.mode == ModeSelecting && !e.Selected) || (c.mode == ModeDeselecting && e.Selected) {
			pending = append(pending, e)
		}
	}
	if len(pending) == 0 {
		return
	}
	c.haptics.Pulse(c.cfg.Brush.CapturePulse)
	c.log.Debug("brush captured shapes", zap.Int("count", len(pending)))
	c.deliver(pending)
}

func (g *brushGesture) end(c *Controller) {
	c.brushViz.Visible = false
	c.setIdle(c.tool)
}

func (g *brushGesture) cancel(c *Controller) {
	c.brushViz.Visible = false
}
