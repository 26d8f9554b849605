package ranged

import "go.uber.org/zap"

// LassoState is a snapshot of the lasso being drawn.
type LassoState struct {
	Path        []Vec3
	PastInitial bool
	Complete    bool
	Boundary    BoundaryMesh
}

// Lasso returns the lasso snapshot, or false when no lasso is being drawn.
func (c *Controller) Lasso() (LassoState, bool) {
	g, ok := c.gesture.(*lassoGesture)
	if !ok {
		return LassoState{}, false
	}
	st := LassoState{
		Path:        append([]Vec3(nil), g.path...),
		PastInitial: g.pastInitial,
		Complete:    g.complete,
	}
	if g.boundary != nil {
		st.Boundary = g.boundary.Boundary
	}
	return st, true
}

type lassoGesture struct {
	surface     *Entity
	path        []Vec3
	pastInitial bool
	complete    bool

	line     *Entity
	boundary *Entity
}

func (c *Controller) startLasso() {
	g := &lassoGesture{surface: c.surface}
	g.line = NewLine("lasso-path", c.cfg.Lasso.Width)
	g.line.Layer = LayerIgnoreRaycast
	g.line.Color = c.cfg.Lasso.DrawColor
	c.stage.Spawn(nil, g.line)
	c.begin(g)
}

func (g *lassoGesture) state() InteractionState { return StateLassoSelecting }

func (g *lassoGesture) tick(c *Controller) {
	if g.complete {
		return
	}
	hit, ok := c.raycast()
	if !ok || !c.isSurface(hit.Entity) {
		return
	}
	if g.surface == nil {
		g.surface = hit.Entity
	}
	if hit.Entity != g.surface {
		return
	}

	cfg := c.cfg.Lasso
	p := hit.Point
	if n := len(g.path); n == 0 || p.Sub(g.path[n-1]).Len() >= cfg.SampleInterval {
		g.path = append(g.path, p)
		g.line.Points = g.path
		c.haptics.Pulse(cfg.SamplePulse)
		g.rebuild(c)
	}

	d := p.Sub(g.path[0]).Len()
	if !g.pastInitial {
		if d > cfg.InitialDistance {
			g.pastInitial = true
		}
	} else if d <= cfg.CompleteDistance {
		g.complete = true
		g.line.Color = cfg.CompleteColor
		g.boundary.Color = cfg.CompleteColor
		g.boundary.Boundary.Closed = true
		c.log.Debug("lasso closed",
			zap.String("gesture", c.press.ID),
			zap.Int("points", len(g.path)))
	}
}

// rebuild retriangulates the boundary from the path in the surface's frame.
func (g *lassoGesture) rebuild(c *Controller) {
	if g.boundary == nil {
		g.boundary = NewBoundary("lasso-boundary")
		g.boundary.Layer = LayerIgnoreRaycast
		g.boundary.Color = c.cfg.Lasso.DrawColor
		c.stage.Spawn(g.surface, g.boundary)
	}
	g.boundary.Boundary = BuildBoundary(ProjectToSurface(g.surface, g.path), false)
}

// resolve returns the eligible entities whose projection falls inside the
// closed path, plus any shape touching a path sample.
func (g *lassoGesture) resolve(c *Controller) []*Entity {
	project := g.surface.PlaneProjector()
	polygon := ProjectToSurface(g.surface, g.path)
	var out []*Entity
	for _, e := range c.world.Eligible() {
		if ContainsPoint(polygon, project(e.WorldPosition())) {
			out = append(out, e)
		}
	}
	for _, p := range g.path {
		out = append(out, c.world.OverlapSphere(p, c.cfg.Lasso.EdgeRadius, TagShape)...)
	}
	return out
}

func (g *lassoGesture) end(c *Controller) {
	if g.complete {
		c.deliver(g.resolve(c))
	}
	g.teardown(c)
	c.setIdle(c.tool)
}

func (g *lassoGesture) cancel(c *Controller) {
	g.teardown(c)
}

func (g *lassoGesture) teardown(c *Controller) {
	c.stage.Despawn(g.line)
	if g.boundary != nil {
		c.stage.Despawn(g.boundary)
	}
	g.line, g.boundary = nil, nil
}
