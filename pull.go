package ranged

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// PullState is a snapshot of a ranged interaction.
type PullState struct {
	Phase    InteractionState
	Target   *Entity
	Distance float64
	// Restore is the tool the controller returns to when the interaction ends.
	Restore ToolKind
}

// Pull returns the ranged interaction snapshot, or false when none runs.
func (c *Controller) Pull() (PullState, bool) {
	g, ok := c.gesture.(*interactionGesture)
	if !ok {
		return PullState{}, false
	}
	return PullState{
		Phase:    g.phase,
		Target:   g.target,
		Distance: g.distance,
		Restore:  g.restore,
	}, true
}

type interactionGesture struct {
	phase   InteractionState
	target  *Entity
	restore ToolKind

	// UI press: clicks on release over the same entity.
	ui bool

	pullable        bool
	controllerStart Vec3
	targetStart     Vec3 // world
	targetLocal     Vec3 // local position to return to on cancel
	distance        float64
}

// startInteraction begins ranged interaction with a UI element or a
// pullable entity. Anything else is ignored.
func (c *Controller) startInteraction(hit Hit, ok bool) {
	if !ok {
		return
	}
	e := hit.Entity
	g := &interactionGesture{phase: StateRangedInteracting, target: e, restore: c.tool}
	switch {
	case e.Tag.IsUI():
		g.ui = true
	case e.Tag == TagPullable:
		g.pullable = true
		c.stopTweens(e)
		g.controllerStart = c.device.Pose().Position
		g.targetStart = e.WorldPosition()
		g.targetLocal = e.Position
	default:
		return
	}
	c.begin(g)
}

func (g *interactionGesture) state() InteractionState { return g.phase }

// measure returns the controller's displacement since the press and pulses
// proportionally to it.
func (g *interactionGesture) measure(c *Controller, pos Vec3) float64 {
	cfg := c.cfg.Pull
	d := pos.Sub(g.controllerStart).Len()
	g.distance = d
	c.haptics.Pulse(HapticPulse{Strength: cfg.HapticScale * d / cfg.CompleteThreshold})
	return d
}

func (g *interactionGesture) tick(c *Controller) {
	cfg := c.cfg.Pull
	switch g.phase {
	case StateRangedInteracting:
		if !g.pullable {
			return
		}
		if d := g.measure(c, c.device.Pose().Position); d > cfg.StartThreshold {
			g.pullable = false
			g.phase = StateRangedPulling
			c.notifyState()
		}
	case StateRangedPulling:
		pos := c.device.Pose().Position
		d := g.measure(c, pos)
		if d >= cfg.CompleteThreshold {
			g.complete(c, pos)
			return
		}
		g.target.SetWorldPosition(Lerp(g.targetStart, pos, d/cfg.CompleteThreshold))
	}
}

// complete snaps the target to the controller and hands it to the host.
func (g *interactionGesture) complete(c *Controller, pos Vec3) {
	c.stopTweens(g.target)
	g.target.SetWorldPosition(pos)
	c.gesture = nil
	c.log.Info("pull completed",
		zap.String("gesture", c.press.ID),
		zap.String("target", g.target.Name))
	fire(c.handlers.grab, g.target)
	c.setIdle(g.restore)
}

func (g *interactionGesture) end(c *Controller) {
	if g.ui {
		if hit, ok := c.raycast(); ok && hit.Entity == g.target {
			c.log.Debug("ui element clicked", zap.String("entity", g.target.Name))
			fire(c.handlers.click, g.target)
		}
	}
	if g.phase == StateRangedPulling {
		g.returnTarget(c)
	}
	g.pullable = false
	c.setIdle(g.restore)
}

func (g *interactionGesture) cancel(c *Controller) {
	if g.phase == StateRangedPulling {
		g.returnTarget(c)
	}
}

// returnTarget eases the released target back to where the pull began.
func (g *interactionGesture) returnTarget(c *Controller) {
	dur := c.cfg.Pull.ReturnDuration
	if dur <= 0 || g.target.IsDisposed() {
		g.target.Position = g.targetLocal
		return
	}
	c.tweens = append(c.tweens, TweenPosition(g.target, g.targetLocal, float32(dur), ease.OutCirc))
}
