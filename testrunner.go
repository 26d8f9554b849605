package ranged

import (
	"errors"

	"go.uber.org/zap"
)

// ErrScriptTimeout is returned by Runner.Run when the script has not
// finished within the frame limit.
var ErrScriptTimeout = errors.New("script did not finish")

// Runner sequences a Script against a controller and the rig it reads its
// pose from, one step per frame. Sweeps queue one aim per frame; the runner
// waits for them to drain before advancing.
type Runner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	aims      []Vec3
	frames    int
	done      bool
}

// NewRunner creates a runner for s.
func NewRunner(s *Script) *Runner {
	return &Runner{steps: s.Steps}
}

// Done reports whether all steps have been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Frames returns the number of frames stepped so far.
func (r *Runner) Frames() int {
	return r.frames
}

// Step advances the runner by one frame, then ticks the controller by dt.
func (r *Runner) Step(c *Controller, rig *Rig, dt float64) {
	r.frames++
	r.advance(c, rig)
	if len(r.aims) > 0 {
		rig.AimAt(r.aims[0])
		r.aims = r.aims[1:]
	}
	c.Tick(dt)
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.aims) == 0 {
		r.done = true
	}
}

// Run steps until the script is done or maxFrames frames have elapsed.
func (r *Runner) Run(c *Controller, rig *Rig, dt float64, maxFrames int) error {
	for i := 0; i < maxFrames; i++ {
		if r.done {
			return nil
		}
		r.Step(c, rig, dt)
	}
	if !r.done {
		return ErrScriptTimeout
	}
	return nil
}

func (r *Runner) advance(c *Controller, rig *Rig) {
	if r.done {
		return
	}
	// Wait for pending sweep aims to drain before advancing.
	if len(r.aims) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	c.log.Debug("script step",
		zap.Int("step", r.cursor-1),
		zap.String("action", st.Action),
		zap.String("label", st.Label))

	switch st.Action {
	case "tool":
		if _, err := c.SetSelectedToolName(st.Tool); err != nil {
			c.log.Warn("script tool rejected", zap.Error(err))
		}
	case "enable":
		c.Enable()
	case "disable":
		c.Disable()
	case "hide":
		c.Hide()
	case "show":
		c.Show()
	case "aim":
		rig.AimAt(vec(st.Target))
	case "sweep":
		r.aims = sweepAims(vec(st.From), vec(st.To), st.Frames)
	case "move":
		rig.MoveTo(vec(st.Position))
	case "trigger_down":
		c.TriggerDown()
	case "trigger_up":
		c.TriggerUp()
	case "grip_down":
		c.GripDown()
	case "grip_up":
		c.GripUp()
	case "touch":
		if c.Touching() {
			c.TouchpadAxis(st.Angle)
		} else {
			c.TouchpadDown(st.Angle)
		}
	case "touch_up":
		c.TouchpadUp()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
