package ebitenhost

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ranged"
)

const dt = 1.0 / 60

type recordingHaptics struct {
	pulses []ranged.HapticPulse
}

func (r *recordingHaptics) Pulse(p ranged.HapticPulse) {
	r.pulses = append(r.pulses, p)
}

func newTestGame(t *testing.T, tool ranged.ToolKind) (*Game, *recordingHaptics) {
	t.Helper()
	h := &recordingHaptics{}
	g := NewGame(Options{Config: ranged.DefaultConfig(), Tool: tool, Haptics: h})
	g.Layout(960, 640)
	return g, h
}

// click presses and releases the trigger over a world point.
func (g *Game) clickAt(p ranged.Vec3) {
	sx, sy := g.cam.WorldToScreen(p)
	g.step(Buttons{}, sx, sy, dt)
	g.step(Buttons{Trigger: true}, sx, sy, dt)
	g.step(Buttons{}, sx, sy, dt)
}

func TestGameBrushSelectsUnderCursor(t *testing.T) {
	g, _ := newTestGame(t, ranged.ToolRangedBrush)
	g.clickAt(g.demo.ShapePosition(0))

	if diff := cmp.Diff([]int{0}, g.Selection().Selected()); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
	if !g.demo.Shapes[0].Selected {
		t.Error("shape 0 should be flagged selected")
	}
}

func TestGameCursorFollowsScreen(t *testing.T) {
	g, _ := newTestGame(t, ranged.ToolNone)
	p := ranged.Vec3{0.3, 0, -0.2}
	sx, sy := g.cam.WorldToScreen(p)
	g.step(Buttons{}, sx, sy, dt)

	pose := g.rig.Pose()
	if d := pose.Origin.Sub(ranged.Vec3{0.3, hoverHeight, -0.2}).Len(); d > 1e-9 {
		t.Errorf("rig origin = %v, want above (0.3, -0.2)", pose.Origin)
	}
	if pose.Forward != (ranged.Vec3{0, -1, 0}) {
		t.Errorf("rig forward = %v, want straight down", pose.Forward)
	}
}

func TestGameClickFlash(t *testing.T) {
	g, _ := newTestGame(t, ranged.ToolRangedBrush)
	button := g.demo.Button
	base := button.Color

	g.clickAt(button.WorldPosition())
	if len(g.tweens) != 1 {
		t.Fatal("click should start a flash tween")
	}
	for i := 0; i < 60; i++ {
		g.step(Buttons{}, 0, 0, dt)
	}
	if len(g.tweens) != 0 {
		t.Errorf("%d tweens left, want 0", len(g.tweens))
	}
	if diff := cmp.Diff(base, button.Color, cmp.Comparer(func(a, b float64) bool {
		return a-b < 1e-3 && b-a < 1e-3
	})); diff != "" {
		t.Errorf("button color not restored (-want +got):\n%s", diff)
	}
	if g.ctrl.Tool() != ranged.ToolRangedBrush {
		t.Errorf("Tool() = %v, want the brush restored", g.ctrl.Tool())
	}
}

func TestGameApplyConfigs(t *testing.T) {
	ch := make(chan ranged.Config, 2)
	g := NewGame(Options{Configs: ch})

	good := ranged.DefaultConfig()
	good.Brush.Max = 0.09
	bad := ranged.DefaultConfig()
	bad.Brush.Min = 1
	ch <- good
	ch <- bad
	g.applyConfigs()

	if got := g.ctrl.Config().Brush.Max; got != 0.09 {
		t.Errorf("Brush.Max = %v, want 0.09", got)
	}
	if got := g.ctrl.Config().Brush.Min; got == 1 {
		t.Error("invalid config should be rejected")
	}

	close(ch)
	g.applyConfigs()
	if g.configs != nil {
		t.Error("closed channel should stop reloading")
	}
}

func TestGameHandleKey(t *testing.T) {
	g, _ := newTestGame(t, ranged.ToolNone)

	g.handleKey(ebiten.KeyDigit2)
	if g.ctrl.Tool() != ranged.ToolLassoSelection {
		t.Errorf("Tool() = %v, want lasso", g.ctrl.Tool())
	}
	g.handleKey(ebiten.KeyH)
	if !g.ctrl.Hidden() {
		t.Error("H should hide the controller")
	}
	g.handleKey(ebiten.KeyH)
	if g.ctrl.Hidden() || g.ctrl.Tool() != ranged.ToolLassoSelection {
		t.Error("second H should restore the lasso")
	}
	g.handleKey(ebiten.KeyE)
	if g.ctrl.Enabled() {
		t.Error("E should disable the controller")
	}
	g.handleKey(ebiten.KeyC)
	if !g.cam.Scrolling() {
		t.Error("C should scroll the camera home")
	}
	if err := g.handleKey(ebiten.KeyEscape); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Escape = %v, want ebiten.Termination", err)
	}
}

func TestGameHapticsFanout(t *testing.T) {
	g, h := newTestGame(t, ranged.ToolRangedBrush)
	sx, sy := g.cam.WorldToScreen(g.demo.ShapePosition(0))
	g.step(Buttons{Trigger: true}, sx, sy, dt)
	n := len(h.pulses)
	// Switching tools mid-gesture is refused with a warning pulse.
	g.handleKey(ebiten.KeyDigit2)
	if len(h.pulses) != n+1 {
		t.Error("extra haptics should receive the warning pulse")
	}
}
