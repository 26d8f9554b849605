package ebitenhost

import (
	"testing"

	"github.com/phanxgames/ranged"
)

type inputFixture struct {
	demo     *ranged.Demo
	rig      *ranged.Rig
	c        *ranged.Controller
	started  int
	finished int
}

func newInputFixture(t *testing.T, tool ranged.ToolKind) *inputFixture {
	t.Helper()
	demo := ranged.BuildDemoScene()
	f := &inputFixture{
		demo: demo,
		rig:  ranged.NewRig(ranged.Vec3{0.05, 1, 0}, ranged.Vec3{0, -1, 0}),
	}
	f.c = ranged.NewController(ranged.Options{
		World:   demo.Scene,
		Stage:   demo.Scene,
		Device:  f.rig,
		Surface: demo.Surface,
	})
	f.c.OnInteractionStarted(func(ranged.Interaction) { f.started++ })
	f.c.OnInteractionFinished(func(ranged.Interaction) { f.finished++ })
	f.c.Enable()
	f.c.SetSelectedTool(tool)
	return f
}

func TestInputApplyEdges(t *testing.T) {
	f := newInputFixture(t, ranged.ToolRangedBrush)
	var in Input

	in.Apply(f.c, Buttons{Trigger: true})
	in.Apply(f.c, Buttons{Trigger: true}) // held, no new edge
	if f.started != 1 {
		t.Errorf("started = %d, want 1", f.started)
	}
	if f.c.Mode() != ranged.ModeSelecting {
		t.Errorf("Mode() = %v, want Selecting", f.c.Mode())
	}
	in.Apply(f.c, Buttons{})
	if f.finished != 1 {
		t.Errorf("finished = %d, want 1", f.finished)
	}
	if f.c.IsPerforming() {
		t.Error("release should end the gesture")
	}
}

func TestInputApplyGrip(t *testing.T) {
	f := newInputFixture(t, ranged.ToolRangedBrush)
	var in Input

	in.Apply(f.c, Buttons{Grip: true})
	if f.c.Mode() != ranged.ModeDeselecting {
		t.Errorf("Mode() = %v, want Deselecting", f.c.Mode())
	}
	in.Apply(f.c, Buttons{})
	if f.c.Mode() != ranged.ModeNone {
		t.Errorf("Mode() after release = %v, want None", f.c.Mode())
	}
}

func TestInputApplyTouchpad(t *testing.T) {
	f := newInputFixture(t, ranged.ToolRangedBrush)
	var in Input

	in.Apply(f.c, Buttons{Trigger: true, Touch: true, TouchAngle: 350})
	if !f.c.Touching() {
		t.Fatal("touch should be down")
	}
	in.Apply(f.c, Buttons{Trigger: true, Touch: true, TouchAngle: 10})
	if got := f.c.Brush().Multiplier; got != 35 {
		t.Errorf("multiplier = %v, want 35", got)
	}
	in.Apply(f.c, Buttons{Trigger: true})
	if f.c.Touching() {
		t.Error("touch should be released")
	}
}

func TestInputWheel(t *testing.T) {
	var in Input

	b := in.wheel(Buttons{}, 0)
	if b.Touch {
		t.Fatal("no wheel movement should not touch")
	}

	b = in.wheel(Buttons{}, 1)
	if !b.Touch || b.TouchAngle != 0 {
		t.Errorf("first notch = %+v, want touch at 0", b)
	}
	b = in.wheel(Buttons{}, -2)
	if !b.Touch || b.TouchAngle != 340 {
		t.Errorf("second notch = %+v, want touch at 340", b)
	}
	// A fast spin can move more than a full turn in one frame.
	if b = in.wheel(Buttons{}, -40); b.TouchAngle != 300 {
		t.Errorf("burst down = %v, want 300", b.TouchAngle)
	}
	if b = in.wheel(Buttons{}, 40); b.TouchAngle != 340 {
		t.Errorf("burst up = %v, want 340", b.TouchAngle)
	}

	for i := 0; i < wheelHoldFrames-1; i++ {
		if b = in.wheel(Buttons{}, 0); !b.Touch {
			t.Fatalf("touch released after %d idle frames", i+1)
		}
	}
	if b = in.wheel(Buttons{}, 0); b.Touch {
		t.Error("touch should release once the hold runs out")
	}
}
