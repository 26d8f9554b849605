package ranged

import "testing"

func TestCallbackHandleRemove(t *testing.T) {
	c := NewController(Options{})
	c.Enable()

	var a, b int
	ha := c.OnStateChange(func(StateChange) { a++ })
	c.OnStateChange(func(StateChange) { b++ })

	c.SetSelectedTool(ToolRangedBrush)
	ha.Remove()
	c.SetSelectedTool(ToolLassoSelection)

	if a != 1 {
		t.Errorf("removed handler fired %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining handler fired %d times, want 2", b)
	}
	if len(c.handlers.stateChange) != 1 {
		t.Errorf("handlers = %d, want 1", len(c.handlers.stateChange))
	}
}

func TestCallbackHandleRemoveEachEvent(t *testing.T) {
	c := NewController(Options{})
	handles := []CallbackHandle{
		c.OnStateChange(func(StateChange) {}),
		c.OnInteractionStarted(func(Interaction) {}),
		c.OnInteractionFinished(func(Interaction) {}),
		c.OnToolIcon(func(ToolKind) {}),
		c.OnTraceVisibility(func(Visibility) {}),
		c.OnClick(func(*Entity) {}),
		c.OnGrab(func(*Entity) {}),
	}
	for _, h := range handles {
		h.Remove()
		h.Remove() // second removal is a no-op
	}
	r := &c.handlers
	total := len(r.stateChange) + len(r.started) + len(r.finished) +
		len(r.toolIcon) + len(r.trace) + len(r.click) + len(r.grab)
	if total != 0 {
		t.Errorf("%d handlers left after Remove", total)
	}
}

func TestZeroCallbackHandleRemove(t *testing.T) {
	var h CallbackHandle
	h.Remove() // should not panic
}

func TestNoStateChangeWithoutChange(t *testing.T) {
	c := NewController(Options{})
	c.Enable()
	n := 0
	c.OnStateChange(func(StateChange) { n++ })
	c.SetSelectedTool(ToolRangedBrush)
	c.SetSelectedTool(ToolRangedBrush)
	if n != 1 {
		t.Errorf("state changes = %d, want 1", n)
	}
}
