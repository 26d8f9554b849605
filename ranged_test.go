package ranged

import (
	"errors"
	"testing"
)

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 45, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside top", 50, 19, false},
		{"outside bottom", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// --- Vec2 ---

func TestVec2Cross(t *testing.T) {
	if got := (Vec2{1, 0}).Cross(Vec2{0, 1}); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := (Vec2{0, 1}).Cross(Vec2{1, 0}); got != -1 {
		t.Errorf("Cross = %v, want -1", got)
	}
	if got := (Vec2{3, 4}).Sub(Vec2{1, 1}); got != (Vec2{2, 3}) {
		t.Errorf("Sub = %v, want {2 3}", got)
	}
}

// --- Tags and layers ---

func TestTagIsUI(t *testing.T) {
	tests := []struct {
		tag  Tag
		want bool
	}{
		{TagNone, false},
		{TagShape, false},
		{TagSurface, false},
		{TagUIElement, true},
		{TagUIAxisElement, true},
		{TagPullable, false},
	}
	for _, tt := range tests {
		if got := tt.tag.IsUI(); got != tt.want {
			t.Errorf("%v.IsUI() = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestLayerMask(t *testing.T) {
	m := MaskOf(LayerIgnoreRaycast, 5)
	if !m.Has(LayerIgnoreRaycast) || !m.Has(5) {
		t.Errorf("mask %b missing layers", m)
	}
	if m.Has(LayerDefault) {
		t.Error("mask should not contain the default layer")
	}
	got := m.Layers()
	if len(got) != 2 || got[0] != 2 || got[1] != 5 {
		t.Errorf("Layers() = %v, want [2 5]", got)
	}
	if MaskOf().Layers() != nil {
		t.Error("empty mask should have no layers")
	}
}

// --- Enums ---

func TestEnumValues(t *testing.T) {
	if ToolNone != 0 {
		t.Error("ToolNone should be 0")
	}
	if StateNone != 0 {
		t.Error("StateNone should be 0")
	}
	if ModeNone != 0 {
		t.Error("ModeNone should be 0")
	}
	if VisibilityAlwaysOff != 0 {
		t.Error("VisibilityAlwaysOff should be 0")
	}
}

func TestStateNames(t *testing.T) {
	tests := []struct {
		state InteractionState
		want  string
	}{
		{StateNone, "None"},
		{StateRangedBrush, "RangedBrush"},
		{StateRangedBrushing, "RangedBrushing"},
		{StateLassoSelection, "LassoSelection"},
		{StateLassoSelecting, "LassoSelecting"},
		{StateRectangleSelection, "RectangleSelection"},
		{StateRectangleSelecting, "RectangleSelecting"},
		{StateRangedInteraction, "RangedInteraction"},
		{StateRangedInteracting, "RangedInteracting"},
		{StateRangedPulling, "RangedPulling"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsPerforming(t *testing.T) {
	performing := map[InteractionState]bool{
		StateRangedBrushing:     true,
		StateLassoSelecting:     true,
		StateRectangleSelecting: true,
		StateRangedInteracting:  true,
		StateRangedPulling:      true,
	}
	for s := StateNone; s <= StateRangedPulling; s++ {
		if got := s.IsPerforming(); got != performing[s] {
			t.Errorf("%v.IsPerforming() = %v, want %v", s, got, performing[s])
		}
	}
}

func TestParseToolKind(t *testing.T) {
	tests := []struct {
		name string
		want ToolKind
	}{
		{"none", ToolNone},
		{"RangedBrush", ToolRangedBrush},
		{"LASSOSELECTION", ToolLassoSelection},
		{" rectangleselection ", ToolRectangleSelection},
		{"rangedInteraction", ToolRangedInteraction},
	}
	for _, tt := range tests {
		got, err := ParseToolKind(tt.name)
		if err != nil {
			t.Errorf("ParseToolKind(%q) error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseToolKind(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseToolKind("paintbucket"); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("ParseToolKind(paintbucket) error = %v, want ErrUnknownTool", err)
	}
}

func TestToolKindRoundTrip(t *testing.T) {
	for k := ToolNone; k <= ToolRangedInteraction; k++ {
		got, err := ParseToolKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseToolKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
}

func TestColorWhite(t *testing.T) {
	if ColorWhite != (Color{1, 1, 1, 1}) {
		t.Errorf("ColorWhite = %v, want {1 1 1 1}", ColorWhite)
	}
}

func BenchmarkRectContains(b *testing.B) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	for i := 0; i < b.N; i++ {
		r.Contains(50, 40)
	}
}
