package ranged

import (
	"errors"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "enable"},
			{"action": "tool", "tool": "LassoSelection"},
			{"action": "aim", "target": [0.1, 0.01, 0]},
			{"action": "Trigger_Down", "label": "press"},
			{"action": "sweep", "from": [0.1, 0.01, 0], "to": [0.2, 0.01, 0], "frames": 5},
			{"action": "wait", "frames": 3}
		]
	}`)

	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(s.Steps))
	}
	if s.Steps[1].Tool != "LassoSelection" {
		t.Error("step 1 mismatch")
	}
	if s.Steps[2].Target != [3]float64{0.1, 0.01, 0} {
		t.Errorf("step 2 target = %v", s.Steps[2].Target)
	}
	if s.Steps[3].Action != "trigger_down" || s.Steps[3].Label != "press" {
		t.Errorf("step 3 = %+v, want lower-cased trigger_down", s.Steps[3])
	}
	if s.Steps[4].Frames != 5 || s.Steps[4].To[0] != 0.2 {
		t.Error("step 4 mismatch")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{"invalid json", `not json`, nil},
		{"empty steps", `{"steps": []}`, nil},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, ErrUnknownAction},
		{"unknown tool", `{"steps": [{"action": "tool", "tool": "hammer"}]}`, ErrUnknownTool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestSweepAims(t *testing.T) {
	aims := sweepAims(Vec3{0, 0, 0}, Vec3{4, 0, 0}, 5)
	if len(aims) != 5 {
		t.Fatalf("len = %d, want 5", len(aims))
	}
	for i, a := range aims {
		if a[0] != float64(i) {
			t.Errorf("aims[%d] = %v, want x=%d", i, a, i)
		}
	}
	if got := sweepAims(Vec3{}, Vec3{1, 1, 1}, 0); len(got) != 2 {
		t.Errorf("minimum sweep = %d aims, want 2", len(got))
	}
}
