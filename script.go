package ranged

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned by LoadScript for a step whose action is not
// recognized.
var ErrUnknownAction = errors.New("unknown script action")

// ScriptStep is a single action in a scripted session. Fields not used by
// the action are ignored.
type ScriptStep struct {
	Action   string     `json:"action"`
	Label    string     `json:"label,omitempty"`
	Tool     string     `json:"tool,omitempty"`
	Target   [3]float64 `json:"target,omitempty"`
	From     [3]float64 `json:"from,omitempty"`
	To       [3]float64 `json:"to,omitempty"`
	Position [3]float64 `json:"position,omitempty"`
	Angle    float64    `json:"angle,omitempty"`
	Frames   int        `json:"frames,omitempty"`
}

// Script is the top-level JSON structure of a scripted session.
type Script struct {
	Steps []ScriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"tool":         true,
	"enable":       true,
	"disable":      true,
	"hide":         true,
	"show":         true,
	"aim":          true,
	"sweep":        true,
	"move":         true,
	"trigger_down": true,
	"trigger_up":   true,
	"grip_down":    true,
	"grip_up":      true,
	"touch":        true,
	"touch_up":     true,
	"wait":         true,
}

// LoadScript parses and checks a JSON script. Tool names are resolved up
// front so a bad script fails before it drives a controller.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		st.Action = strings.ToLower(st.Action)
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: %w: %q", i, ErrUnknownAction, st.Action)
		}
		if st.Action == "tool" {
			if _, err := ParseToolKind(st.Tool); err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
		}
	}
	return &s, nil
}

func vec(a [3]float64) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// sweepAims returns the aim points of a sweep from `from` to `to` over
// frames frames, both ends included. Minimum frames is 2.
func sweepAims(from, to Vec3, frames int) []Vec3 {
	if frames < 2 {
		frames = 2
	}
	aims := make([]Vec3, frames)
	for i := range aims {
		t := float64(i) / float64(frames-1)
		aims[i] = Lerp(from, to, t)
	}
	return aims
}
