package ebitenhost

import (
	"testing"
	"time"

	"github.com/phanxgames/ranged"
)

func TestVibrateOptions(t *testing.T) {
	tests := []struct {
		name   string
		pulse  ranged.HapticPulse
		dur    time.Duration
		strong float64
	}{
		{"warning", ranged.HapticPulse{Strength: 0.75, Duration: 0.05}, 50 * time.Millisecond, 0.75},
		{"clamped high", ranged.HapticPulse{Strength: 3, Duration: 0.1}, 100 * time.Millisecond, 1},
		{"clamped low", ranged.HapticPulse{Strength: -1, Duration: 0}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := vibrateOptions(tt.pulse)
			if op.Duration != tt.dur {
				t.Errorf("Duration = %v, want %v", op.Duration, tt.dur)
			}
			if op.StrongMagnitude != tt.strong {
				t.Errorf("StrongMagnitude = %v, want %v", op.StrongMagnitude, tt.strong)
			}
			if op.WeakMagnitude != tt.strong/2 {
				t.Errorf("WeakMagnitude = %v, want %v", op.WeakMagnitude, tt.strong/2)
			}
		})
	}
}

func TestGamepadHapticsWithoutGamepad(t *testing.T) {
	// Neither call should reach the vibration backend.
	GamepadHaptics{}.Pulse(ranged.HapticPulse{Strength: 1, Duration: 0.1})
	GamepadHaptics{Input: &Input{}}.Pulse(ranged.HapticPulse{Strength: 1, Duration: 0.1})
}

func TestFanout(t *testing.T) {
	a, b := &recordingHaptics{}, &recordingHaptics{}
	f := Fanout{a, nil, b}
	p := ranged.HapticPulse{Strength: 0.5, Duration: 0.01}
	f.Pulse(p)
	if len(a.pulses) != 1 || len(b.pulses) != 1 || a.pulses[0] != p {
		t.Errorf("fanout delivered a=%v b=%v, want one pulse each", a.pulses, b.pulses)
	}
}
