package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ranged"
)

// GamepadHaptics plays pulses on the gamepad Input last polled. Pulses are
// dropped when no standard-layout gamepad is connected.
type GamepadHaptics struct {
	Input *Input
}

// Pulse implements ranged.Haptics.
func (h GamepadHaptics) Pulse(p ranged.HapticPulse) {
	if h.Input == nil {
		return
	}
	id, ok := h.Input.Gamepad()
	if !ok {
		return
	}
	ebiten.VibrateGamepad(id, vibrateOptions(p))
}

func vibrateOptions(p ranged.HapticPulse) *ebiten.VibrateGamepadOptions {
	s := min(max(p.Strength, 0), 1)
	return &ebiten.VibrateGamepadOptions{
		Duration:        time.Duration(p.Duration * float64(time.Second)),
		StrongMagnitude: s,
		WeakMagnitude:   s / 2,
	}
}

// Fanout sends every pulse to each of its haptics in order.
type Fanout []ranged.Haptics

// Pulse implements ranged.Haptics.
func (f Fanout) Pulse(p ranged.HapticPulse) {
	for _, h := range f {
		if h != nil {
			h.Pulse(p)
		}
	}
}
