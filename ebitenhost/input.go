package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ranged"
)

const (
	// stickDeadZone is the right-stick deflection below which the virtual
	// touchpad is considered released.
	stickDeadZone = 0.5
	// wheelDegrees is the touchpad rotation per mouse wheel notch.
	wheelDegrees = 10.0
	// wheelHoldFrames is how long the wheel's virtual touch outlives the
	// last notch.
	wheelHoldFrames = 20
)

// Buttons is the held-device state sampled for one frame.
type Buttons struct {
	Trigger bool
	Grip    bool
	// Touch reports a finger on the touchpad at TouchAngle degrees.
	Touch      bool
	TouchAngle float64
}

// Input turns per-frame button state into the controller's edge calls. Like
// a pointer state machine, it remembers last frame's state and fires only
// on transitions.
type Input struct {
	prev Buttons

	gamepads   []ebiten.GamepadID
	gamepad    ebiten.GamepadID
	hasGamepad bool

	wheelAngle float64
	wheelHold  int
}

// Gamepad returns the standard-layout gamepad used last poll.
func (in *Input) Gamepad() (ebiten.GamepadID, bool) {
	return in.gamepad, in.hasGamepad
}

// Poll samples the first standard-layout gamepad, falling back to the mouse:
// left button = trigger, right button = grip, wheel = touchpad rotation.
func (in *Input) Poll() Buttons {
	var b Buttons

	in.hasGamepad = false
	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	for _, id := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in.gamepad, in.hasGamepad = id, true
		b.Trigger = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		b.Grip = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(x, y) > stickDeadZone {
			b.Touch = true
			// Stick Y grows downward; the touchpad angle is counter-clockwise.
			b.TouchAngle = ranged.TouchpadAngle(x, -y)
		}
		break
	}

	b.Trigger = b.Trigger || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	b.Grip = b.Grip || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !b.Touch {
		_, wy := ebiten.Wheel()
		b = in.wheel(b, wy)
	}
	return b
}

// wheel keeps a virtual touch down while the wheel turns. The first notch
// puts the finger down; notches within wheelHoldFrames of it rotate.
func (in *Input) wheel(b Buttons, notches float64) Buttons {
	if notches != 0 {
		if in.wheelHold > 0 {
			a := math.Mod(in.wheelAngle+notches*wheelDegrees, 360)
			if a < 0 {
				a += 360
			}
			in.wheelAngle = a
		}
		in.wheelHold = wheelHoldFrames
	} else if in.wheelHold > 0 {
		in.wheelHold--
	}
	if in.wheelHold == 0 {
		return b
	}
	b.Touch = true
	b.TouchAngle = in.wheelAngle
	return b
}

// Apply forwards the transitions between last frame and b to c. Presses are
// delivered before releases so a press and a release on different buttons
// in one frame keep their order relative to the gesture.
func (in *Input) Apply(c *ranged.Controller, b Buttons) {
	p := in.prev
	in.prev = b

	if b.Trigger && !p.Trigger {
		c.TriggerDown()
	}
	if b.Grip && !p.Grip {
		c.GripDown()
	}

	switch {
	case b.Touch && !p.Touch:
		c.TouchpadDown(b.TouchAngle)
	case b.Touch && b.TouchAngle != p.TouchAngle:
		c.TouchpadAxis(b.TouchAngle)
	case !b.Touch && p.Touch:
		c.TouchpadUp()
	}

	if !b.Trigger && p.Trigger {
		c.TriggerUp()
	}
	if !b.Grip && p.Grip {
		c.GripUp()
	}
}
