package main

import (
	"github.com/automoto/zstrike/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionID represents a logical host action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionJump
	ActionFire
	ActionReload
	ActionStart
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Deadzone for analog sticks (0.0 to 1.0)
const analogDeadzone = 0.2

// Right stick look speed, in pointer pixels per tick at full deflection
const stickLookSpeed = 12.0

var bindings = map[ActionID]InputBinding{
	ActionForward: {
		Keys:                   []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionBackward: {
		Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionRight: {
		Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionJump: {
		Keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionFire: {
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
		// Right trigger
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
	},
	ActionReload: {
		Keys: []ebiten.Key{ebiten.KeyR},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	ActionStart: {
		Keys: []ebiten.Key{ebiten.KeyEnter},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}

// Reusable slices to avoid per-frame allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// inputPoller turns raw device state into an InputSnapshot once per frame.
type inputPoller struct {
	lastCursorX, lastCursorY int
	hasCursor                bool

	touchID    ebiten.TouchID
	touching   bool
	lastTouchX int
	lastTouchY int

	pressed     [ActionCount]bool
	justPressed [ActionCount]bool
}

func (p *inputPoller) poll() messages.InputSnapshot {
	prev := p.pressed
	p.pressed = [ActionCount]bool{}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				p.pressed[action] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				p.pressed[action] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					p.pressed[action] = true
				}
			}
		}
	}
	for a := range p.pressed {
		p.justPressed[a] = p.pressed[a] && !prev[a]
	}

	in := messages.InputSnapshot{
		Forward:  p.pressed[ActionForward],
		Backward: p.pressed[ActionBackward],
		Left:     p.pressed[ActionLeft],
		Right:    p.pressed[ActionRight],
		Fire:     p.pressed[ActionFire],
		Reload:   p.justPressed[ActionReload],
		Jump:     p.justPressed[ActionJump],
	}
	p.pollSticks(&in)
	p.pollPointer(&in)
	p.pollTouch(&in)
	return in
}

func (p *inputPoller) started() bool {
	return p.justPressed[ActionStart]
}

// pollSticks maps the left stick to the joystick and the right stick to look.
func (p *inputPoller) pollSticks(in *messages.InputSnapshot) {
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		lx := deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal))
		ly := deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical))
		if lx != 0 || ly != 0 {
			// Stick up is negative on the standard layout
			in.JoystickX, in.JoystickY = lx, -ly
		}
		rx := deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal))
		ry := deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical))
		in.PointerDX += rx * stickLookSpeed
		in.PointerDY += ry * stickLookSpeed
	}
}

// pollPointer reads captured-cursor motion since the previous frame.
func (p *inputPoller) pollPointer(in *messages.InputSnapshot) {
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		p.hasCursor = false
		return
	}
	x, y := ebiten.CursorPosition()
	if p.hasCursor {
		in.PointerDX += float64(x - p.lastCursorX)
		in.PointerDY += float64(y - p.lastCursorY)
	}
	p.lastCursorX, p.lastCursorY, p.hasCursor = x, y, true
}

// pollTouch follows the first touch as a look drag.
func (p *inputPoller) pollTouch(in *messages.InputSnapshot) {
	if p.touching && inpututil.IsTouchJustReleased(p.touchID) {
		p.touching = false
	}
	if !p.touching {
		touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
		if len(touchIDs) == 0 {
			return
		}
		p.touchID, p.touching = touchIDs[0], true
		p.lastTouchX, p.lastTouchY = ebiten.TouchPosition(p.touchID)
		return
	}
	x, y := ebiten.TouchPosition(p.touchID)
	in.TouchDX += float64(x - p.lastTouchX)
	in.TouchDY += float64(y - p.lastTouchY)
	p.lastTouchX, p.lastTouchY = x, y
}

func deadzone(v float64) float64 {
	if v > -analogDeadzone && v < analogDeadzone {
		return 0
	}
	return v
}
