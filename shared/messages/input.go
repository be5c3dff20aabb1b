package messages

// LookSource identifies the device a look delta came from.
type LookSource int

const (
	LookPointer LookSource = iota
	LookTouch
)

// InputSnapshot is the normalized control state for one frame, produced by
// the host from keyboard, mouse, touch or a bot.
type InputSnapshot struct {
	Forward, Backward, Left, Right bool

	// JoystickX/Y override the four axes when either is non-zero.
	// +Y pushes forward.
	JoystickX, JoystickY float64

	// Look deltas in pixels. The pointer delta wins when it is non-zero.
	PointerDX, PointerDY float64
	TouchDX, TouchDY     float64

	Fire   bool
	Reload bool
	Jump   bool
}
