package components

import (
	"github.com/automoto/zstrike/shared/messages"
	"github.com/yohamta/donburi"
)

// InputData buffers everything the host delivered since the last tick.
// Look buffers are zeroed once read so a delta is applied exactly once.
type InputData struct {
	Current messages.InputSnapshot

	PointerDX, PointerDY float64
	TouchDX, TouchDY     float64

	FireRequested   bool
	ReloadRequested bool
	JumpRequested   bool
}

var Input = donburi.NewComponentType[InputData]()

// Merge folds a frame snapshot into the buffers.
func (in *InputData) Merge(s messages.InputSnapshot) {
	in.Current = s
	in.PointerDX += s.PointerDX
	in.PointerDY += s.PointerDY
	in.TouchDX += s.TouchDX
	in.TouchDY += s.TouchDY
	in.FireRequested = in.FireRequested || s.Fire
	in.ReloadRequested = in.ReloadRequested || s.Reload
	in.JumpRequested = in.JumpRequested || s.Jump
}

// AddLook buffers a raw look delta from one source.
func (in *InputData) AddLook(src messages.LookSource, dx, dy float64) {
	switch src {
	case messages.LookPointer:
		in.PointerDX += dx
		in.PointerDY += dy
	case messages.LookTouch:
		in.TouchDX += dx
		in.TouchDY += dy
	}
}

// TakeLook returns this frame's look delta and clears both buffers.
// Pointer motion wins over touch motion.
func (in *InputData) TakeLook() (dx, dy float64, src messages.LookSource) {
	dx, dy, src = in.TouchDX, in.TouchDY, messages.LookTouch
	if in.PointerDX != 0 || in.PointerDY != 0 {
		dx, dy, src = in.PointerDX, in.PointerDY, messages.LookPointer
	}
	in.PointerDX, in.PointerDY = 0, 0
	in.TouchDX, in.TouchDY = 0, 0
	return dx, dy, src
}

// ClearTriggers drops one-shot requests after a tick has seen them.
func (in *InputData) ClearTriggers() {
	in.FireRequested = false
	in.ReloadRequested = false
	in.JumpRequested = false
}
