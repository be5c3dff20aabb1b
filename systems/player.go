package systems

import (
	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/automoto/zstrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion turns buffered input into camera orientation, a walk
// velocity and jump impulses. Look deltas are consumed exactly once.
func UpdateLocomotion(ecs *ecs.ECS) {
	PlayerGroundedEvent.ProcessEvents(ecs.World)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		player := components.Player.Get(e)
		body := components.Body.Get(e)

		dx, dy, src := input.TakeLook()
		if dx != 0 || dy != 0 {
			sens := cfg.Player.PointerSensitivity
			if src == messages.LookTouch {
				sens = cfg.Player.TouchSensitivity
			}
			player.Yaw, player.Pitch = gamemath.ApplyLook(player.Yaw, player.Pitch, dx, dy, sens, cfg.Player.MaxPitch)
		}

		in := input.Current
		dir := gamemath.MoveDirection(in.Forward, in.Backward, in.Left, in.Right, in.JoystickX, in.JoystickY)
		walk := gamemath.WalkVelocity(dir, player.Yaw, cfg.Player.WalkSpeed)
		body.Velocity.X = walk.X
		body.Velocity.Z = walk.Z

		// Jump (grounded only)
		if input.JumpRequested && body.Grounded {
			body.Velocity.Y = cfg.Player.JumpVelocity
			body.Grounded = false
		}
	})
}

func onPlayerGrounded(w donburi.World, _ PlayerGrounded) {
	if e, ok := GetPlayer(w); ok {
		components.Body.Get(e).Grounded = true
	}
}

// GetPlayer returns the player entry.
func GetPlayer(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}
