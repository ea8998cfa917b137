package system

import (
	"github.com/younwookim/junglejr/internal/domain/entity"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
)

// MovementSystem advances the player one frame:
// horizontal phase, vertical phase, bounds clamp, grounded recompute, vines.
type MovementSystem struct {
	config    config.MovementConfig
	collision *CollisionSystem
	vines     *VineSystem
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg config.MovementConfig, collision *CollisionSystem, vines *VineSystem) *MovementSystem {
	return &MovementSystem{
		config:    cfg,
		collision: collision,
		vines:     vines,
	}
}

// Update moves the player by one frame. Dead players do not move.
func (s *MovementSystem) Update(player *entity.Player, in Intent) {
	if player.Dead {
		return
	}

	// Horizontal phase
	prevX := player.X
	s.applyHorizontal(player, in)
	player.X += player.VX
	s.collision.ResolveHorizontal(player, prevX)

	// Vertical phase
	prevY := player.Y
	s.applyVertical(player, in)
	player.Y += player.VY
	s.collision.ResolveVertical(player, prevY)

	s.collision.ClampBounds(player)

	// Holding a vine is never grounded
	player.Grounded = !player.OnVine() && s.collision.IsGrounded(player.Rect())

	s.vines.Update(player, in)
}

// applyHorizontal sets VX for the current mode
func (s *MovementSystem) applyHorizontal(player *entity.Player, in Intent) {
	switch m := player.Vine.(type) {
	case *entity.OnVine, *entity.BetweenVines:
		player.VX = 0
	case *entity.ForcedFall:
		player.VX = 0
		player.X = m.LockedX
	default:
		player.VX = in.Horizontal() * s.config.MoveSpeed
	}
}

// applyVertical sets VY for the current mode.
// Off the vines velocity is constant: a fixed ascent while the jump timer
// runs, a fixed fall speed otherwise.
func (s *MovementSystem) applyVertical(player *entity.Player, in Intent) {
	if player.OnVine() {
		player.VY = in.Vertical() * s.vines.ClimbSpeed(player)
		return
	}

	if in.Jump && player.Grounded && !player.Jumping && !player.VineForcedFall() && s.config.JumpAscentFrames > 0 {
		player.Jumping = true
		player.JumpFramesLeft = s.config.JumpAscentFrames
		player.Grounded = false
	}

	if player.Jumping && player.JumpFramesLeft > 0 {
		player.VY = s.config.JumpAscentSpeed
		player.JumpFramesLeft--
		if player.JumpFramesLeft == 0 {
			player.Jumping = false
		}
		return
	}

	player.StopJump()
	player.VY = s.config.FallSpeed
}
