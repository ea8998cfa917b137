package system

import (
	"github.com/younwookim/junglejr/internal/domain/entity"
)

// CollisionSystem resolves player contact with static geometry.
// Horizontal runs before vertical so the horizontal phase sees the
// pre-vertical-move position.
type CollisionSystem struct {
	geometry *entity.Geometry
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(geometry *entity.Geometry) *CollisionSystem {
	return &CollisionSystem{geometry: geometry}
}

// SetGeometry swaps the static geometry (level reload)
func (s *CollisionSystem) SetGeometry(geometry *entity.Geometry) {
	s.geometry = geometry
}

// ResolveHorizontal clamps the player against the first platform side it
// crossed this frame. prevX is the x before the horizontal move.
func (s *CollisionSystem) ResolveHorizontal(player *entity.Player, prevX int) bool {
	if s.geometry == nil || player.VX == 0 {
		return false
	}

	pr := player.Rect()
	prevLeft := prevX
	prevRight := prevX + player.W

	for _, pl := range s.geometry.Platforms {
		if !pr.Overlaps(pl) {
			continue
		}

		// Moving right into left side
		if player.VX > 0 && prevRight <= pl.X && pr.Right() >= pl.X {
			player.X = pl.X - player.W
			player.VX = 0
			return true
		}

		// Moving left into right side
		if player.VX < 0 && prevLeft >= pl.Right() && pr.X <= pl.Right() {
			player.X = pl.Right()
			player.VX = 0
			return true
		}
	}
	return false
}

// ResolveVertical snaps the player onto the first platform face it crossed
// this frame. prevY is the y before the vertical move. Landing exactly on a
// face counts as a hit so VY is zeroed without any embedding.
func (s *CollisionSystem) ResolveVertical(player *entity.Player, prevY int) bool {
	if s.geometry == nil || player.VY == 0 {
		return false
	}

	pr := player.Rect()
	prevTop := prevY
	prevBottom := prevY + player.H

	for _, pl := range s.geometry.Platforms {
		if !pr.OverlapsX(pl) {
			continue
		}

		// Falling onto top face
		if player.VY > 0 && prevBottom <= pl.Y && pr.Bottom() >= pl.Y {
			player.Y = pl.Y - player.H
			player.VY = 0
			return true
		}

		// Rising into bottom face
		if player.VY < 0 && prevTop >= pl.Bottom() && pr.Y <= pl.Bottom() {
			player.Y = pl.Bottom()
			player.VY = 0
			player.StopJump()
			return true
		}
	}
	return false
}

// ClampBounds keeps the player inside the world bounds.
// Touching the ceiling or floor while moving toward it ends the jump ascent.
func (s *CollisionSystem) ClampBounds(player *entity.Player) {
	if s.geometry == nil {
		return
	}
	b := s.geometry.Bounds

	if player.X <= b.X {
		player.X = b.X
		if player.VX < 0 {
			player.VX = 0
		}
	}
	if player.X+player.W >= b.Right() {
		player.X = b.Right() - player.W
		if player.VX > 0 {
			player.VX = 0
		}
	}

	if player.Y <= b.Y {
		player.Y = b.Y
		if player.VY < 0 {
			player.VY = 0
			player.StopJump()
		}
	}
	if player.Y+player.H >= b.Bottom() {
		player.Y = b.Bottom() - player.H
		if player.VY > 0 {
			player.VY = 0
			player.StopJump()
		}
	}
}

// IsGrounded reports an exact contact: bottom on the world floor, or bottom
// on a platform top with horizontal overlap.
func (s *CollisionSystem) IsGrounded(r entity.Rect) bool {
	if s.geometry == nil {
		return false
	}
	if r.Bottom() == s.geometry.FloorY() {
		return true
	}
	return s.geometry.PlatformUnder(r) >= 0
}
