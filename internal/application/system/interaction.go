package system

import (
	"github.com/younwookim/junglejr/internal/domain/entity"
)

// InteractionSystem runs the read-mostly per-frame detectors:
// crocodile contact, water, fruit pickup and goal.
type InteractionSystem struct {
	geometry *entity.Geometry
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem(geometry *entity.Geometry) *InteractionSystem {
	return &InteractionSystem{geometry: geometry}
}

// SetGeometry swaps the static geometry (level reload)
func (s *InteractionSystem) SetGeometry(geometry *entity.Geometry) {
	s.geometry = geometry
}

// Update runs every detector once
func (s *InteractionSystem) Update(player *entity.Player, crocs *entity.CrocodilePool, fruits *entity.FruitPool) {
	s.CheckHazards(player, crocs)
	if player.Dead {
		return
	}
	s.CheckFruit(player, fruits)
	s.CheckGoal(player)
}

// CheckHazards kills the player on crocodile contact or water.
// Killing an already dead player is a no-op.
func (s *InteractionSystem) CheckHazards(player *entity.Player, crocs *entity.CrocodilePool) {
	pr := player.Rect()

	if crocs != nil {
		for i := range crocs.Slots {
			c := &crocs.Slots[i]
			if c.Active && pr.Overlaps(c.Rect()) {
				player.MarkDead()
				return
			}
		}
	}

	if s.geometry.InWater(pr) {
		player.MarkDead()
	}
}

// CheckFruit picks up at most one fruit per frame, lowest slot first
func (s *InteractionSystem) CheckFruit(player *entity.Player, fruits *entity.FruitPool) {
	if fruits == nil || player.Dead {
		return
	}

	pr := player.Rect()
	for i := range fruits.Slots {
		f := &fruits.Slots[i]
		if f.Active && pr.Overlaps(f.Rect()) {
			f.Active = false
			player.PickFruit(f.X, f.Y)
			return
		}
	}
}

// CheckGoal raises the win edge when the player center reaches the goal
func (s *InteractionSystem) CheckGoal(player *entity.Player) {
	if s.geometry.AtGoal(player.Rect()) {
		player.MarkWon()
	}
}
