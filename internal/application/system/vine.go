package system

import (
	"slices"

	"github.com/younwookim/junglejr/internal/domain/entity"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
)

// VineSystem runs the vine state machine: grab, side-swap, stretch to a
// neighbor, hold two vines, forced fall.
type VineSystem struct {
	config   config.VineConfig
	geometry *entity.Geometry
}

// NewVineSystem creates a new vine system
func NewVineSystem(cfg config.VineConfig, geometry *entity.Geometry) *VineSystem {
	return &VineSystem{
		config:   cfg,
		geometry: geometry,
	}
}

// SetGeometry swaps the static geometry (level reload)
func (s *VineSystem) SetGeometry(geometry *entity.Geometry) {
	s.geometry = geometry
}

// ClimbSpeed returns the vertical speed for the player's current vine mode.
// Zero when not holding a vine.
func (s *VineSystem) ClimbSpeed(player *entity.Player) int {
	switch player.Vine.(type) {
	case *entity.OnVine:
		return s.config.ClimbSpeed
	case *entity.BetweenVines:
		return s.config.BetweenClimbSpeed
	}
	return 0
}

// Update advances the vine mode once. It runs after movement and the
// grounded recompute of the same frame.
func (s *VineSystem) Update(player *entity.Player, in Intent) {
	if player.Dead {
		return
	}

	switch m := player.Vine.(type) {
	case nil:
		s.tryGrab(player, in)
	case *entity.OnVine:
		s.updateSingle(player, m, in)
	case *entity.BetweenVines:
		s.updateBetween(player, m, in)
	case *entity.ForcedFall:
		if player.Grounded {
			player.Vine = nil
		}
	}
}

// Revalidate drops a vine mode whose indices no longer fit the geometry,
// or whose vines the player no longer touches. Used after a level reload.
func (s *VineSystem) Revalidate(player *entity.Player) {
	probe := player.Rect().ProbeRect()

	switch m := player.Vine.(type) {
	case *entity.OnVine:
		v, ok := s.geometry.Vine(m.Index)
		if !ok || !probe.Overlaps(v) {
			player.Vine = nil
		}
	case *entity.BetweenVines:
		lv, lok := s.geometry.Vine(m.Left)
		rv, rok := s.geometry.Vine(m.Right)
		if !lok || !rok || m.Left == m.Right || !probe.OverlapsY(lv) || !probe.OverlapsY(rv) {
			player.Vine = nil
		}
	}
}

// tryGrab attaches the player to the first vine the probe overlaps,
// skipping vines released this contact
func (s *VineSystem) tryGrab(player *entity.Player, in Intent) {
	probe := player.Rect().ProbeRect()
	s.pruneReleased(player, probe)

	idx := -1
	if s.geometry != nil {
		for i, v := range s.geometry.Vines {
			if probe.Overlaps(v) && !slices.Contains(player.Released, i) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return
	}
	v := s.geometry.Vines[idx]

	side := grabSide(player, v)
	player.X = entity.VineAttachX(v, side, player.W)
	player.VX = 0
	player.VY = 0
	player.StopJump()
	player.Grounded = false
	player.Vine = &entity.OnVine{Index: idx, Side: side, Lock: lockFor(in)}
}

// pruneReleased forgets released vines the probe no longer touches
func (s *VineSystem) pruneReleased(player *entity.Player, probe entity.Rect) {
	if len(player.Released) == 0 {
		return
	}
	player.Released = slices.DeleteFunc(player.Released, func(i int) bool {
		v, ok := s.geometry.Vine(i)
		return !ok || !probe.Overlaps(v)
	})
}

// grabSide picks the vine edge from the horizontal motion at contact.
// Moving right lands on the vine's left edge and vice versa.
func grabSide(player *entity.Player, v entity.Rect) entity.VineSide {
	switch {
	case player.VX > 0:
		return entity.SideLeft
	case player.VX < 0:
		return entity.SideRight
	case player.Rect().CenterX() < v.CenterX():
		return entity.SideLeft
	default:
		return entity.SideRight
	}
}

// lockFor holds the side lock when the grab happens mid key-hold, so the
// held key cannot fire a swap on the next frame.
func lockFor(in Intent) entity.SideLock {
	if in.Horizontal() != 0 {
		return entity.LockHeld
	}
	return entity.LockNone
}

func (s *VineSystem) updateSingle(player *entity.Player, m *entity.OnVine, in Intent) {
	v, ok := s.geometry.Vine(m.Index)
	if !ok {
		player.Vine = nil
		return
	}

	// Vertical extent: no climbing past the top, let go past the bottom
	probe := player.Rect().ProbeRect()
	if probe.Y >= v.Bottom() {
		player.Vine = nil
		return
	}
	if probe.Bottom() <= v.Y {
		player.Y += v.Y + 1 - probe.Bottom()
		if player.VY < 0 {
			player.VY = 0
		}
	}

	dir := in.Horizontal()
	switch {
	case dir == 0:
		m.Lock = entity.LockNone
	case dir == m.Side.TowardCenter():
		if m.Lock != entity.LockNone {
			return
		}
		m.Side = m.Side.Opposite()
		player.X = entity.VineAttachX(v, m.Side, player.W)
		m.Lock = entity.LockHeld
	default:
		if m.Lock == entity.LockHeld {
			return
		}
		s.stretch(player, m, v, dir)
	}
}

// stretch reaches for a neighbor vine in direction dir. Without one, the
// first press arms the lock and a second consecutive press forces a fall.
func (s *VineSystem) stretch(player *entity.Player, m *entity.OnVine, v entity.Rect, dir int) {
	idx := s.findNeighbor(player, m.Index, v, dir)
	if idx >= 0 {
		n := s.geometry.Vines[idx]
		left, right := m.Index, idx
		lv, rv := v, n
		if n.CenterX() < v.CenterX() {
			left, right = idx, m.Index
			lv, rv = n, v
		}
		mid := (lv.CenterX() + rv.CenterX()) / 2
		player.X = mid - player.W/2
		player.Vine = &entity.BetweenVines{Left: left, Right: right, Lock: entity.LockHeld}
		return
	}

	if m.Lock != entity.LockArmed {
		m.Lock = entity.LockArmed
		return
	}

	x := player.X + dir*s.config.ForcedFallNudge
	b := s.geometry.Bounds
	x = max(b.X, min(x, b.Right()-player.W))
	player.X = x
	player.VY = 0
	player.Vine = &entity.ForcedFall{LockedX: x}
}

// findNeighbor returns the vine nearest to the player center that lies past
// the current vine in direction dir and overlaps the reach rect. Ties keep
// geometry order.
func (s *VineSystem) findNeighbor(player *entity.Player, current int, v entity.Rect, dir int) int {
	reach := player.Rect().ReachRect(dir, s.config.ReachDistance)
	cx := player.Rect().CenterX()

	best, bestDist := -1, 0
	for i, c := range s.geometry.Vines {
		if i == current || !reach.Overlaps(c) {
			continue
		}
		if (c.CenterX()-v.CenterX())*dir <= 0 {
			continue
		}
		d := abs(c.CenterX() - cx)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (s *VineSystem) updateBetween(player *entity.Player, m *entity.BetweenVines, in Intent) {
	lv, lok := s.geometry.Vine(m.Left)
	rv, rok := s.geometry.Vine(m.Right)
	if !lok || !rok {
		player.Vine = nil
		return
	}

	// Resolution by grab height, independent of input
	mid := player.Y + player.H/2
	inLeft := mid >= lv.Y && mid < lv.Bottom()
	inRight := mid >= rv.Y && mid < rv.Bottom()
	switch {
	case inLeft && inRight:
	case inLeft:
		s.commit(player, m.Left, lv, entity.SideRight, lockFor(in))
		return
	case inRight:
		s.commit(player, m.Right, rv, entity.SideLeft, lockFor(in))
		return
	default:
		player.Vine = nil
		player.Released = append(player.Released[:0], m.Left, m.Right)
		return
	}

	dir := in.Horizontal()
	if dir == 0 {
		m.Lock = entity.LockNone
		return
	}
	if m.Lock != entity.LockNone {
		return
	}
	if dir > 0 {
		s.commit(player, m.Right, rv, entity.SideLeft, entity.LockHeld)
	} else {
		s.commit(player, m.Left, lv, entity.SideRight, entity.LockHeld)
	}
}

func (s *VineSystem) commit(player *entity.Player, idx int, v entity.Rect, side entity.VineSide, lock entity.SideLock) {
	player.X = entity.VineAttachX(v, side, player.W)
	player.Vine = &entity.OnVine{Index: idx, Side: side, Lock: lock}
}
