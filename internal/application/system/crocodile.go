package system

import (
	"github.com/younwookim/junglejr/internal/domain/entity"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
)

// CrocSpeed is the shared crocodile speed (pixels per movement step).
// It is owned by the session and passed into every update.
type CrocSpeed struct {
	base  int
	max   int
	value int
}

// NewCrocSpeed creates a speed starting at base, capped at max
func NewCrocSpeed(base, max int) *CrocSpeed {
	if base < 1 {
		base = 1
	}
	if max < base {
		max = base
	}
	return &CrocSpeed{base: base, max: max, value: base}
}

// Value returns the current speed
func (s *CrocSpeed) Value() int {
	return s.value
}

// Increase ramps difficulty by one step up to the cap
func (s *CrocSpeed) Increase() {
	if s.value < s.max {
		s.value++
	}
}

// Reset returns to the base speed (new round)
func (s *CrocSpeed) Reset() {
	s.value = s.base
}

// CrocodileSystem moves crocodiles against the static geometry
type CrocodileSystem struct {
	divider    int
	fallMargin int
}

// NewCrocodileSystem creates a new crocodile system
func NewCrocodileSystem(cfg config.CrocodileConfig) *CrocodileSystem {
	return &CrocodileSystem{
		divider:    cfg.Divider,
		fallMargin: cfg.FallMargin,
	}
}

// Update advances every active crocodile whose frame divider fires.
// Nil geometry leaves the pool untouched.
func (s *CrocodileSystem) Update(pool *entity.CrocodilePool, geometry *entity.Geometry, speed int) {
	if pool == nil || geometry == nil {
		return
	}

	for i := range pool.Slots {
		c := &pool.Slots[i]
		if !c.Active || !c.Tick(s.divider) {
			continue
		}

		switch c.Variant {
		case entity.CrocBlue:
			s.updateBlue(c, geometry, speed)
		default:
			s.updateRed(c, geometry, speed)
		}

		s.clampBounds(c, geometry.Bounds)

		if c.Y > geometry.Bounds.Bottom()+s.fallMargin {
			c.Active = false
		}
	}
}

// updateBlue falls through vines, walks platforms until it walks off
func (s *CrocodileSystem) updateBlue(c *entity.Crocodile, g *entity.Geometry, speed int) {
	if g.VineOverlapping(c.Rect()) >= 0 {
		c.DirX = 0
		c.DirY = 1
		c.Y += speed
		return
	}

	if g.PlatformUnder(c.Rect()) >= 0 {
		if c.DirX == 0 {
			c.DirX = 1
		}
		c.DirY = 0
		c.X += c.DirX * speed
		return
	}

	s.fall(c, g, speed)
}

// updateRed patrols up and down vines and back and forth on platforms
func (s *CrocodileSystem) updateRed(c *entity.Crocodile, g *entity.Geometry, speed int) {
	if vi := g.VineOverlapping(c.Rect()); vi >= 0 {
		v := g.Vines[vi]
		c.DirX = 0
		if c.DirY == 0 {
			c.DirY = 1
		}

		// Look one step ahead and turn around at the vine ends
		nextY := c.Y + c.DirY*speed
		if nextY < v.Y || nextY+c.H > v.Bottom() {
			c.DirY = -c.DirY
			return
		}
		c.Y = nextY
		return
	}

	if pi := g.PlatformUnder(c.Rect()); pi >= 0 {
		pl := g.Platforms[pi]
		c.DirY = 0
		if c.DirX == 0 {
			c.DirX = 1
		}

		nx := c.X + c.DirX*speed
		switch {
		case nx <= pl.X:
			nx = pl.X
			c.DirX = 1
		case nx >= pl.Right()-c.W:
			nx = pl.Right() - c.W
			c.DirX = -1
		}
		c.X = nx
		return
	}

	s.fall(c, g, speed)
}

// fall drops straight down, landing on the first platform top crossed
func (s *CrocodileSystem) fall(c *entity.Crocodile, g *entity.Geometry, speed int) {
	c.DirY = 1
	r := c.Rect()
	newBottom := r.Bottom() + speed

	for _, pl := range g.Platforms {
		if !r.OverlapsX(pl) {
			continue
		}
		if r.Bottom() <= pl.Y && newBottom >= pl.Y {
			c.Y = pl.Y - c.H
			c.DirY = 0
			return
		}
	}
	c.Y += speed
}

// clampBounds keeps the crocodile inside the horizontal world bounds and
// reverses it at an edge
func (s *CrocodileSystem) clampBounds(c *entity.Crocodile, b entity.Rect) {
	if c.X <= b.X {
		c.X = b.X
		if c.DirX < 0 {
			c.DirX = 1
		}
	}
	if c.X+c.W >= b.Right() {
		c.X = b.Right() - c.W
		if c.DirX > 0 {
			c.DirX = -1
		}
	}
}
