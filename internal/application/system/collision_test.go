package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/junglejr/internal/domain/entity"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
)

func createTestTuning() *config.TuningConfig {
	return config.DefaultTuning()
}

// createTestGeometry builds a 256x240 world with a floor platform,
// a tall wall block standing on it, and one vine.
func createTestGeometry() *entity.Geometry {
	g := entity.NewGeometry(entity.Rect{X: 0, Y: 0, W: 256, H: 240})
	g.Platforms = []entity.Rect{
		{X: 0, Y: 208, W: 256, H: 8},
		{X: 120, Y: 160, W: 8, H: 48},
	}
	g.Vines = []entity.Rect{
		{X: 100, Y: 50, W: 8, H: 100},
	}
	return g
}

func TestCollision_FallingCrossesTopFace(t *testing.T) {
	s := NewCollisionSystem(createTestGeometry())
	p := entity.NewPlayer(16, 188, 16, 16)

	// One big step from bottom 204 to bottom 211 crosses the top at 208
	prevY := p.Y
	p.VY = 7
	p.Y += p.VY

	hit := s.ResolveVertical(p, prevY)

	assert.True(t, hit)
	assert.Equal(t, 208-16, p.Y, "rests exactly on the face")
	assert.Equal(t, 0, p.VY)
}

func TestCollision_LandingExactlyOnFaceZeroesVY(t *testing.T) {
	s := NewCollisionSystem(createTestGeometry())
	p := entity.NewPlayer(16, 191, 16, 16)

	prevY := p.Y
	p.VY = 1
	p.Y += p.VY

	assert.True(t, s.ResolveVertical(p, prevY))
	assert.Equal(t, 192, p.Y)
	assert.Equal(t, 0, p.VY)
}

func TestCollision_RisingIntoBottomFaceStopsJump(t *testing.T) {
	g := createTestGeometry()
	g.Platforms = append(g.Platforms, entity.Rect{X: 0, Y: 100, W: 64, H: 8})
	s := NewCollisionSystem(g)

	p := entity.NewPlayer(16, 109, 16, 16)
	p.Jumping = true
	p.JumpFramesLeft = 5

	prevY := p.Y
	p.VY = -2
	p.Y += p.VY

	assert.True(t, s.ResolveVertical(p, prevY))
	assert.Equal(t, 108, p.Y)
	assert.Equal(t, 0, p.VY)
	assert.False(t, p.Jumping)
	assert.Equal(t, 0, p.JumpFramesLeft)
}

func TestCollision_HorizontalClampsAgainstWall(t *testing.T) {
	s := NewCollisionSystem(createTestGeometry())

	t.Run("moving right into left side", func(t *testing.T) {
		p := entity.NewPlayer(103, 192, 16, 16)
		prevX := p.X
		p.VX = 2
		p.X += p.VX

		assert.True(t, s.ResolveHorizontal(p, prevX))
		assert.Equal(t, 104, p.X)
		assert.Equal(t, 0, p.VX)
	})

	t.Run("moving left into right side", func(t *testing.T) {
		p := entity.NewPlayer(129, 192, 16, 16)
		prevX := p.X
		p.VX = -2
		p.X += p.VX

		assert.True(t, s.ResolveHorizontal(p, prevX))
		assert.Equal(t, 128, p.X)
		assert.Equal(t, 0, p.VX)
	})

	t.Run("touching without overlap is not a hit", func(t *testing.T) {
		p := entity.NewPlayer(103, 192, 16, 16)
		prevX := p.X
		p.VX = 1
		p.X += p.VX

		assert.False(t, s.ResolveHorizontal(p, prevX))
		assert.Equal(t, 104, p.X)
		assert.Equal(t, 1, p.VX)
	})
}

func TestCollision_FirstPlatformWins(t *testing.T) {
	g := entity.NewGeometry(entity.Rect{X: 0, Y: 0, W: 256, H: 240})
	g.Platforms = []entity.Rect{
		{X: 0, Y: 100, W: 64, H: 8},
		{X: 0, Y: 102, W: 64, H: 8},
	}
	s := NewCollisionSystem(g)

	p := entity.NewPlayer(16, 80, 16, 16)
	prevY := p.Y
	p.VY = 10
	p.Y += p.VY

	s.ResolveVertical(p, prevY)
	assert.Equal(t, 84, p.Y, "snaps to the first platform in geometry order")
}

func TestCollision_ClampBounds(t *testing.T) {
	tests := []struct {
		name       string
		x, y       int
		vx, vy     int
		wantX      int
		wantY      int
		wantVX     int
		wantVY     int
		wantJumpOK bool
	}{
		{"left wall", -3, 50, -1, 0, 0, 50, 0, 0, true},
		{"right wall", 245, 50, 1, 0, 240, 50, 0, 0, true},
		{"ceiling ends ascent", 50, -1, 0, -1, 50, 0, 0, 0, false},
		{"floor", 50, 230, 0, 1, 50, 224, 0, 0, false},
		{"inside untouched", 50, 50, 1, 1, 50, 50, 1, 1, true},
	}

	s := NewCollisionSystem(createTestGeometry())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := entity.NewPlayer(tt.x, tt.y, 16, 16)
			p.VX, p.VY = tt.vx, tt.vy
			p.Jumping = true
			p.JumpFramesLeft = 3

			s.ClampBounds(p)

			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, tt.wantY, p.Y)
			assert.Equal(t, tt.wantVX, p.VX)
			assert.Equal(t, tt.wantVY, p.VY)
			assert.Equal(t, tt.wantJumpOK, p.Jumping)
		})
	}
}

func TestCollision_IsGroundedExactEquality(t *testing.T) {
	s := NewCollisionSystem(createTestGeometry())

	assert.True(t, s.IsGrounded(entity.Rect{X: 16, Y: 192, W: 16, H: 16}), "on platform top")
	assert.False(t, s.IsGrounded(entity.Rect{X: 16, Y: 191, W: 16, H: 16}), "one pixel above")
	assert.True(t, s.IsGrounded(entity.Rect{X: 120, Y: 144, W: 8, H: 16}), "on the wall block")
	assert.False(t, s.IsGrounded(entity.Rect{X: 128, Y: 144, W: 8, H: 16}), "beside the block, no horizontal overlap")

	g := entity.NewGeometry(entity.Rect{X: 0, Y: 0, W: 256, H: 240})
	assert.True(t, NewCollisionSystem(g).IsGrounded(entity.Rect{X: 0, Y: 224, W: 16, H: 16}), "world floor")
}

func TestCollision_NilGeometry(t *testing.T) {
	s := NewCollisionSystem(nil)
	p := entity.NewPlayer(10, 10, 16, 16)
	p.VX, p.VY = 1, 1

	assert.NotPanics(t, func() {
		s.ResolveHorizontal(p, 9)
		s.ResolveVertical(p, 9)
		s.ClampBounds(p)
	})
	assert.False(t, s.IsGrounded(p.Rect()))
}
