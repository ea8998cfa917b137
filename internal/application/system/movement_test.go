package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/junglejr/internal/domain/entity"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
)

func createTestMovement(g *entity.Geometry) *MovementSystem {
	return createTestMovementWith(createTestTuning(), g)
}

func createTestMovementWith(cfg *config.TuningConfig, g *entity.Geometry) *MovementSystem {
	return NewMovementSystem(
		cfg.Movement,
		NewCollisionSystem(g),
		NewVineSystem(cfg.Vine, g),
	)
}

func TestMovement_FallSettlesOnPlatform(t *testing.T) {
	s := createTestMovement(createTestGeometry())
	p := entity.NewPlayer(16, 192, 16, 8)

	s.Update(p, Intent{})
	assert.Equal(t, 193, p.Y, "first step falls")
	assert.False(t, p.Grounded)

	for i := 0; i < 20; i++ {
		s.Update(p, Intent{})
	}

	assert.Equal(t, 200, p.Y, "208 - 8")
	assert.Equal(t, 0, p.VY)
	assert.True(t, p.Grounded)
}

func TestMovement_RestingPlayerStaysGrounded(t *testing.T) {
	s := createTestMovement(createTestGeometry())
	p := entity.NewPlayer(16, 192, 16, 16)

	for i := 0; i < 5; i++ {
		s.Update(p, Intent{})
		assert.Equal(t, 192, p.Y)
		assert.Equal(t, 0, p.VY)
		assert.True(t, p.Grounded)
	}
}

func TestMovement_NeverEmbeddedInPlatform(t *testing.T) {
	for _, speed := range []int{1, 3, 7} {
		cfg := createTestTuning()
		cfg.Movement.FallSpeed = speed
		s := createTestMovementWith(cfg, createTestGeometry())

		p := entity.NewPlayer(16, 100, 16, 16)
		for i := 0; i < 200 && !p.Grounded; i++ {
			s.Update(p, Intent{})
			require.LessOrEqual(t, p.Y+p.H, 208, "speed %d frame %d", speed, i)
		}

		assert.True(t, p.Grounded, "speed %d", speed)
		assert.Equal(t, 192, p.Y, "speed %d", speed)
		assert.Equal(t, 0, p.VY)
	}
}

func TestMovement_JumpArc(t *testing.T) {
	s := createTestMovement(createTestGeometry())
	p := entity.NewPlayer(16, 192, 16, 16)
	s.Update(p, Intent{})
	require.True(t, p.Grounded)

	s.Update(p, Intent{Jump: true})
	assert.Equal(t, 191, p.Y)
	assert.True(t, p.Jumping)
	assert.Equal(t, 17, p.JumpFramesLeft)
	assert.False(t, p.Grounded)

	for i := 0; i < 17; i++ {
		s.Update(p, Intent{})
	}
	assert.Equal(t, 174, p.Y, "18 frames of ascent")
	assert.False(t, p.Jumping)
	assert.Equal(t, 0, p.JumpFramesLeft)

	for i := 0; i < 18; i++ {
		s.Update(p, Intent{})
	}
	assert.Equal(t, 192, p.Y)
	assert.True(t, p.Grounded)
}

func TestMovement_JumpNeedsGround(t *testing.T) {
	s := createTestMovement(createTestGeometry())
	p := entity.NewPlayer(16, 100, 16, 16)

	s.Update(p, Intent{Jump: true})

	assert.False(t, p.Jumping)
	assert.Equal(t, 101, p.Y)
}

func TestMovement_WalkStopsAtWall(t *testing.T) {
	s := createTestMovement(createTestGeometry())
	p := entity.NewPlayer(100, 192, 16, 16)

	s.Update(p, Intent{Right: true})
	assert.Equal(t, 101, p.X)
	assert.Equal(t, 1, p.VX)

	for i := 0; i < 10; i++ {
		s.Update(p, Intent{Right: true})
	}
	assert.Equal(t, 104, p.X)
	assert.Equal(t, 0, p.VX)
	assert.True(t, p.Grounded)
}

func TestMovement_HorizontalBeforeVertical(t *testing.T) {
	g := createTestGeometry()
	g.Vines = nil
	s := createTestMovement(g)

	// Falling diagonally onto the wall block's top-left corner lands on
	// top instead of being pushed off the side.
	p := entity.NewPlayer(105, 143, 16, 16)
	s.Update(p, Intent{Right: true})

	assert.Equal(t, 106, p.X)
	assert.Equal(t, 144, p.Y)
	assert.True(t, p.Grounded)
}

func TestMovement_DeadPlayerDoesNotMove(t *testing.T) {
	s := createTestMovement(createTestGeometry())
	p := entity.NewPlayer(16, 100, 16, 16)
	p.MarkDead()

	s.Update(p, Intent{Right: true, Jump: true})

	assert.Equal(t, 16, p.X)
	assert.Equal(t, 100, p.Y)
	assert.Equal(t, 0, p.VX)
	assert.Equal(t, 0, p.VY)
}

func TestMovement_GrabWhileMovingRight(t *testing.T) {
	s := createTestMovement(createTestGeometry())
	p := entity.NewPlayer(83, 80, 16, 16)

	for i := 0; i < 5 && !p.OnVine(); i++ {
		s.Update(p, Intent{Right: true})
	}

	m, ok := p.SingleVine()
	require.True(t, ok)
	assert.Equal(t, entity.SideLeft, m.Side)
	assert.Equal(t, 100-(16-1), p.X)
	assert.Equal(t, 0, p.VY)
	assert.False(t, p.Grounded)
}

func TestMovement_ClimbSpeeds(t *testing.T) {
	t.Run("single vine", func(t *testing.T) {
		s := createTestMovement(createTestGeometry())
		p := entity.NewPlayer(107, 80, 16, 16)
		p.Vine = &entity.OnVine{Index: 0, Side: entity.SideRight}

		s.Update(p, Intent{Up: true})
		assert.Equal(t, 79, p.Y)
		assert.Equal(t, -1, p.VY)

		s.Update(p, Intent{Down: true})
		assert.Equal(t, 80, p.Y)

		s.Update(p, Intent{})
		assert.Equal(t, 80, p.Y, "no gravity on a vine")
		assert.Equal(t, 0, p.VY)
		assert.False(t, p.Grounded)
	})

	t.Run("between vines is faster", func(t *testing.T) {
		s := createTestMovement(createTwoVineGeometry())
		p := entity.NewPlayer(106, 80, 16, 16)
		p.Vine = &entity.BetweenVines{Left: 0, Right: 1}

		s.Update(p, Intent{Up: true})
		assert.Equal(t, 78, p.Y)
		assert.True(t, p.BetweenVines())
		assert.Equal(t, 106, p.X)
	})
}

func TestMovement_JumpIgnoredOnVine(t *testing.T) {
	s := createTestMovement(createTestGeometry())
	p := entity.NewPlayer(107, 80, 16, 16)
	p.Vine = &entity.OnVine{Index: 0, Side: entity.SideRight}

	s.Update(p, Intent{Jump: true})

	assert.False(t, p.Jumping)
	assert.Equal(t, 80, p.Y)
	assert.True(t, p.OnVine())
}

func TestMovement_ForcedFallPinsXUntilGrounded(t *testing.T) {
	s := createTestMovement(createTestGeometry())
	p := entity.NewPlayer(107, 80, 16, 16)
	p.Vine = &entity.OnVine{Index: 0, Side: entity.SideRight}

	s.Update(p, Intent{Right: true})
	s.Update(p, Intent{Right: true})
	require.True(t, p.VineForcedFall())
	lockedX, _ := p.VineFallLockedX()

	inputs := []Intent{{Left: true}, {Right: true}, {Jump: true}, {}}
	frames := 0
	for ; frames < 300 && p.VineForcedFall(); frames++ {
		s.Update(p, inputs[frames%len(inputs)])
		assert.Equal(t, lockedX, p.X, "frame %d", frames)
	}

	assert.Less(t, frames, 300, "forced fall eventually ends")
	assert.Nil(t, p.Vine)
	assert.True(t, p.Grounded)
	assert.Equal(t, lockedX, p.X)
}
