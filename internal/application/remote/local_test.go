package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/junglejr/internal/application/session"
	"github.com/younwookim/junglejr/internal/application/system"
	"github.com/younwookim/junglejr/internal/domain/entity"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
)

func TestLocal_DeathCostsALife(t *testing.T) {
	s := createTestSession()
	populated := 0
	l := NewLocal(s, func(*session.Session) error {
		populated++
		return nil
	})

	s.SpawnCrocodile(entity.CrocRed, 20, 200)
	_, err := l.Step(system.Intent{})
	require.NoError(t, err)

	assert.Equal(t, StartingLives-1, l.HUD().Lives)
	assert.False(t, s.Player.Dead, "player respawned")
	assert.Equal(t, 16, s.Player.X)
	assert.Equal(t, 0, s.Crocodiles.ActiveCount())
	assert.Equal(t, 1, populated)
}

func TestLocal_GameOver(t *testing.T) {
	s := createTestSession()
	l := NewLocal(s, nil)

	for i := 0; i < StartingLives; i++ {
		s.SpawnCrocodile(entity.CrocRed, 20, 200)
		_, err := l.Step(system.Intent{})
		require.NoError(t, err)
	}

	hud := l.HUD()
	assert.Equal(t, 0, hud.Lives)
	assert.True(t, hud.GameOver)
	assert.True(t, s.Player.Dead)

	_, err := l.Step(system.Intent{Right: true})
	require.NoError(t, err)
	assert.Equal(t, 0, l.HUD().Lives, "no further deaths once dead")

	require.NoError(t, l.RequestRestart())
	assert.False(t, s.Player.Dead)
	assert.Equal(t, StartingLives, l.HUD().Lives)
	assert.False(t, l.HUD().GameOver)
}

func TestLocal_FruitAndVictory(t *testing.T) {
	g := createTestGeometry()
	g.Goal = entity.Rect{X: 40, Y: 192, W: 16, H: 16}
	s := session.New(config.DefaultTuning(), g)
	l := NewLocal(s, nil)
	s.SpawnFruit(entity.FruitBanana, 20, 196)

	_, err := l.Step(system.Intent{})
	require.NoError(t, err)
	assert.Equal(t, FruitPoints, l.HUD().Score)

	// Centre reaches the goal at x=40
	for i := 0; i < 40 && l.HUD().Victories == 0; i++ {
		_, err = l.Step(system.Intent{Right: true})
		require.NoError(t, err)
	}

	hud := l.HUD()
	assert.Equal(t, 1, hud.Victories)
	assert.Equal(t, FruitPoints+VictoryPoints, hud.Score)
	assert.Equal(t, 2, s.CrocSpeed())
	assert.Equal(t, 16, s.Player.X, "respawned at spawn")
	assert.False(t, s.Player.Won)
}
