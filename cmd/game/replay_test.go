package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/junglejr/internal/application/remote"
	"github.com/younwookim/junglejr/internal/application/replay"
	"github.com/younwookim/junglejr/internal/application/session"
	"github.com/younwookim/junglejr/internal/application/system"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
)

func createTestLoader() *config.Loader {
	return config.NewLoader("configs")
}

func loadJungle(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := createTestLoader().LoadAll("jungle")
	require.NoError(t, err)
	return cfg
}

func TestReplayIdlePlayer_StaysGrounded(t *testing.T) {
	cfg := loadJungle(t)
	replayer := replay.NewReplayer(replay.CreateTestReplayData(120, system.Intent{}))

	res, err := simulateReplay(cfg, replayer)
	require.NoError(t, err)

	assert.Equal(t, 120, res.Frames)
	assert.Equal(t, uint32(120), res.Ticks)
	assert.Equal(t, 16, res.FinalX)
	assert.Equal(t, 192, res.FinalY)
	assert.Equal(t, remote.StartingLives, res.Lives)

	for i, f := range res.Trace {
		assert.Equal(t, 0, f.VY, "frame %d", i)
		assert.Equal(t, session.FlagGrounded, f.Flags, "frame %d", i)
	}
}

func TestReplayWalkIntoWater_CostsALife(t *testing.T) {
	cfg := loadJungle(t)
	replayer := replay.NewReplayer(replay.CreateTestReplayData(150, system.Intent{Right: true}))

	res, err := simulateReplay(cfg, replayer)
	require.NoError(t, err)

	assert.Equal(t, remote.StartingLives-1, res.Lives)
	assert.False(t, res.GameOver)
	assert.Less(t, res.FinalX, 96, "respawned and walking again")

	var died int
	for _, f := range res.Trace {
		if f.Flags&session.FlagDied != 0 {
			died++
		}
	}
	assert.Equal(t, 1, died)
}

func TestReplayDeterminism(t *testing.T) {
	cfg := loadJungle(t)
	data := replay.CreateTestReplayData(0, system.Intent{})
	pattern := []system.Intent{
		{Right: true}, {Right: true, Jump: true}, {Right: true}, {Up: true}, {Left: true}, {},
	}
	for i := 0; i < 300; i++ {
		data.Frames = append(data.Frames, replay.FrameInput{F: i, Intent: pattern[i%len(pattern)]})
	}

	first, err := simulateReplay(cfg, replay.NewReplayer(data))
	require.NoError(t, err)
	second, err := simulateReplay(loadJungle(t), replay.NewReplayer(data))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunReplayFile(t *testing.T) {
	rec := replay.NewRecorder("jungle")
	for i := 0; i < 10; i++ {
		rec.RecordFrame(system.Intent{Right: true})
	}
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	res, err := runReplayFile(createTestLoader(), path)
	require.NoError(t, err)

	assert.Equal(t, 10, res.Frames)
	assert.Equal(t, 26, res.FinalX)
	assert.Contains(t, res.String(), "replayed 10 frames")
}

func TestRunReplayFile_Missing(t *testing.T) {
	_, err := runReplayFile(createTestLoader(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
