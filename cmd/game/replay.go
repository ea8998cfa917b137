package main

import (
	"fmt"

	"github.com/younwookim/junglejr/internal/application/remote"
	"github.com/younwookim/junglejr/internal/application/replay"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
)

// ReplayResult is the outcome of a headless replay
type ReplayResult struct {
	Frames    int
	Ticks     uint32
	FinalX    int
	FinalY    int
	Lives     int
	Score     int
	Victories int
	GameOver  bool

	// Trace holds the proposal of every frame
	Trace []ReplayFrame
}

// ReplayFrame is one recorded proposal
type ReplayFrame struct {
	X, Y, VX, VY int
	Flags        uint8
}

// String formats the result for the log
func (r ReplayResult) String() string {
	return fmt.Sprintf("replayed %d frames: pos=(%d,%d) lives=%d score=%d wins=%d gameOver=%v",
		r.Frames, r.FinalX, r.FinalY, r.Lives, r.Score, r.Victories, r.GameOver)
}

// simulateReplay plays every recorded intent through an offline round on
// the given level
func simulateReplay(cfg *config.GameConfig, replayer *replay.Replayer) (ReplayResult, error) {
	s, populate := newLevelSession(cfg)
	if err := populate(s); err != nil {
		return ReplayResult{}, err
	}
	auth := remote.NewLocal(s, populate)

	res := ReplayResult{Trace: make([]ReplayFrame, 0, replayer.TotalFrames())}
	for {
		in, ok := replayer.Next()
		if !ok {
			break
		}
		p, err := auth.Step(in)
		if err != nil {
			return res, fmt.Errorf("frame %d: %w", replayer.CurrentFrame()-1, err)
		}
		res.Trace = append(res.Trace, ReplayFrame{X: p.X, Y: p.Y, VX: p.VX, VY: p.VY, Flags: p.Flags})
		if auth.HUD().GameOver {
			break
		}
	}

	hud := auth.HUD()
	res.Frames = replayer.CurrentFrame()
	res.Ticks = s.Tick()
	res.FinalX = s.Player.X
	res.FinalY = s.Player.Y
	res.Lives = hud.Lives
	res.Score = hud.Score
	res.Victories = hud.Victories
	res.GameOver = hud.GameOver
	return res, nil
}

// runReplayFile loads a recording and its level, then simulates it
func runReplayFile(loader *config.Loader, path string) (ReplayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return ReplayResult{}, err
	}
	level := data.Level
	if level == "" {
		level = "jungle"
	}
	cfg, err := loader.LoadAll(level)
	if err != nil {
		return ReplayResult{}, err
	}
	return simulateReplay(cfg, replay.NewReplayer(*data))
}
