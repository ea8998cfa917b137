package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/junglejr/internal/application/game"
	"github.com/younwookim/junglejr/internal/application/remote"
	"github.com/younwookim/junglejr/internal/application/scene/playing"
	"github.com/younwookim/junglejr/internal/application/session"
	"github.com/younwookim/junglejr/internal/application/system"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
	"github.com/younwookim/junglejr/internal/infrastructure/transport"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recording headless and print the outcome")
	levelFlag := flag.String("level", "jungle", "Level name under configs/levels")
	serverFlag := flag.String("server", "", "Server URL, ws://, wss:// or tcp://host:port (overrides "+config.EnvServerURL+")")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Printf("env: %v", err)
	}
	server, err := config.ServerFromEnv()
	if err != nil {
		log.Fatalf("Failed to read server settings: %v", err)
	}
	if *serverFlag != "" {
		server.URL = *serverFlag
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")

	if *replayFlag != "" {
		summary, err := runReplayFile(loader, *replayFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Print(summary)
		return
	}

	cfg, err := loader.LoadAll(*levelFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	s, populate := newLevelSession(cfg)
	if err := populate(s); err != nil {
		log.Printf("Level %s: %v", cfg.Level.ID, err)
	}

	opts := playing.Options{Level: *levelFlag, RecordPath: *recordFlag}
	if server.Online() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := transport.Dial(ctx, server.URL, server.ClientID, server.GameID)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}
		log.Printf("Connected to %s as client %d", server.URL, server.ClientID)
		opts.Link = client
		opts.Dispatcher = remote.NewDispatcher(s, client)
	} else {
		opts.Authority = remote.NewLocal(s, populate)
	}

	g := game.New(playing.New(cfg.Tuning, s, opts), cfg.Tuning.Display)
	defer g.Close()

	d := cfg.Tuning.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle("Jungle Jr")
	ebiten.SetTPS(d.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game ended: %v", err)
	}
}

// newLevelSession builds a session on the level geometry. The returned
// populate spawns the level's starting crocodiles and fruit.
func newLevelSession(cfg *config.GameConfig) (*session.Session, remote.Populate) {
	s := session.New(cfg.Tuning, system.LoadGeometry(cfg.Level))
	populate := func(s *session.Session) error {
		return system.PopulateLevel(cfg.Level, s.Crocodiles, s.Fruits)
	}
	return s, populate
}
