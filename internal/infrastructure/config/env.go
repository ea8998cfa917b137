package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvServerURL = "JUNGLE_SERVER_URL"
	EnvClientID  = "JUNGLE_CLIENT_ID"
	EnvGameID    = "JUNGLE_GAME_ID"
)

// ServerConfig selects the server to join. An empty URL means offline play.
type ServerConfig struct {
	URL      string
	ClientID uint32
	GameID   uint32
}

// Online reports whether a server is configured
func (c ServerConfig) Online() bool {
	return c.URL != ""
}

// LoadEnv loads .env files into the process environment. Missing files are
// skipped; variables already set are kept.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ServerFromEnv reads the server settings from the environment
func ServerFromEnv() (ServerConfig, error) {
	cfg := ServerConfig{URL: os.Getenv(EnvServerURL)}

	var err error
	if cfg.ClientID, err = envUint32(EnvClientID); err != nil {
		return ServerConfig{}, err
	}
	if cfg.GameID, err = envUint32(EnvGameID); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func envUint32(name string) (uint32, error) {
	v := os.Getenv(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return uint32(n), nil
}
