package system

import (
	"fmt"

	"github.com/younwookim/junglejr/internal/domain/entity"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
)

// LoadGeometry converts a LevelConfig into static geometry
func LoadGeometry(cfg *config.LevelConfig) *entity.Geometry {
	g := entity.NewGeometry(cfg.Bounds.Rect())
	g.Platforms = toRects(cfg.Platforms)
	g.Vines = toRects(cfg.Vines)
	g.Water = toRects(cfg.Water)
	g.SpawnX = cfg.Spawn.X
	g.SpawnY = cfg.Spawn.Y
	g.WaterLine = cfg.WaterLine
	g.Goal = cfg.Goal.Rect()
	return g
}

func toRects(in []config.RectConfig) []entity.Rect {
	out := make([]entity.Rect, 0, len(in))
	for _, r := range in {
		out = append(out, r.Rect())
	}
	return out
}

// PopulateLevel spawns the level's starting crocodiles and fruit.
// Unknown variant names are reported; the rest still spawn.
func PopulateLevel(cfg *config.LevelConfig, crocs *entity.CrocodilePool, fruits *entity.FruitPool) error {
	var bad []string

	for _, sp := range cfg.Crocodiles {
		v, ok := config.CrocVariant(sp.Variant)
		if !ok {
			bad = append(bad, "crocodile "+sp.Variant)
			continue
		}
		crocs.Spawn(v, sp.X, sp.Y)
	}

	for _, sp := range cfg.Fruits {
		v, ok := config.FruitVariant(sp.Variant)
		if !ok {
			bad = append(bad, "fruit "+sp.Variant)
			continue
		}
		fruits.Spawn(v, sp.X, sp.Y)
	}

	if len(bad) > 0 {
		return fmt.Errorf("level %s: unknown variants %v", cfg.ID, bad)
	}
	return nil
}
