package config

import "github.com/younwookim/junglejr/internal/domain/entity"

// Pool saturation policies accepted in tuning.json
const (
	SaturationOverwrite = "overwrite"
	SaturationRefuse    = "refuse"
)

type PlayerConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type CrocodileConfig struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Capacity   int    `json:"capacity"`
	Divider    int    `json:"divider"`    // move once every N frames
	BaseSpeed  int    `json:"baseSpeed"`  // pixels per movement step
	MaxSpeed   int    `json:"maxSpeed"`   // difficulty ramp ceiling
	FallMargin int    `json:"fallMargin"` // pixels past the world bottom before despawn
	Saturation string `json:"saturation"` // "overwrite" or "refuse"
}

type FruitConfig struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Capacity   int    `json:"capacity"`
	Saturation string `json:"saturation"`
}

// SaturationPolicy maps a config string to a pool policy.
// Unknown values fall back to overwriting slot 0.
func SaturationPolicy(s string) entity.SaturationPolicy {
	if s == SaturationRefuse {
		return entity.RefuseSpawn
	}
	return entity.OverwriteFirst
}
