package config

import "github.com/younwookim/junglejr/internal/domain/entity"

// LevelConfig is the root config for levels/<name>.yaml
type LevelConfig struct {
	ID         string             `yaml:"id"`
	Name       string             `yaml:"name"`
	Bounds     RectConfig         `yaml:"bounds"`
	Spawn      PositionConfig     `yaml:"spawn"`
	Platforms  []RectConfig       `yaml:"platforms"`
	Vines      []RectConfig       `yaml:"vines"`
	Water      []RectConfig       `yaml:"water"`
	WaterLine  int                `yaml:"waterLine"` // 0 disables the line test
	Goal       RectConfig         `yaml:"goal"`
	Crocodiles []EntitySpawnConfig `yaml:"crocodiles"`
	Fruits     []EntitySpawnConfig `yaml:"fruits"`
}

type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Rect converts to a domain rect; negative sizes clamp to zero
func (r RectConfig) Rect() entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: max(r.W, 0), H: max(r.H, 0)}
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// EntitySpawnConfig places a crocodile or fruit at level start
type EntitySpawnConfig struct {
	Variant string `yaml:"variant"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
}

// CrocVariant maps a level variant name to a crocodile variant
func CrocVariant(name string) (entity.CrocVariant, bool) {
	switch name {
	case "red":
		return entity.CrocRed, true
	case "blue":
		return entity.CrocBlue, true
	}
	return 0, false
}

// FruitVariant maps a level variant name to a fruit variant
func FruitVariant(name string) (entity.FruitVariant, bool) {
	switch name {
	case "banana":
		return entity.FruitBanana, true
	case "apple":
		return entity.FruitApple, true
	case "orange":
		return entity.FruitOrange, true
	}
	return 0, false
}
