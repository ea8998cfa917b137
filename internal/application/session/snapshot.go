package session

import "github.com/younwookim/junglejr/internal/domain/entity"

// EntitySnapshot is one entity for remote rendering. The core does not
// interpret SpriteID.
type EntitySnapshot struct {
	Kind     entity.EntityKind
	SpriteID uint8
	X, Y     int
}

// SpritePicker chooses sprite ids for the snapshot
type SpritePicker interface {
	PlayerSprite(p *entity.Player) uint8
	CrocodileSprite(c *entity.Crocodile) uint8
	FruitSprite(f *entity.Fruit) uint8
}

// VariantSprites uses the entity variant byte as the sprite id and 0 for
// the player
type VariantSprites struct{}

func (VariantSprites) PlayerSprite(*entity.Player) uint8 { return 0 }

func (VariantSprites) CrocodileSprite(c *entity.Crocodile) uint8 { return uint8(c.Variant) }

func (VariantSprites) FruitSprite(f *entity.Fruit) uint8 { return uint8(f.Variant) }

// Snapshot lists the player, then active crocodiles, then active fruit.
// A nil picker falls back to VariantSprites.
func (s *Session) Snapshot(picker SpritePicker) []EntitySnapshot {
	if picker == nil {
		picker = VariantSprites{}
	}

	out := make([]EntitySnapshot, 0, 1+s.Crocodiles.ActiveCount()+s.Fruits.ActiveCount())
	out = append(out, EntitySnapshot{
		Kind:     entity.KindPlayer,
		SpriteID: picker.PlayerSprite(s.Player),
		X:        s.Player.X,
		Y:        s.Player.Y,
	})

	for i := range s.Crocodiles.Slots {
		c := &s.Crocodiles.Slots[i]
		if !c.Active {
			continue
		}
		out = append(out, EntitySnapshot{
			Kind:     entity.KindCrocodile,
			SpriteID: picker.CrocodileSprite(c),
			X:        c.X,
			Y:        c.Y,
		})
	}

	for i := range s.Fruits.Slots {
		f := &s.Fruits.Slots[i]
		if !f.Active {
			continue
		}
		out = append(out, EntitySnapshot{
			Kind:     entity.KindFruit,
			SpriteID: picker.FruitSprite(f),
			X:        f.X,
			Y:        f.Y,
		})
	}

	return out
}
