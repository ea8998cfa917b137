// Package session owns one running round: the player, the crocodile and
// fruit pools, the level geometry and the shared crocodile speed.
package session

import (
	"github.com/younwookim/junglejr/internal/application/system"
	"github.com/younwookim/junglejr/internal/domain/entity"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
)

// Proposal flag bits
const (
	FlagGrounded uint8 = 1 << 0
	FlagDied     uint8 = 1 << 1
)

// Proposal is the per-frame player state sent to the authoritative peer
type Proposal struct {
	Tick   uint32
	X, Y   int
	VX, VY int
	Flags  uint8
}

// Grounded reports the grounded bit
func (p Proposal) Grounded() bool {
	return p.Flags&FlagGrounded != 0
}

// Died reports the died-this-frame bit
func (p Proposal) Died() bool {
	return p.Flags&FlagDied != 0
}

// Correction is a server adjustment to the player's vertical state
type Correction struct {
	Tick       uint32
	Grounded   bool
	PlatformID int
	Y          int // absolute y when grounded
	VY         int // y delta when airborne
}

// Session runs the simulation core one frame at a time.
// It is not safe for concurrent use; the host loop is its only caller.
type Session struct {
	config   *config.TuningConfig
	geometry *entity.Geometry

	Player     *entity.Player
	Crocodiles *entity.CrocodilePool
	Fruits     *entity.FruitPool

	speed        *system.CrocSpeed
	collision    *system.CollisionSystem
	vines        *system.VineSystem
	movement     *system.MovementSystem
	crocodiles   *system.CrocodileSystem
	interactions *system.InteractionSystem

	tick           uint32
	lastCorrection uint32
}

// New creates a session over the given geometry with the player at the
// level spawn point. A nil geometry is allowed; every query then reports
// nothing found.
func New(cfg *config.TuningConfig, geometry *entity.Geometry) *Session {
	if cfg == nil {
		cfg = config.DefaultTuning()
	}

	collision := system.NewCollisionSystem(geometry)
	vines := system.NewVineSystem(cfg.Vine, geometry)

	s := &Session{
		config:   cfg,
		geometry: geometry,
		Crocodiles: entity.NewCrocodilePool(
			cfg.Crocodile.Capacity, cfg.Crocodile.Width, cfg.Crocodile.Height,
			config.SaturationPolicy(cfg.Crocodile.Saturation),
		),
		Fruits: entity.NewFruitPool(
			cfg.Fruit.Capacity, cfg.Fruit.Width, cfg.Fruit.Height,
			config.SaturationPolicy(cfg.Fruit.Saturation),
		),
		speed:        system.NewCrocSpeed(cfg.Crocodile.BaseSpeed, cfg.Crocodile.MaxSpeed),
		collision:    collision,
		vines:        vines,
		movement:     system.NewMovementSystem(cfg.Movement, collision, vines),
		crocodiles:   system.NewCrocodileSystem(cfg.Crocodile),
		interactions: system.NewInteractionSystem(geometry),
	}

	x, y := s.spawnPoint()
	s.Player = entity.NewPlayer(x, y, cfg.Player.Width, cfg.Player.Height)
	return s
}

// Geometry returns the current level geometry
func (s *Session) Geometry() *entity.Geometry {
	return s.geometry
}

// Tick returns the number of frames stepped so far
func (s *Session) Tick() uint32 {
	return s.tick
}

// CrocSpeed returns the shared crocodile speed
func (s *Session) CrocSpeed() int {
	return s.speed.Value()
}

// LoadGeometry replaces the level geometry wholesale. Vine indices held by
// the player are revalidated against the new geometry and the correction
// tick starts over.
func (s *Session) LoadGeometry(geometry *entity.Geometry) {
	s.geometry = geometry
	s.lastCorrection = 0
	s.collision.SetGeometry(geometry)
	s.vines.SetGeometry(geometry)
	s.interactions.SetGeometry(geometry)
	s.vines.Revalidate(s.Player)
}

// Step runs one frame: player movement, crocodile update, detectors.
// It returns the proposal for this frame.
func (s *Session) Step(in system.Intent) Proposal {
	s.tick++
	wasDead := s.Player.Dead

	s.movement.Update(s.Player, in)
	s.crocodiles.Update(s.Crocodiles, s.geometry, s.speed.Value())
	s.interactions.Update(s.Player, s.Crocodiles, s.Fruits)

	return s.proposal(!wasDead && s.Player.Dead)
}

func (s *Session) proposal(died bool) Proposal {
	p := s.Player
	var flags uint8
	if p.Grounded {
		flags |= FlagGrounded
	}
	if died {
		flags |= FlagDied
	}
	return Proposal{
		Tick:  s.tick,
		X:     p.X,
		Y:     p.Y,
		VX:    p.VX,
		VY:    p.VY,
		Flags: flags,
	}
}

// ApplyCorrection snaps or nudges the player's vertical state.
// Corrections older than the last applied one are ignored, as are
// corrections for a dead player. The result is clamped into the world.
func (s *Session) ApplyCorrection(c Correction) bool {
	if c.Tick < s.lastCorrection || s.Player.Dead {
		return false
	}
	s.lastCorrection = c.Tick

	p := s.Player
	if c.Grounded {
		p.Y = c.Y
		p.VY = 0
		p.Grounded = true
		p.Vine = nil
		p.StopJump()
	} else {
		p.Y += c.VY
		p.Grounded = false
	}

	if s.geometry != nil {
		b := s.geometry.Bounds
		p.Y = max(b.Y, min(p.Y, b.Bottom()-p.H))
	}
	return true
}

// SpawnCrocodile places a crocodile; returns the slot or -1 when refused
func (s *Session) SpawnCrocodile(variant entity.CrocVariant, x, y int) int {
	return s.Crocodiles.Spawn(variant, x, y)
}

// SpawnFruit places a fruit; returns the slot or -1 when refused
func (s *Session) SpawnFruit(variant entity.FruitVariant, x, y int) int {
	return s.Fruits.Spawn(variant, x, y)
}

// RemoveFruitAt removes the fruit at exactly (x, y)
func (s *Session) RemoveFruitAt(x, y int) bool {
	return s.Fruits.RemoveAt(x, y)
}

// ConsumeDeath returns true once per death
func (s *Session) ConsumeDeath() bool {
	return s.Player.JustDied()
}

// ConsumeWin returns true once per win
func (s *Session) ConsumeWin() bool {
	return s.Player.JustWon()
}

// ConsumeFruitPick returns the picked fruit position once per pickup
func (s *Session) ConsumeFruitPick() (x, y int, ok bool) {
	return s.Player.JustPickedFruit()
}

// Respawn starts a fresh life at the spawn point and empties both pools.
// The crocodile speed is kept.
func (s *Session) Respawn() {
	x, y := s.spawnPoint()
	s.Player.Reset(x, y, s.config.Player.Width, s.config.Player.Height)
	s.Crocodiles.Clear()
	s.Fruits.Clear()
}

// Restart is a Respawn that also resets the crocodile speed and the
// correction tick
func (s *Session) Restart() {
	s.Respawn()
	s.speed.Reset()
	s.lastCorrection = 0
}

// IncreaseCrocSpeed ramps the shared crocodile speed by one step
func (s *Session) IncreaseCrocSpeed() {
	s.speed.Increase()
}

func (s *Session) spawnPoint() (int, int) {
	if s.geometry == nil {
		return 0, 0
	}
	return s.geometry.SpawnX, s.geometry.SpawnY
}
