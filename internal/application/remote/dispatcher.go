package remote

import (
	"fmt"

	"github.com/younwookim/junglejr/internal/application/session"
	"github.com/younwookim/junglejr/internal/application/system"
	"github.com/younwookim/junglejr/internal/domain/entity"
	"github.com/younwookim/junglejr/internal/infrastructure/wire"
)

// Sender queues one outbound frame
type Sender interface {
	Send(t wire.MsgType, payload []byte) error
}

// Dispatcher maps inbound frames to session operations and session events
// to outbound frames. Only the frame loop may call it.
type Dispatcher struct {
	session *session.Session
	out     Sender
	hud     HUD
	ready   bool

	remote []wire.EntityRecord
}

// NewDispatcher creates a dispatcher for an online session
func NewDispatcher(s *session.Session, out Sender) *Dispatcher {
	return &Dispatcher{
		session: s,
		out:     out,
		hud:     HUD{Role: RolePlayer},
	}
}

// HUD returns the last server-reported status
func (d *Dispatcher) HUD() HUD {
	return d.hud
}

// Ready reports whether the level geometry has arrived
func (d *Dispatcher) Ready() bool {
	return d.ready
}

// RemoteEntities returns the entities of the last state bundle that
// carried any
func (d *Dispatcher) RemoteEntities() []wire.EntityRecord {
	return d.remote
}

// Handle applies one inbound frame. Unknown types are ignored.
func (d *Dispatcher) Handle(f wire.Frame) error {
	s := d.session

	switch f.Type() {
	case wire.TypeClientAck:
		ack, err := wire.DecodeAck(f.Payload)
		if err != nil {
			return err
		}
		d.hud.Role = Role(ack.Role)

	case wire.TypeInitStatic:
		m, err := wire.DecodeInitStatic(f.Payload)
		if err != nil {
			return err
		}
		s.LoadGeometry(geometryFromInit(m, s.Geometry()))
		s.Respawn()
		d.ready = true

	case wire.TypeStateBundle:
		m, err := wire.DecodeStateBundle(f.Payload)
		if err != nil {
			return err
		}
		d.applyBundle(m)

	case wire.TypeCrocSpawn:
		m, err := wire.DecodeSpawn(f.Payload)
		if err != nil {
			return fmt.Errorf("croc spawn: %w", err)
		}
		s.SpawnCrocodile(entity.CrocVariant(m.Variant), int(m.X), int(m.Y))

	case wire.TypeFruitSpawn:
		m, err := wire.DecodeSpawn(f.Payload)
		if err != nil {
			return fmt.Errorf("fruit spawn: %w", err)
		}
		s.SpawnFruit(entity.FruitVariant(m.Variant), int(m.X), int(m.Y))

	case wire.TypeRemoveFruit:
		m, err := wire.DecodePoint(f.Payload)
		if err != nil {
			return fmt.Errorf("remove fruit: %w", err)
		}
		s.RemoveFruitAt(int(m.X), int(m.Y))

	case wire.TypePlayerRespawn:
		s.Respawn()

	case wire.TypeRespawnVictory:
		d.hud.Victories++
		s.Respawn()

	case wire.TypeGameOver:
		d.hud.GameOver = true

	case wire.TypeGameRestart:
		d.hud.GameOver = false
		d.hud.Victories = 0
		s.Restart()

	case wire.TypeCrocSpeedIncrease:
		s.IncreaseCrocSpeed()

	case wire.TypeLivesUpdate:
		v, err := wire.DecodeLives(f.Payload)
		if err != nil {
			return err
		}
		d.hud.Lives = int(v)

	case wire.TypeScoreUpdate:
		v, err := wire.DecodeScore(f.Payload)
		if err != nil {
			return err
		}
		d.hud.Score = int(v)

	case wire.TypePing:
		return d.out.Send(wire.TypePong, f.Payload)
	}
	return nil
}

// HandleAll applies frames in order and returns the first error.
// Later frames are still applied after a bad one.
func (d *Dispatcher) HandleAll(frames []wire.Frame) error {
	var first error
	for _, f := range frames {
		if err := d.Handle(f); err != nil && first == nil {
			first = fmt.Errorf("%s: %w", f.Type(), err)
		}
	}
	return first
}

func (d *Dispatcher) applyBundle(m wire.StateBundle) {
	var tick uint32
	if m.Tick != nil {
		tick = *m.Tick
	}
	if c := m.Correction; c != nil {
		d.session.ApplyCorrection(session.Correction{
			Tick:       tick,
			Grounded:   c.Grounded,
			PlatformID: int(c.PlatformID),
			Y:          int(c.Y),
			VY:         int(c.VY),
		})
	}
	if m.Entities != nil {
		d.remote = m.Entities
	}
}

// Step advances the session one frame, sends the proposal and then one
// notification per event raised this frame.
func (d *Dispatcher) Step(in system.Intent) (session.Proposal, error) {
	p := d.session.Step(in)

	err := d.out.Send(wire.TypePlayerProp,
		wire.NewPlayerProp(p.Tick, p.X, p.Y, p.VX, p.VY, p.Flags).Encode())
	if ferr := d.flushEvents(); err == nil {
		err = ferr
	}
	return p, err
}

func (d *Dispatcher) flushEvents() error {
	s := d.session
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	if s.ConsumeDeath() {
		keep(d.out.Send(wire.TypeNotifyDeath, nil))
	}
	if x, y, ok := s.ConsumeFruitPick(); ok {
		keep(d.out.Send(wire.TypeNotifyFruitPick, wire.NewPoint(x, y).Encode()))
	}
	if s.ConsumeWin() {
		keep(d.out.Send(wire.TypeNotifyVictory, nil))
	}
	return first
}

// RequestRestart asks the server for a new game
func (d *Dispatcher) RequestRestart() error {
	return d.out.Send(wire.TypeRequestRestart, nil)
}

// geometryFromInit builds level geometry from INIT_STATIC. The world bounds
// and goal carry over from the previous geometry; the player rect becomes
// the spawn point.
func geometryFromInit(m wire.InitStatic, prev *entity.Geometry) *entity.Geometry {
	g := entity.NewGeometry(entity.Rect{W: 256, H: 240})
	if prev != nil {
		g.Bounds = prev.Bounds
		g.Goal = prev.Goal
		g.WaterLine = prev.WaterLine
	}
	g.Platforms = fromWire(m.Platforms)
	g.Vines = fromWire(m.Vines)
	g.Water = fromWire(m.Water)
	g.SpawnX = int(m.Player.X)
	g.SpawnY = int(m.Player.Y)
	return g
}

func fromWire(in []wire.Rect) []entity.Rect {
	out := make([]entity.Rect, 0, len(in))
	for _, r := range in {
		out = append(out, entity.Rect{
			X: int(r.X),
			Y: int(r.Y),
			W: max(0, int(r.W)),
			H: max(0, int(r.H)),
		})
	}
	return out
}
