package remote

import (
	"github.com/younwookim/junglejr/internal/application/session"
	"github.com/younwookim/junglejr/internal/application/system"
)

// Offline round rules
const (
	StartingLives = 3
	FruitPoints   = 100
	VictoryPoints = 1000
)

// Populate refills a freshly respawned session with the level's crocodiles
// and fruit
type Populate func(s *session.Session) error

// Local plays the server's part when no server is connected: it keeps
// lives and score, and respawns the player after a death or a win.
type Local struct {
	session  *session.Session
	populate Populate
	hud      HUD
}

// NewLocal creates an offline authority. populate may be nil.
func NewLocal(s *session.Session, populate Populate) *Local {
	return &Local{
		session:  s,
		populate: populate,
		hud:      HUD{Role: RolePlayer, Lives: StartingLives},
	}
}

// HUD returns the current round status
func (l *Local) HUD() HUD {
	return l.hud
}

// Step advances the session one frame and applies the round rules to the
// events it raised. A finished game keeps the player dead until restart.
func (l *Local) Step(in system.Intent) (session.Proposal, error) {
	s := l.session
	p := s.Step(in)

	if _, _, ok := s.ConsumeFruitPick(); ok {
		l.hud.Score += FruitPoints
	}

	if s.ConsumeDeath() {
		l.hud.Lives--
		if l.hud.Lives <= 0 {
			l.hud.Lives = 0
			l.hud.GameOver = true
			return p, nil
		}
		return p, l.respawn()
	}

	if s.ConsumeWin() {
		l.hud.Score += VictoryPoints
		l.hud.Victories++
		s.IncreaseCrocSpeed()
		return p, l.respawn()
	}

	return p, nil
}

// RequestRestart starts a new game at once
func (l *Local) RequestRestart() error {
	l.session.Restart()
	l.hud = HUD{Role: RolePlayer, Lives: StartingLives}
	return l.fill()
}

func (l *Local) respawn() error {
	l.session.Respawn()
	return l.fill()
}

func (l *Local) fill() error {
	if l.populate == nil {
		return nil
	}
	return l.populate(l.session)
}
