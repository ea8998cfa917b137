// Package remote connects a session to an authoritative peer, or stands in
// for one when playing offline.
package remote

import (
	"github.com/younwookim/junglejr/internal/application/session"
	"github.com/younwookim/junglejr/internal/application/system"
)

// Role is the seat the server assigned to this client
type Role uint8

const (
	RoleRejected  Role = 0
	RolePlayer    Role = 1
	RoleSpectator Role = 2
)

// HUD is the round status shown to the player
type HUD struct {
	Role      Role
	Lives     int
	Score     int
	GameOver  bool
	Victories int
}

// Authority decides what happens after each simulated frame: deaths,
// wins, pickups, respawns.
type Authority interface {
	Step(in system.Intent) (session.Proposal, error)
	HUD() HUD
	RequestRestart() error
}
