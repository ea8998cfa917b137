package state

// GameState is the phase of the playing scene
type GameState int

const (
	StateConnecting GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateSpectating
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateConnecting:
		return "Connecting"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateSpectating:
		return "Spectating"
	default:
		return "Unknown"
	}
}

// Accepts reports whether the simulation steps in this state
func (s GameState) Accepts() bool {
	return s == StatePlaying
}
