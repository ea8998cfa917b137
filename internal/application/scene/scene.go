// Package scene defines the Scene interface for game screens.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the game
var ErrQuit = errors.New("quit")

// Scene is one game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances one frame. dt is the frame length in seconds.
	// Returns the next scene, or nil to stay.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when this scene becomes current.
	OnEnter()

	// OnExit is called when leaving this scene or shutting down.
	OnExit()
}
