// Package scene defines the Scene interface for game screens.
//
// The playing screen is the only scene today; the Game adapter keeps the
// interface so a title or level-select screen can be added beside it.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update when the player asks to leave the game
var ErrQuit = errors.New("quit requested")

// Scene represents a game screen
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ErrQuit to end the game, any other error to abort it.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on quit.
	// Use this to flush recordings and release audio and file watchers.
	OnExit()
}
