// Package scene defines the Scene interface for game screens.
//
// The game loop hands Update and Draw to the active scene; a scene asks for
// a transition by returning the next scene from Update.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen
type Scene interface {
	// Update advances the scene by dt seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene (and on shutdown).
	// Release audio voices and flush recordings here.
	OnExit()
}
