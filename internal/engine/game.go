// Package engine holds the runner's host-independent machinery: the
// fixed-timestep loop, keyboard state, sprite sheets and the contracts of the
// collaborators (renderer, audio, asset loader, UI) the game talks to.
package engine

import "context"

// Game is the contract between the fixed-step loop and a game.
type Game interface {
	// Initialize loads everything the game needs and returns the ready game.
	// It is called exactly once, before the first Update.
	Initialize(ctx context.Context) (Game, error)

	// Update advances the simulation by one fixed step.
	Update(keys *KeyState)

	// Draw renders the current state. It must not change simulation state.
	Draw(r Renderer)
}
