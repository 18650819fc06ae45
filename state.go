package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kmartin42/batflight/ecs"
)

// State is one phase of the app lifecycle. Update returns the next state
// to switch to, nil to stay, or a terminal error that stops the game loop.
// The driver calls OnEnter exactly once when a state becomes current.
type State interface {
	OnEnter(w *ecs.World)
	Update(w *ecs.World) (State, error)
	Draw(w *ecs.World, screen *ebiten.Image)
}
