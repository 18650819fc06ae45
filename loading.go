package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kmartin42/batflight/assets"
	"github.com/kmartin42/batflight/ecs"
	"github.com/kmartin42/batflight/prefabs"
)

// LoadingState issues the scene load once on entry, then polls the
// progress counter every tick until the load settles. Completion hands the
// resolved handle to the running state; failure ends the game loop.
type LoadingState struct {
	loader   *assets.Loader
	progress *assets.ProgressCounter
	handle   *assets.SceneHandle
	ui       *loadingUI
}

func NewLoadingState(loader *assets.Loader) *LoadingState {
	return &LoadingState{
		loader:   loader,
		progress: &assets.ProgressCounter{},
		ui:       newLoadingUI(),
	}
}

func (s *LoadingState) OnEnter(*ecs.World) {
	log.Printf("loading %s", prefabs.SceneFile)
	s.handle = s.loader.Load(prefabs.SceneFile, s.progress)
}

func (s *LoadingState) Update(*ecs.World) (State, error) {
	if err := s.progress.Err(); err != nil {
		return nil, fmt.Errorf("scene load failed: %w", err)
	}
	if !s.progress.IsComplete() {
		return nil, nil
	}
	if s.handle == nil {
		panic("loading: progress complete but no scene handle was issued")
	}
	return NewRunningState(s.handle), nil
}

func (s *LoadingState) Draw(_ *ecs.World, screen *ebiten.Image) {
	s.ui.draw(screen, s.progress)
}
