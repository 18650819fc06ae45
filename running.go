package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kmartin42/batflight/assets"
	"github.com/kmartin42/batflight/ecs"
	"github.com/kmartin42/batflight/ecs/component"
	"github.com/kmartin42/batflight/ecs/system"
)

// ScreenDimensions is the world resource carrying the window size in
// pixels. The camera projection spans it.
type ScreenDimensions struct {
	Width  float64
	Height float64
}

// RunningState spawns the camera and the scene entity on entry and starts
// the fly animation. It is terminal: Update never transitions away.
type RunningState struct {
	handle *assets.SceneHandle
	scene  ecs.Entity
}

func NewRunningState(handle *assets.SceneHandle) *RunningState {
	return &RunningState{handle: handle}
}

func (s *RunningState) OnEnter(w *ecs.World) {
	spawnCamera(w)
	s.scene = spawnScene(w, s.handle)

	// Expand before starting so the animation set exists on the entry
	// tick. Handles that resolve later are caught by the per-tick pass.
	system.Expand(w)
	startFlyAnimations(w)
}

func (s *RunningState) Update(*ecs.World) (State, error) {
	return nil, nil
}

func (s *RunningState) Draw(*ecs.World, *ebiten.Image) {}

// SceneEntity returns the entity carrying the scene handle.
func (s *RunningState) SceneEntity() ecs.Entity {
	return s.scene
}

func spawnCamera(w *ecs.World) ecs.Entity {
	dims := ecs.MustResource[ScreenDimensions](w)

	e := w.CreateEntity()
	mustAdd(ecs.Add(w, e, component.CameraKind, component.NewCamera(dims.Width, dims.Height)))
	mustAdd(ecs.Add(w, e, component.TransformKind, component.NewTransform(0, 0, 1.0)))
	return e
}

func spawnScene(w *ecs.World, h *assets.SceneHandle) ecs.Entity {
	e := w.CreateEntity()
	mustAdd(ecs.Add(w, e, component.PrefabHandleKind, &component.PrefabHandle{Handle: h}))
	return e
}

// startFlyAnimations starts the fly clip looping at full rate on every
// entity carrying an animation set. A set without the clip is broken
// content and stops the program.
func startFlyAnimations(w *ecs.World) {
	ecs.ForEach(w, component.AnimationSetKind, func(e ecs.Entity, set *component.AnimationSet) {
		if _, ok := set.Clip(assets.AnimationFly); !ok {
			panic(fmt.Sprintf("running: entity %v has no %s clip", e, assets.AnimationFly))
		}
		controls, err := system.ControlSet(w, e)
		if err != nil {
			panic(fmt.Sprintf("running: control set for %v: %v", e, err))
		}
		controls.Start(assets.AnimationFly, component.EndLoop, 1.0)
	})
}

func mustAdd(err error) {
	if err != nil {
		panic(err)
	}
}
