// Profiling:
// go build ./profile/tick
// go tool pprof -http=":8000" -nodefraction=0.001 ./tick cpu.pprof

package main

import (
	"log"

	"github.com/pkg/profile"

	"github.com/kmartin42/batflight/assets"
	"github.com/kmartin42/batflight/ecs"
	"github.com/kmartin42/batflight/ecs/component"
	"github.com/kmartin42/batflight/ecs/system"
	"github.com/kmartin42/batflight/prefabs"
)

func main() {
	entities := 10000
	ticks := 10000

	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(entities, ticks)
	p.Stop()
}

// run arms numEntities prefab handles with one shared scene and steps the
// world. No window and no rendering; the sheet image stays undecoded on
// the GPU side so the whole loop is plain component work.
func run(numEntities, ticks int) {
	scene, err := loadScene()
	if err != nil {
		log.Fatalf("load scene: %v", err)
	}

	w := ecs.NewWorld()
	w.AddSystem(system.NewPrefabSystem())
	w.AddSystem(system.NewAnimationSystem())

	h := assets.NewSceneHandle()
	h.Resolve(scene)

	for i := 0; i < numEntities; i++ {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.PrefabHandleKind, &component.PrefabHandle{Handle: h}); err != nil {
			log.Fatalf("arm entity %v: %v", e, err)
		}
	}
	system.Expand(w)

	ecs.ForEach(w, component.AnimationSetKind, func(e ecs.Entity, _ *component.AnimationSet) {
		controls, err := system.ControlSet(w, e)
		if err != nil {
			log.Fatalf("control set for %v: %v", e, err)
		}
		controls.Start(assets.AnimationFly, component.EndLoop, 1.0)
	})

	for i := 0; i < ticks; i++ {
		w.Update()
	}
}

func loadScene() (*assets.Scene, error) {
	spec, err := prefabs.Load(prefabs.SceneFile)
	if err != nil {
		return nil, err
	}
	sheet, err := assets.ReadSheet(spec.Sprite.Sheet)
	if err != nil {
		return nil, err
	}
	return assets.ResolveScene(spec, sheet)
}
