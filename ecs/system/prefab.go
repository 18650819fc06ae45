package system

import (
	"log"

	"github.com/kmartin42/batflight/assets"
	"github.com/kmartin42/batflight/ecs"
	"github.com/kmartin42/batflight/ecs/component"
)

// PrefabSystem expands resolved scene handles into renderable entities.
// Handles that have not resolved yet stay armed and get picked up on a
// later tick.
type PrefabSystem struct{}

func NewPrefabSystem() *PrefabSystem {
	return &PrefabSystem{}
}

func (p *PrefabSystem) Update(w *ecs.World) {
	Expand(w)
}

// Expand runs one instantiation pass and returns how many handles it
// expanded. It is idempotent for already expanded handles. The running
// state also calls it directly on entry so that spawning and starting the
// animation land on the same tick.
func Expand(w *ecs.World) int {
	expanded := 0
	ecs.ForEach(w, component.PrefabHandleKind, func(e ecs.Entity, ph *component.PrefabHandle) {
		if ph.Expanded || ph.Handle == nil {
			return
		}
		scene, ok := ph.Handle.Resolved()
		if !ok {
			return
		}
		instantiate(w, e, scene)
		ph.Expanded = true
		expanded++
	})
	return expanded
}

func instantiate(w *ecs.World, e ecs.Entity, scene *assets.Scene) {
	// Keep an existing transform so re-expansion after a reload does not
	// teleport the entity back to its spawn point.
	if _, ok := ecs.Get(w, e, component.TransformKind); !ok {
		if err := ecs.Add(w, e, component.TransformKind, component.NewTransform(scene.X, scene.Y, 0)); err != nil {
			log.Printf("prefab: attach transform to %v: %v", e, err)
			return
		}
	}

	clips := make(map[assets.AnimationID]*assets.Clip, len(scene.Clips))
	for id, c := range scene.Clips {
		clips[id] = c
	}

	if err := ecs.Add(w, e, component.SpriteRenderKind, &component.SpriteRender{Sheet: scene.Sheet, Index: scene.Index}); err != nil {
		log.Printf("prefab: attach sprite to %v: %v", e, err)
		return
	}
	if err := ecs.Add(w, e, component.AnimationSetKind, &component.AnimationSet{Clips: clips}); err != nil {
		log.Printf("prefab: attach animation set to %v: %v", e, err)
	}
}
