package component

import (
	"github.com/kmartin42/batflight/assets"
	"github.com/kmartin42/batflight/ecs"
)

// PrefabHandle carries a pending or resolved scene on an entity. The
// instantiation pass expands it into Transform, SpriteRender and
// AnimationSet once the handle resolves, then sets Expanded. Hot reload
// swaps Handle and clears Expanded to schedule re-expansion.
type PrefabHandle struct {
	Handle   *assets.SceneHandle
	Expanded bool
}

var PrefabHandleKind = ecs.NewKind[PrefabHandle]()
