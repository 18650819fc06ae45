package component

import (
	"github.com/kmartin42/batflight/assets"
	"github.com/kmartin42/batflight/ecs"
)

// SpriteRender draws frame Index of a sprite sheet at the entity transform.
// The frame origin is the sprite center.
type SpriteRender struct {
	Sheet *assets.SpriteSheet
	Index int
}

var SpriteRenderKind = ecs.NewKind[SpriteRender]()
