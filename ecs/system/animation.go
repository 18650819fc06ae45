package system

import (
	"log"

	"github.com/kmartin42/batflight/assets"
	"github.com/kmartin42/batflight/ecs"
	"github.com/kmartin42/batflight/ecs/component"
)

// AnimationSystem steps active animation controls against a 60 TPS tick and
// writes the current clip frame into the entity's sprite. The whole pass
// runs on the tick thread, so a control set is never observed half stepped.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// ControlSet returns the control set on e, attaching an empty one first
// when the entity has none.
func ControlSet(w *ecs.World, e ecs.Entity) (*component.AnimationControlSet, error) {
	if cs, ok := ecs.Get(w, e, component.AnimationControlSetKind); ok {
		return cs, nil
	}
	cs := &component.AnimationControlSet{}
	if err := ecs.Add(w, e, component.AnimationControlSetKind, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationControlSetKind, component.AnimationSetKind,
		func(e ecs.Entity, controls *component.AnimationControlSet, set *component.AnimationSet) {
			sprite, hasSprite := ecs.Get(w, e, component.SpriteRenderKind)

			for id, ctl := range controls.Controls {
				clip, ok := set.Clip(id)
				if !ok || len(clip.Frames) == 0 {
					if ctl.Playing {
						log.Printf("animation: entity %v: clip %s gone, holding", e, id)
						ctl.Playing = false
					}
					continue
				}
				if stepControl(ctl, clip) {
					delete(controls.Controls, id)
					continue
				}
				if ctl.Frame >= len(clip.Frames) {
					ctl.Frame = len(clip.Frames) - 1
				}
				if hasSprite {
					sprite.Index = clip.Frames[ctl.Frame]
				}
			}
		})
}

// stepControl advances one control by one tick and reports whether it
// should be dropped from its set.
func stepControl(ctl *component.AnimationControl, clip *assets.Clip) bool {
	switch ctl.Command {
	case component.CommandStart:
		ctl.Playing = true
		ctl.Frame = 0
		ctl.FrameTimer = 0
		ctl.Command = component.CommandNone
		return false
	case component.CommandPause:
		ctl.Playing = false
		ctl.Command = component.CommandNone
	case component.CommandAbort:
		return true
	}
	if !ctl.Playing {
		return false
	}

	// Advance a frame every N ticks based on clip FPS and 60 TPS; Rate
	// scales how fast the timer fills.
	ticksPerFrame := int(60.0 / clip.FPS)
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	rate := ctl.Rate
	if rate == 0 {
		rate = 1
	}

	ctl.FrameTimer += rate
	for ctl.Playing && ctl.FrameTimer >= float64(ticksPerFrame) {
		ctl.FrameTimer -= float64(ticksPerFrame)
		ctl.Frame++
		if ctl.Frame < len(clip.Frames) {
			continue
		}
		switch ctl.End {
		case component.EndLoop:
			ctl.Frame = 0
		case component.EndHold:
			ctl.Frame = len(clip.Frames) - 1
			ctl.Playing = false
			ctl.FrameTimer = 0
		case component.EndRemove:
			return true
		}
	}
	return false
}
