package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kmartin42/batflight/assets"
	"github.com/kmartin42/batflight/ecs"
	"github.com/kmartin42/batflight/ecs/component"
	"github.com/kmartin42/batflight/ecs/system"
)

// makeTestScene hand-builds a resolved scene so the tests never decode
// image data.
func makeTestScene(clips map[assets.AnimationID]*assets.Clip) *assets.Scene {
	return &assets.Scene{
		Name: "bat",
		Sheet: &assets.SpriteSheet{
			FrameWidth:  32,
			FrameHeight: 32,
			Columns:     6,
			Rows:        1,
		},
		X:     400,
		Y:     300,
		Clips: clips,
	}
}

func flyClips() map[assets.AnimationID]*assets.Clip {
	return map[assets.AnimationID]*assets.Clip{
		assets.AnimationFly: {ID: assets.AnimationFly, Frames: []int{4, 3, 2, 1, 0, 5}, FPS: 10},
	}
}

func resolvedHandle(s *assets.Scene) *assets.SceneHandle {
	h := assets.NewSceneHandle()
	h.Resolve(s)
	return h
}

// newRunningWorld mirrors the game wiring: the screen resource plus the
// instantiation and animation systems.
func newRunningWorld() *ecs.World {
	w := ecs.NewWorld()
	ecs.SetResource(w, ScreenDimensions{Width: 800, Height: 600})
	w.AddSystem(system.NewPrefabSystem())
	w.AddSystem(system.NewAnimationSystem())
	return w
}

func TestRunningEntry(t *testing.T) {
	t.Run("spawns_the_camera", func(t *testing.T) {
		w := newRunningWorld()
		s := NewRunningState(resolvedHandle(makeTestScene(flyClips())))
		s.OnEnter(w)

		camEntity, cam, ok := ecs.First(w, component.CameraKind)
		if !ok {
			t.Fatal("no camera entity after entry")
		}
		if cam.Left != 0 || cam.Right != 800 || cam.Bottom != 0 || cam.Top != 600 {
			t.Fatalf("camera spans [%v,%v]x[%v,%v], want [0,800]x[0,600]",
				cam.Left, cam.Right, cam.Bottom, cam.Top)
		}
		tr, ok := ecs.Get(w, camEntity, component.TransformKind)
		if !ok {
			t.Fatal("camera entity has no transform")
		}
		if tr.Z != 1.0 {
			t.Fatalf("camera depth = %v, want 1.0", tr.Z)
		}
		if tr.X != 0 || tr.Y != 0 {
			t.Fatalf("camera position = (%v,%v), want the origin", tr.X, tr.Y)
		}
	})

	t.Run("expands_the_scene_on_entry", func(t *testing.T) {
		scene := makeTestScene(flyClips())
		w := newRunningWorld()
		s := NewRunningState(resolvedHandle(scene))
		s.OnEnter(w)

		e := s.SceneEntity()
		if !w.IsAlive(e) {
			t.Fatal("scene entity not alive")
		}
		ph, ok := ecs.Get(w, e, component.PrefabHandleKind)
		if !ok || !ph.Expanded {
			t.Fatal("scene handle not expanded on entry")
		}
		tr, ok := ecs.Get(w, e, component.TransformKind)
		if !ok {
			t.Fatal("scene entity has no transform")
		}
		if tr.X != 400 || tr.Y != 300 {
			t.Fatalf("scene position = (%v,%v), want (400,300)", tr.X, tr.Y)
		}
		sprite, ok := ecs.Get(w, e, component.SpriteRenderKind)
		if !ok {
			t.Fatal("scene entity has no sprite")
		}
		if sprite.Sheet != scene.Sheet {
			t.Fatal("sprite does not use the scene sheet")
		}
	})

	t.Run("starts_the_fly_clip_looping", func(t *testing.T) {
		w := newRunningWorld()
		s := NewRunningState(resolvedHandle(makeTestScene(flyClips())))
		s.OnEnter(w)

		controls, ok := ecs.Get(w, s.SceneEntity(), component.AnimationControlSetKind)
		if !ok {
			t.Fatal("no control set on the scene entity")
		}
		ctl, ok := controls.Controls[assets.AnimationFly]
		if !ok {
			t.Fatal("fly control missing")
		}
		if ctl.Command != component.CommandStart {
			t.Fatalf("command = %v, want a pending start", ctl.Command)
		}
		if ctl.End != component.EndLoop {
			t.Fatalf("end behavior = %v, want loop", ctl.End)
		}
		if ctl.Rate != 1.0 {
			t.Fatalf("rate = %v, want 1.0", ctl.Rate)
		}
	})

	t.Run("first_tick_shows_the_first_clip_frame", func(t *testing.T) {
		w := newRunningWorld()
		s := NewRunningState(resolvedHandle(makeTestScene(flyClips())))
		s.OnEnter(w)
		w.Update()

		sprite, ok := ecs.Get(w, s.SceneEntity(), component.SpriteRenderKind)
		if !ok {
			t.Fatal("scene entity has no sprite")
		}
		if sprite.Index != 4 {
			t.Fatalf("sprite index = %d, want first clip frame 4", sprite.Index)
		}
		controls, _ := ecs.Get(w, s.SceneEntity(), component.AnimationControlSetKind)
		if !controls.Controls[assets.AnimationFly].Playing {
			t.Fatal("fly clip not playing after the first tick")
		}
	})

	t.Run("panics_when_the_fly_clip_is_missing", func(t *testing.T) {
		w := newRunningWorld()
		s := NewRunningState(resolvedHandle(makeTestScene(map[assets.AnimationID]*assets.Clip{})))

		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected a panic")
			}
			if !strings.Contains(fmt.Sprint(r), "no fly clip") {
				t.Fatalf("panic = %v, want a missing fly clip", r)
			}
		}()
		s.OnEnter(w)
	})

	t.Run("unresolved_handle_expands_on_a_later_tick", func(t *testing.T) {
		scene := makeTestScene(flyClips())
		h := assets.NewSceneHandle()
		w := newRunningWorld()
		s := NewRunningState(h)
		s.OnEnter(w)

		if _, ok := ecs.Get(w, s.SceneEntity(), component.SpriteRenderKind); ok {
			t.Fatal("expanded before the handle resolved")
		}

		h.Resolve(scene)
		w.Update()

		if _, ok := ecs.Get(w, s.SceneEntity(), component.SpriteRenderKind); !ok {
			t.Fatal("not expanded after resolution")
		}
	})
}

func TestRunningIsTerminal(t *testing.T) {
	w := newRunningWorld()
	s := NewRunningState(resolvedHandle(makeTestScene(flyClips())))
	s.OnEnter(w)

	for i := 0; i < 10; i++ {
		next, err := s.Update(w)
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		if next != nil {
			t.Fatalf("update %d: transitioned to %T", i, next)
		}
		w.Update()
	}
}
