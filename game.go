package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kmartin42/batflight/assets"
	"github.com/kmartin42/batflight/config"
	"github.com/kmartin42/batflight/ecs"
	"github.com/kmartin42/batflight/ecs/component"
	"github.com/kmartin42/batflight/ecs/system"
	"github.com/kmartin42/batflight/prefabs"
)

// Game drives the state machine and the world systems, one tick per
// ebiten update. Order within a tick: watcher drain, state update (and
// transition), then the world systems.
type Game struct {
	world  *ecs.World
	state  State
	render *system.RenderSystem

	loader         *assets.Loader
	watcher        *prefabs.Watcher
	reloadProgress *assets.ProgressCounter

	display config.Display
}

func NewGame(display config.Display) *Game {
	w := ecs.NewWorld()
	ecs.SetResource(w, ScreenDimensions{
		Width:  float64(display.Width),
		Height: float64(display.Height),
	})

	w.AddSystem(system.NewPrefabSystem())
	w.AddSystem(system.NewAnimationSystem())

	g := &Game{
		world:   w,
		render:  system.NewRenderSystem(),
		loader:  assets.NewLoader(),
		display: display,
	}

	// Watch the on-disk descriptor directory when it exists; embedded
	// data keeps working without it.
	if watcher, err := prefabs.NewWatcher(prefabs.Dir); err == nil {
		g.watcher = watcher
	} else {
		log.Printf("prefab watching disabled: %v", err)
	}

	g.enter(NewLoadingState(g.loader))
	return g
}

func (g *Game) enter(s State) {
	g.state = s
	s.OnEnter(g.world)
}

func (g *Game) Update() error {
	g.drainWatcher()
	g.pollReload()

	next, err := g.state.Update(g.world)
	if err != nil {
		return err
	}
	if next != nil {
		g.enter(next)
	}

	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.state.Draw(g.world, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.Width, g.display.Height
}

// Close releases the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s, reloading", path)
			g.reloadScene()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

// reloadScene issues a fresh load and re-arms every prefab entity with the
// new handle. The instantiation system re-expands once it resolves; while
// the load is in flight the entities keep their last good components.
func (g *Game) reloadScene() {
	pc := &assets.ProgressCounter{}
	h := g.loader.Load(prefabs.SceneFile, pc)
	g.reloadProgress = pc

	rearmed := 0
	ecs.ForEach(g.world, component.PrefabHandleKind, func(_ ecs.Entity, ph *component.PrefabHandle) {
		ph.Handle = h
		ph.Expanded = false
		rearmed++
	})
	if rearmed == 0 {
		log.Print("prefab reload: no scene entities to rearm")
	}
}

func (g *Game) pollReload() {
	if g.reloadProgress == nil {
		return
	}
	if err := g.reloadProgress.Err(); err != nil {
		log.Printf("prefab reload failed: %v", err)
		g.reloadProgress = nil
		return
	}
	if g.reloadProgress.IsComplete() {
		log.Print("prefab reload complete")
		g.reloadProgress = nil
	}
}
