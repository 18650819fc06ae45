package assets

import (
	"bytes"
	"image"
	_ "image/png"

	"github.com/pkg/errors"

	"github.com/kmartin42/batflight/prefabs"
)

// Loader resolves scene descriptors into ready-to-spawn scenes. Each Load
// runs on its own goroutine, reports through the caller's ProgressCounter,
// and publishes its result through the returned handle.
type Loader struct {
	// ReadSpec and ReadSheet default to the embedded descriptor and sheet
	// files with their disk overrides. Tests swap them for in-memory data.
	ReadSpec  func(name string) (*prefabs.SceneSpec, error)
	ReadSheet func(name string) ([]byte, error)
}

// NewLoader returns a loader bound to the embedded game data.
func NewLoader() *Loader {
	return &Loader{
		ReadSpec:  prefabs.Load,
		ReadSheet: ReadSheet,
	}
}

// Load issues one asynchronous load of the named descriptor. The handle
// resolves only after parsing, sheet decoding and validation all succeed;
// any failure is reported through pc instead.
func (l *Loader) Load(name string, pc *ProgressCounter) *SceneHandle {
	pc.Add(1)
	h := NewSceneHandle()
	go func() {
		scene, err := l.loadScene(name)
		if err != nil {
			pc.Fail(errors.Wrapf(err, "load scene %q", name))
			return
		}
		h.Resolve(scene)
		pc.Done()
	}()
	return h
}

func (l *Loader) loadScene(name string) (*Scene, error) {
	spec, err := l.ReadSpec(name)
	if err != nil {
		return nil, err
	}
	sheet, err := l.ReadSheet(spec.Sprite.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q", spec.Sprite.Sheet)
	}
	return ResolveScene(spec, sheet)
}

// ResolveScene decodes and validates a parsed descriptor against its sheet
// bytes. It is synchronous; Load wraps it in a goroutine. Headless tools
// call it directly.
func ResolveScene(spec *prefabs.SceneSpec, sheet []byte) (*Scene, error) {
	sp := spec.Sprite
	if sp.FrameWidth <= 0 || sp.FrameHeight <= 0 {
		return nil, errors.Errorf("sheet %q: frame size %dx%d must be positive", sp.Sheet, sp.FrameWidth, sp.FrameHeight)
	}
	if sp.Columns <= 0 || sp.Rows <= 0 {
		return nil, errors.Errorf("sheet %q: grid %dx%d must be positive", sp.Sheet, sp.Columns, sp.Rows)
	}

	img, _, err := image.Decode(bytes.NewReader(sheet))
	if err != nil {
		return nil, errors.Wrapf(err, "decode sheet %q", sp.Sheet)
	}
	if b := img.Bounds(); b.Dx() < sp.Columns*sp.FrameWidth || b.Dy() < sp.Rows*sp.FrameHeight {
		return nil, errors.Errorf("sheet %q: image %dx%d cannot hold %dx%d grid of %dx%d frames",
			sp.Sheet, b.Dx(), b.Dy(), sp.Columns, sp.Rows, sp.FrameWidth, sp.FrameHeight)
	}

	sheetData := &SpriteSheet{
		Source:      img,
		FrameWidth:  sp.FrameWidth,
		FrameHeight: sp.FrameHeight,
		Columns:     sp.Columns,
		Rows:        sp.Rows,
	}
	count := sheetData.FrameCount()
	if sp.Index < 0 || sp.Index >= count {
		return nil, errors.Errorf("sheet %q: initial index %d outside [0,%d)", sp.Sheet, sp.Index, count)
	}

	clips := make(map[AnimationID]*Clip, len(spec.Animations))
	for key, cs := range spec.Animations {
		id, ok := ParseAnimationID(key)
		if !ok {
			return nil, errors.Errorf("animation %q is not a known id", key)
		}
		if len(cs.Frames) == 0 {
			return nil, errors.Errorf("animation %q has no frames", key)
		}
		if cs.FPS <= 0 {
			return nil, errors.Errorf("animation %q: fps %v must be positive", key, cs.FPS)
		}
		frames := make([]int, len(cs.Frames))
		for i, f := range cs.Frames {
			if f < 0 || f >= count {
				return nil, errors.Errorf("animation %q: frame %d outside [0,%d)", key, f, count)
			}
			frames[i] = f
		}
		clips[id] = &Clip{ID: id, Frames: frames, FPS: cs.FPS}
	}

	return &Scene{
		Name:  spec.Name,
		Sheet: sheetData,
		Index: sp.Index,
		X:     spec.Transform.X,
		Y:     spec.Transform.Y,
		Clips: clips,
	}, nil
}
