package assets

import "sync/atomic"

// SceneHandle is the slot a pending load resolves into. It can be handed to
// consumers before the loader goroutine finishes; Resolved reports false
// until the scene is published. Resolution happens at most once and the
// scene behind it never changes.
type SceneHandle struct {
	scene atomic.Pointer[Scene]
}

// NewSceneHandle returns an unresolved handle.
func NewSceneHandle() *SceneHandle {
	return &SceneHandle{}
}

// Resolved returns the loaded scene once it is available.
func (h *SceneHandle) Resolved() (*Scene, bool) {
	s := h.scene.Load()
	return s, s != nil
}

// Resolve publishes s through the handle. Only the first call takes
// effect; the loader calls it once per load.
func (h *SceneHandle) Resolve(s *Scene) {
	h.scene.CompareAndSwap(nil, s)
}
