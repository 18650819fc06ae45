package component

import (
	"github.com/kmartin42/batflight/assets"
	"github.com/kmartin42/batflight/ecs"
)

// AnimationSet is the clip table an entity can play, keyed by animation id.
// The instantiation pass fills it from the resolved scene.
type AnimationSet struct {
	Clips map[assets.AnimationID]*assets.Clip
}

// Clip returns the clip for id, if the set has one.
func (s *AnimationSet) Clip(id assets.AnimationID) (*assets.Clip, bool) {
	c, ok := s.Clips[id]
	return c, ok
}

// EndBehavior says what a control does when its clip runs out of frames.
type EndBehavior int

const (
	// EndLoop wraps to the first frame and keeps playing.
	EndLoop EndBehavior = iota
	// EndHold stays on the last frame and stops.
	EndHold
	// EndRemove drops the control from its set.
	EndRemove
)

// Command is an externally requested change to a control, consumed by the
// animation pass on its next tick.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandPause
	CommandAbort
)

// AnimationControl is live playback state for one clip.
type AnimationControl struct {
	ID         assets.AnimationID
	End        EndBehavior
	Rate       float64
	Command    Command
	Frame      int
	FrameTimer float64
	Playing    bool
}

// AnimationControlSet holds the controls running on one entity.
type AnimationControlSet struct {
	Controls map[assets.AnimationID]*AnimationControl
}

// Start adds a control for clip id, or restarts the existing one from the
// first frame.
func (s *AnimationControlSet) Start(id assets.AnimationID, end EndBehavior, rate float64) *AnimationControl {
	if s.Controls == nil {
		s.Controls = make(map[assets.AnimationID]*AnimationControl)
	}
	c := &AnimationControl{
		ID:      id,
		End:     end,
		Rate:    rate,
		Command: CommandStart,
	}
	s.Controls[id] = c
	return c
}

// Has reports whether a control exists for id.
func (s *AnimationControlSet) Has(id assets.AnimationID) bool {
	_, ok := s.Controls[id]
	return ok
}

var (
	AnimationSetKind        = ecs.NewKind[AnimationSet]()
	AnimationControlSetKind = ecs.NewKind[AnimationControlSet]()
)
