package assets

import (
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationID names an animation clip inside a scene descriptor. The set of
// ids is closed; descriptor keys outside it fail the load.
type AnimationID int

const (
	// AnimationFly is the looping flight clip.
	AnimationFly AnimationID = iota
)

func (id AnimationID) String() string {
	switch id {
	case AnimationFly:
		return "fly"
	}
	return fmt.Sprintf("AnimationID(%d)", int(id))
}

// ParseAnimationID maps a descriptor key to its id.
func ParseAnimationID(key string) (AnimationID, bool) {
	switch key {
	case "fly":
		return AnimationFly, true
	}
	return 0, false
}

// Clip is a resolved animation: sprite-sheet indices played in order at a
// fixed rate.
type Clip struct {
	ID     AnimationID
	Frames []int
	FPS    float64
}

// SpriteSheet is a decoded sheet with its frame grid. The ebiten texture is
// created lazily on first Image call so loading and tests stay off the
// render thread.
type SpriteSheet struct {
	Source      image.Image
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int

	once sync.Once
	img  *ebiten.Image
}

// FrameCount returns the number of frames in the grid.
func (s *SpriteSheet) FrameCount() int {
	return s.Columns * s.Rows
}

// Rect returns the sub-rectangle of frame i in sheet pixels.
func (s *SpriteSheet) Rect(i int) image.Rectangle {
	col := i % s.Columns
	row := i / s.Columns
	x := col * s.FrameWidth
	y := row * s.FrameHeight
	return image.Rect(x, y, x+s.FrameWidth, y+s.FrameHeight)
}

// Image returns the sheet as an ebiten texture, converting on first call.
// Call from the render thread only.
func (s *SpriteSheet) Image() *ebiten.Image {
	s.once.Do(func() {
		s.img = ebiten.NewImageFromImage(s.Source)
	})
	return s.img
}

// Scene is a fully resolved descriptor, immutable after the loader publishes
// it through a handle.
type Scene struct {
	Name  string
	Sheet *SpriteSheet
	Index int
	X, Y  float64
	Clips map[AnimationID]*Clip
}

// Clip returns the clip for id, if the scene declares one.
func (s *Scene) Clip(id AnimationID) (*Clip, bool) {
	c, ok := s.Clips[id]
	return c, ok
}
