package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kmartin42/batflight/ecs"
)

// Camera projects world space onto the screen through an orthographic
// projection over [Left,Right]x[Bottom,Top], y up.
type Camera struct {
	Left, Right float32
	Bottom, Top float32
}

// NewCamera builds a camera covering [0,width]x[0,height].
func NewCamera(width, height float64) *Camera {
	return &Camera{Right: float32(width), Top: float32(height)}
}

// Projection returns the orthographic projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Ortho2D(c.Left, c.Right, c.Bottom, c.Top)
}

// WorldToScreen maps a world position through the projection onto a screen
// of the given pixel size. The y axis flips here: projection space is y up,
// screens are y down.
func (c *Camera) WorldToScreen(x, y float64, screenW, screenH int) (float64, float64) {
	ndc := c.Projection().Mul4x1(mgl32.Vec4{float32(x), float32(y), 0, 1})
	sx := (float64(ndc.X()) + 1) / 2 * float64(screenW)
	sy := (1 - float64(ndc.Y())) / 2 * float64(screenH)
	return sx, sy
}

var CameraKind = ecs.NewKind[Camera]()
