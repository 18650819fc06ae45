package component

import "github.com/kmartin42/batflight/ecs"

// Transform places an entity in world space. Y grows upward; the render
// pass flips into screen coordinates.
type Transform struct {
	X, Y, Z  float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// NewTransform returns a transform at x, y, z with unit scale.
func NewTransform(x, y, z float64) *Transform {
	return &Transform{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1}
}

var TransformKind = ecs.NewKind[Transform]()
