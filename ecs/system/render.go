package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kmartin42/batflight/ecs"
	"github.com/kmartin42/batflight/ecs/component"
)

// RenderSystem draws every sprite through the camera's orthographic
// projection, back to front by transform depth. The screen is cleared to
// black first.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type spriteRow struct {
	e      ecs.Entity
	t      *component.Transform
	sprite *component.SpriteRender
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(color.Black)

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if cam, _, ok := ecs.First(w, component.CameraKind); ok {
			r.camEntity = cam
		}
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraKind)
	if !ok {
		return
	}

	var rows []spriteRow
	ecs.ForEach2(w, component.TransformKind, component.SpriteRenderKind,
		func(e ecs.Entity, t *component.Transform, s *component.SpriteRender) {
			if e == r.camEntity || s.Sheet == nil {
				return
			}
			rows = append(rows, spriteRow{e: e, t: t, sprite: s})
		})
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].t.Z != rows[j].t.Z {
			return rows[i].t.Z < rows[j].t.Z
		}
		return rows[i].e < rows[j].e
	})

	bounds := screen.Bounds()
	for _, row := range rows {
		sheet := row.sprite.Sheet
		if row.sprite.Index < 0 || row.sprite.Index >= sheet.FrameCount() {
			continue
		}
		img := sheet.Image().SubImage(sheet.Rect(row.sprite.Index)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(sheet.FrameWidth)/2, -float64(sheet.FrameHeight)/2)

		sx, sy := row.t.ScaleX, row.t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(row.t.Rotation)

		x, y := cam.WorldToScreen(row.t.X, row.t.Y, bounds.Dx(), bounds.Dy())
		op.GeoM.Translate(x, y)

		screen.DrawImage(img, op)
	}
}
