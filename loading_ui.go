package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/kmartin42/batflight/assets"
)

// loadingUI is the centered panel shown while the scene loads. Widgets are
// built on first draw so headless code paths never touch them.
type loadingUI struct {
	ui       *ebitenui.UI
	progress *widget.Text
}

func newLoadingUI() *loadingUI {
	return &loadingUI{}
}

func (l *loadingUI) build() {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	title := widget.NewText(
		widget.TextOpts.Text("loading scene", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	l.progress = widget.NewText(
		widget.TextOpts.Text("0 / 0", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(l.progress)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	l.ui = &ebitenui.UI{Container: root}
}

func (l *loadingUI) draw(screen *ebiten.Image, pc *assets.ProgressCounter) {
	if l.ui == nil {
		l.build()
	}
	finished, total := pc.Stats()
	l.progress.Label = fmt.Sprintf("%d / %d", finished, total)
	l.ui.Update()
	l.ui.Draw(screen)
}
