package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// HUD shows coins, score, and health while playing. It consumes the score
// and health-changed notifications.
type HUD struct {
	surface
	coinsLabel  *widget.Text
	healthLabel *widget.Text
}

// newHUD builds the top-left status readout.
func newHUD() *HUD {
	face := uiFace()
	h := &HUD{}

	h.coinsLabel = widget.NewText(
		widget.TextOpts.Text("Coins 0    Score 0", &face, color.NRGBA{R: 0xff, G: 0xe0, B: 0x66, A: 0xff}),
	)
	h.healthLabel = widget.NewText(
		widget.TextOpts.Text("HP 0/0", &face, color.NRGBA{R: 0xff, G: 0x66, B: 0x66, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 140})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(h.coinsLabel)
	panel.AddChild(h.healthLabel)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	h.ui = &ebitenui.UI{Container: root}
	return h
}

// ScoreChanged updates the coin/score readout.
func (h *HUD) ScoreChanged(coins, score int) {
	if h == nil || h.coinsLabel == nil {
		return
	}
	h.coinsLabel.Label = fmt.Sprintf("Coins %d    Score %d", coins, score)
}

// HealthChanged updates the health readout.
func (h *HUD) HealthChanged(current, max int) {
	if h == nil || h.healthLabel == nil {
		return
	}
	h.healthLabel.Label = fmt.Sprintf("HP %d/%d", current, max)
}
