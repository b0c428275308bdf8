package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/aldermoor/highground/component"
)

var (
	playerColor  = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	coinColor    = color.RGBA{0xf2, 0xc6, 0x2d, 0xff}
	heartColor   = color.RGBA{0xd6, 0x3a, 0x3a, 0xff}
	hostileColor = color.RGBA{0x9b, 0x3a, 0xd6, 0xff}
	holeColor    = color.RGBA{0x0a, 0x0a, 0x12, 0xff}
)

// drawWorld renders a top-down view of the field and everything on it.
// World (x, z) maps to screen (x, y); height shows as cell brightness.
func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x14, 0x14, 0x1c, 0xff})

	rows := len(g.field.Heights)
	if rows < 2 {
		return
	}
	cols := len(g.field.Heights[0])

	worldW := float64(cols-1) * g.field.CellSize
	worldD := float64(rows-1) * g.field.CellSize
	scale := (baseHeight * 0.9) / worldD
	if s := (baseWidth * 0.9) / worldW; s < scale {
		scale = s
	}
	offX := (baseWidth - worldW*scale) / 2
	offY := (baseHeight - worldD*scale) / 2

	maxH := 0.0
	for _, row := range g.field.Heights {
		for _, h := range row {
			if h > maxH {
				maxH = h
			}
		}
	}
	if maxH <= 0 {
		maxH = 1
	}

	cell := float32(g.field.CellSize * scale)
	for iz := 0; iz < rows-1; iz++ {
		for ix := 0; ix < cols-1; ix++ {
			x := float32(offX + float64(ix)*g.field.CellSize*scale)
			y := float32(offY + float64(iz)*g.field.CellSize*scale)
			if g.field.Holes != nil && g.field.Holes[[2]int{ix, iz}] {
				vector.DrawFilledRect(screen, x, y, cell, cell, holeColor, false)
				continue
			}
			h := (g.field.Heights[iz][ix] + g.field.Heights[iz+1][ix+1]) / 2
			shade := uint8(0x30 + 0x90*h/maxH)
			vector.DrawFilledRect(screen, x, y, cell, cell, color.RGBA{shade / 2, shade, shade / 2, 0xff}, false)
		}
	}

	toScreen := func(x, z float64) (float32, float32) {
		return float32(offX + x*scale), float32(offY + z*scale)
	}

	for _, id := range g.world.Pickups().IDs() {
		e := g.world.EntityAt(id)
		tr := g.world.GetTransform(e)
		pk := g.world.GetPickup(e)
		if tr == nil || pk == nil {
			continue
		}
		c := coinColor
		if pk.Kind == component.PickupHeart {
			c = heartColor
		}
		sx, sy := toScreen(tr.Pos.X, tr.Pos.Z)
		// Spin shows as a pulse since a top-down disc has no visible yaw.
		r := float32(5 + 1.5*pulse(pk.Angle))
		vector.DrawFilledCircle(screen, sx, sy, r, c, true)
	}

	for _, id := range g.world.Chasers().IDs() {
		e := g.world.EntityAt(id)
		tr := g.world.GetTransform(e)
		if tr == nil {
			continue
		}
		sx, sy := toScreen(tr.Pos.X, tr.Pos.Z)
		vector.DrawFilledCircle(screen, sx, sy, 7, hostileColor, true)
	}

	if tr := g.world.GetTransform(g.world.Player()); tr != nil {
		sx, sy := toScreen(tr.Pos.X, tr.Pos.Z)
		vector.DrawFilledCircle(screen, sx, sy, 8, playerColor, true)
	}
}

// pulse maps an angle to [0, 1] so spinning reads at a glance.
func pulse(angle float64) float64 {
	return math.Abs(math.Sin(angle))
}
