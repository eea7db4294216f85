package main

import (
	"image/color"

	"coinrun/internal/level"
	"coinrun/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const toolW = 72

var (
	barCol  = color.NRGBA{0x22, 0x22, 0x33, 0xff}
	selCol  = color.NRGBA{97, 218, 251, 255}
	gridCol = color.NRGBA{255, 255, 255, 40}
)

func (e *editor) Draw(screen *ebiten.Image) {
	w, h := e.screenSize()
	screen.Fill(render.ColorBackground)

	// toolbar
	ebitenutil.DrawRect(screen, 0, 0, float64(w), toolbarH, barCol)
	for i, k := range tools {
		x := 4 + i*toolW
		if i == e.tool {
			vector.StrokeRect(screen, float32(x), 2, toolW-4, toolbarH-4, 1, selCol, false)
		}
		text.Draw(screen, string(rune('1'+i))+" "+k.String(), basicfont.Face7x13, x+6, 16, color.White)
	}

	// level, player drawn at the spawn
	sx, sy := e.m.SpawnCenter()
	render.DrawScene(e.surf, e.m, e.m.Coins(), sx, sy)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(0, toolbarH)
	screen.DrawImage(e.canvas, op)

	if e.showGrid {
		cs := float32(level.TileSize * zoom)
		for x := 0; x <= e.m.Width(); x++ {
			vector.StrokeLine(screen, float32(x)*cs, toolbarH, float32(x)*cs, toolbarH+float32(e.m.Height())*cs, 1, gridCol, false)
		}
		for y := 0; y <= e.m.Height(); y++ {
			vector.StrokeLine(screen, 0, toolbarH+float32(y)*cs, float32(e.m.Width())*cs, toolbarH+float32(y)*cs, 1, gridCol, false)
		}
	}

	// status line
	status := e.status
	if e.dirty {
		status = "* " + status
	}
	ebitenutil.DrawRect(screen, 0, float64(h-statusH), float64(w), statusH, barCol)
	text.Draw(screen, status, basicfont.Face7x13, 6, h-6, color.White)
}
