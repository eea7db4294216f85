package game

import (
	"image/color"
	"time"

	"coinrun/internal/game/hud"
	"coinrun/internal/input"
	"coinrun/internal/render"
	"coinrun/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colText     = color.NRGBA{230, 234, 255, 255}
	colDim      = color.NRGBA{0, 0, 0, 140}
	colButton   = color.NRGBA{40, 48, 88, 220}
	colHeld     = color.NRGBA{97, 218, 251, 200}
	colCard     = color.NRGBA{18, 25, 51, 240}
	colCardEdge = color.NRGBA{120, 170, 255, 70}
	colLabel    = color.NRGBA{40, 22, 8, 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBackground)
	f := g.loop.Frame()

	g.drawBar(screen, f.HUD)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hud.Zoom, hud.Zoom)
	op.GeoM.Translate(float64(g.lay.Canvas.X), float64(g.lay.Canvas.Y))
	screen.DrawImage(g.canvas, op)

	g.drawControls(screen, f.Intent)
	if f.Overlay.Visible {
		g.drawCard(screen, f.Overlay)
	}
	if g.status != "" && time.Now().Before(g.statusEnd) {
		x := (g.lay.W - len(g.status)*hud.CharW) / 2
		text.Draw(screen, g.status, basicfont.Face7x13, x, g.lay.H-6, colText)
	}
}

func (g *Game) drawBar(dst *ebiten.Image, h render.HUD) {
	b := g.lay.Bar
	ebitenutil.DrawRect(dst, float64(b.X), float64(b.Y), float64(b.W), float64(b.H), render.ColorWallSide)
	for i, s := range hud.Stats(h) {
		text.Draw(dst, s, basicfont.Face7x13, b.X+6+i*b.W/3, b.Y+14, colText)
	}
}

func held(in input.Intent, d input.Dir) bool {
	switch d {
	case input.DirUp:
		return in.Up
	case input.DirDown:
		return in.Down
	case input.DirLeft:
		return in.Left
	case input.DirRight:
		return in.Right
	}
	return false
}

func (g *Game) drawControls(dst *ebiten.Image, in input.Intent) {
	for _, b := range g.lay.Controls {
		col := colButton
		if held(in, b.Control.Dir) {
			col = colHeld
		}
		fillRoundRect(dst, b.X+2, b.Y+2, b.W-4, b.H-4, 6, col)
		drawCentered(dst, b.Rect, b.Control.Label, colText)
	}
}

func (g *Game) drawCard(dst *ebiten.Image, o sim.Overlay) {
	cv := g.lay.Canvas
	vector.DrawFilledRect(dst, float32(cv.X), float32(cv.Y), float32(cv.W), float32(cv.H), colDim, false)

	c := g.lay.Card
	fillRoundRect(dst, c.X-1, c.Y-1, c.W+2, c.H+2, 12, colCardEdge)
	fillRoundRect(dst, c.X, c.Y, c.W, c.H, 12, colCard)

	titleCol := color.Color(render.ColorCoin)
	if o.Outcome == sim.OutcomeHazard {
		titleCol = render.ColorLava
	}
	drawCentered(dst, input.Rect{X: c.X, Y: c.Y + 6, W: c.W, H: 18}, o.Title, titleCol)

	y := c.Y + 24 + hud.LineH
	for _, line := range hud.Wrap(o.Body, g.lay.BodyColumns()) {
		text.Draw(dst, line, basicfont.Face7x13, c.X+12, y, colText)
		y += hud.LineH
	}

	primary, share := g.lay.CardButtons(g.canShare())
	drawGoldButton(dst, primary, o.Button)
	if g.canShare() {
		drawGoldButton(dst, share, "Share")
	}
}

// fillRoundRect draws a rounded rectangle via rects + 4 corner circles.
func fillRoundRect(dst *ebiten.Image, x, y, w, h int, r float32, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r = min(max(r, 0), float32(min(w, h))/2)

	ebitenutil.DrawRect(dst, float64(x)+float64(r), float64(y), float64(w)-float64(2*r), float64(h), col)
	ebitenutil.DrawRect(dst, float64(x), float64(y)+float64(r), float64(r), float64(h)-float64(2*r), col)
	ebitenutil.DrawRect(dst, float64(x+w)-float64(r), float64(y)+float64(r), float64(r), float64(h)-float64(2*r), col)
	vector.DrawFilledCircle(dst, float32(x)+r, float32(y)+r, r, col, true)
	vector.DrawFilledCircle(dst, float32(x+w)-r, float32(y)+r, r, col, true)
	vector.DrawFilledCircle(dst, float32(x)+r, float32(y+h)-r, r, col, true)
	vector.DrawFilledCircle(dst, float32(x+w)-r, float32(y+h)-r, r, col, true)
}

func drawGoldButton(dst *ebiten.Image, r input.Rect, label string) {
	fillRoundRect(dst, r.X-1, r.Y+2, r.W+2, r.H+2, 8, color.NRGBA{0, 0, 0, 80})
	fillRoundRect(dst, r.X, r.Y, r.W, r.H, 8, render.ColorCoin)
	// sheen
	fillRoundRect(dst, r.X+3, r.Y+2, r.W-6, (r.H-4)/2, 6, render.ColorCoinHighlight)
	drawCentered(dst, r, label, colLabel)
}

func drawCentered(dst *ebiten.Image, r input.Rect, label string, col color.Color) {
	lb := text.BoundString(basicfont.Face7x13, label)
	tx := r.X + (r.W-lb.Dx())/2
	ty := r.Y + (r.H+lb.Dy())/2 - 1
	text.Draw(dst, label, basicfont.Face7x13, tx, ty, col)
}
