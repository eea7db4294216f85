package game

import (
	"image/color"

	"coinrun/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// surface draws the scene onto an offscreen ebiten image.
type surface struct{ img *ebiten.Image }

// NewSurface wraps img for render.Draw and render.DrawScene.
func NewSurface(img *ebiten.Image) render.Surface { return surface{img} }

func (s surface) Clear() { s.img.Fill(render.ColorBackground) }

func (s surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

// StrokeRect keeps the 1px line inside the rect.
func (s surface) StrokeRect(x, y, w, h float64, c color.Color) {
	vector.StrokeRect(s.img, float32(x)+0.5, float32(y)+0.5, float32(w)-1, float32(h)-1, 1, c, false)
}
