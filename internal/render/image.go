package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// ImageSurface is a software Surface over an RGBA image. Shapes are
// rasterized with anti-aliased edges.
type ImageSurface struct {
	img *image.RGBA
	z   *vector.Rasterizer
	bg  color.Color
}

func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
		bg:  ColorBackground,
	}
}

func (s *ImageSurface) Image() *image.RGBA { return s.img }

func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.bg), image.Point{}, draw.Src)
}

func (s *ImageSurface) fill(c color.Color) {
	b := s.img.Bounds()
	s.z.Draw(s.img, b, image.NewUniform(c), image.Point{})
	s.z.Reset(b.Dx(), b.Dy())
}

func (s *ImageSurface) rect(x, y, w, h float64) {
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	s.z.MoveTo(x0, y0)
	s.z.LineTo(x1, y0)
	s.z.LineTo(x1, y1)
	s.z.LineTo(x0, y1)
	s.z.ClosePath()
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.rect(x, y, w, h)
	s.fill(c)
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	x, y, k := float32(cx), float32(cy), float32(r*kappa)
	rr := float32(r)
	s.z.MoveTo(x+rr, y)
	s.z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	s.z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	s.z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	s.z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	s.z.ClosePath()
	s.fill(c)
}

// StrokeRect draws a one pixel outline just inside the rectangle.
func (s *ImageSurface) StrokeRect(x, y, w, h float64, c color.Color) {
	s.FillRect(x, y, w, 1, c)
	s.FillRect(x, y+h-1, w, 1, c)
	s.FillRect(x, y+1, 1, h-2, c)
	s.FillRect(x+w-1, y+1, 1, h-2, c)
}
