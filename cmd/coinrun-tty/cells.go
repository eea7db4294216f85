package main

import (
	"image"
	"image/color"
	"time"
)

// cell is one terminal character drawn as an upper half block: the
// foreground paints the top half, the background the bottom.
type cell struct{ top, bottom color.RGBA }

// fitStep returns the smallest pixel step that fits a pw x ph image into
// cols x rows half-block cells.
func fitStep(pw, ph, cols, rows int) int {
	const maxStep = 8
	s := 1
	for s < maxStep && (ceilDiv(pw, s) > cols || ceilDiv(ph, 2*s) > rows) {
		s++
	}
	return s
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// downsample averages s x s pixel blocks, two blocks per cell.
func downsample(img *image.RGBA, s int) [][]cell {
	b := img.Bounds()
	cols, rows := ceilDiv(b.Dx(), s), ceilDiv(b.Dy(), 2*s)
	out := make([][]cell, rows)
	for cy := range out {
		out[cy] = make([]cell, cols)
		for cx := range out[cy] {
			x0, y0 := b.Min.X+cx*s, b.Min.Y+cy*2*s
			out[cy][cx] = cell{
				top:    average(img, image.Rect(x0, y0, x0+s, y0+s)),
				bottom: average(img, image.Rect(x0, y0+s, x0+s, y0+2*s)),
			}
		}
	}
	return out
}

func average(img *image.RGBA, r image.Rectangle) color.RGBA {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return color.RGBA{A: 0xff}
	}
	var sr, sg, sb, n int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			sr += int(c.R)
			sg += int(c.G)
			sb += int(c.B)
			n++
		}
	}
	return color.RGBA{uint8(sr / n), uint8(sg / n), uint8(sb / n), 0xff}
}

// keyHold fakes key-up events, which terminals never send. A key stays held
// for first after its initial press, covering the terminal's repeat delay,
// and for repeat after each auto-repeat.
type keyHold struct {
	first, repeat time.Duration
	until         map[string]time.Time
}

func newKeyHold(first, repeat time.Duration) *keyHold {
	return &keyHold{first: first, repeat: repeat, until: map[string]time.Time{}}
}

func (k *keyHold) press(name string, now time.Time) {
	d := k.first
	if _, ok := k.until[name]; ok {
		d = k.repeat
	}
	if end := now.Add(d); end.After(k.until[name]) {
		k.until[name] = end
	}
}

// expire returns and forgets the keys whose hold ran out.
func (k *keyHold) expire(now time.Time) []string {
	var out []string
	for name, end := range k.until {
		if !now.Before(end) {
			out = append(out, name)
			delete(k.until, name)
		}
	}
	return out
}
