// Package hud lays out the screen around the level canvas: the stats bar,
// the touch controls and the end-of-run card.
package hud

import (
	"fmt"
	"strings"

	"coinrun/internal/input"
	"coinrun/internal/render"
	"coinrun/internal/sim"
)

const (
	Zoom      = 2  // canvas pixels per level pixel
	BarH      = 20 // stats bar
	ControlsH = 64
	gap       = 4

	// basicfont.Face7x13 metrics
	CharW = 7
	LineH = 13
)

type Layout struct {
	W, H     int
	Bar      input.Rect
	Canvas   input.Rect
	Controls input.TouchLayout
	Card     input.Rect
}

// NewLayout sizes the screen for a level of pw x ph pixels.
func NewLayout(pw, ph int) Layout {
	w := max(pw*Zoom, 240)
	canvas := input.Rect{X: (w - pw*Zoom) / 2, Y: BarH, W: pw * Zoom, H: ph * Zoom}
	cy := canvas.Y + canvas.H + gap

	cw := min(w-32, 260)
	ch := 112
	return Layout{
		W:        w,
		H:        cy + ControlsH + gap,
		Bar:      input.Rect{W: w, H: BarH},
		Canvas:   canvas,
		Controls: input.DefaultLayout(w, cy, ControlsH),
		Card:     input.Rect{X: (w - cw) / 2, Y: canvas.Y + (canvas.H-ch)/2, W: cw, H: ch},
	}
}

// CardButtons places the card's primary button, and the share button next to
// it when share is true.
func (l Layout) CardButtons(share bool) (primary, shareBtn input.Rect) {
	const bw, bh = 96, 22
	y := l.Card.Y + l.Card.H - bh - 8
	mid := l.Card.X + l.Card.W/2
	if !share {
		return input.Rect{X: mid - bw/2, Y: y, W: bw, H: bh}, input.Rect{}
	}
	return input.Rect{X: mid - bw - 4, Y: y, W: bw, H: bh}, input.Rect{X: mid + 4, Y: y, W: bw, H: bh}
}

// BodyColumns is how many characters of body text fit on the card.
func (l Layout) BodyColumns() int { return (l.Card.W - 24) / CharW }

// Stats returns the bar's three labels, left to right.
func Stats(h render.HUD) []string {
	return []string{
		"Coins: " + h.LevelCoins,
		"Saved: " + h.SavedCoins,
		"Best: " + h.Best,
	}
}

// Wrap breaks s on spaces into lines of at most cols characters. Words longer
// than a line are kept whole.
func Wrap(s string, cols int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > cols {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// ShareText is what the share button copies after a clear.
func ShareText(elapsedMs int64, newBest bool) string {
	msg := fmt.Sprintf("I cleared Coin Run in %s", sim.FormatTime(elapsedMs))
	if newBest {
		return msg + " - a new personal best!"
	}
	return msg + "!"
}
