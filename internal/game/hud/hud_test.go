package hud

import (
	"reflect"
	"testing"

	"coinrun/internal/input"
	"coinrun/internal/render"
)

func inside(outer, r input.Rect) bool {
	return r.X >= outer.X && r.Y >= outer.Y && r.X+r.W <= outer.X+outer.W && r.Y+r.H <= outer.Y+outer.H
}

func TestDefaultLevelLayout(t *testing.T) {
	l := NewLayout(160, 120)
	if l.W != 320 || l.Canvas != (input.Rect{X: 0, Y: 20, W: 320, H: 240}) {
		t.Fatalf("layout = %+v", l)
	}
	screen := input.Rect{W: l.W, H: l.H}
	for _, b := range l.Controls {
		if !inside(screen, b.Rect) {
			t.Errorf("control %q off screen: %+v", b.Control.Label, b.Rect)
		}
		if b.Y < l.Canvas.Y+l.Canvas.H {
			t.Errorf("control %q overlaps the canvas", b.Control.Label)
		}
	}
	if !inside(l.Canvas, l.Card) {
		t.Errorf("card %+v not over the canvas", l.Card)
	}
}

func TestSmallLevelIsCentered(t *testing.T) {
	l := NewLayout(80, 40)
	if l.W != 240 || l.Canvas.X != 40 {
		t.Fatalf("canvas = %+v in width %d", l.Canvas, l.W)
	}
}

func TestCardButtons(t *testing.T) {
	l := NewLayout(160, 120)
	p, s := l.CardButtons(false)
	if s != (input.Rect{}) || !inside(l.Card, p) {
		t.Fatalf("single button %+v share %+v", p, s)
	}
	p, s = l.CardButtons(true)
	if !inside(l.Card, p) || !inside(l.Card, s) || p.X+p.W > s.X {
		t.Fatalf("buttons overlap or leave the card: %+v %+v", p, s)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("You collected every coin in 0:42. Ready for another run?", 20)
	want := []string{"You collected every", "coin in 0:42. Ready", "for another run?"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap = %q", got)
	}
	if got := Wrap("", 10); got != nil {
		t.Fatalf("empty wrap = %q", got)
	}
	if got := Wrap("supercalifragilistic word", 5); got[0] != "supercalifragilistic" {
		t.Fatalf("long word split: %q", got)
	}
}

func TestStatsAndShare(t *testing.T) {
	got := Stats(render.HUD{LevelCoins: "3", SavedCoins: "12", Best: "--"})
	if got[0] != "Coins: 3" || got[1] != "Saved: 12" || got[2] != "Best: --" {
		t.Fatalf("Stats = %q", got)
	}
	if s := ShareText(65000, false); s != "I cleared Coin Run in 1:05!" {
		t.Fatalf("share = %q", s)
	}
	if s := ShareText(9000, true); s != "I cleared Coin Run in 0:09 - a new personal best!" {
		t.Fatalf("share = %q", s)
	}
}
