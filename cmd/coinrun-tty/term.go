package main

import (
	"image/color"
	"strings"
	"time"

	"coinrun/internal/game/hud"
	"coinrun/internal/input"
	"coinrun/internal/loop"
	"coinrun/internal/render"
	"coinrun/internal/sim"

	"github.com/gdamore/tcell/v2"
)

const mouseID = -1

var (
	styleBar   = tcell.StyleDefault.Foreground(rgb(render.ColorCoin)).Bold(true)
	styleHint  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBtn   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(rgb(render.ColorWallTop))
	styleHeld  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(rgb(render.ColorPlayer))
	styleCard  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(rgb(render.ColorFloor))
	styleClear = styleCard.Foreground(rgb(render.ColorCoin)).Bold(true)
	styleOuch  = styleCard.Foreground(rgb(render.ColorLava)).Bold(true)
	styleGold  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(rgb(render.ColorCoin))
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// tty draws frames with half blocks and turns terminal events into input.
// Everything but event translation runs on the loop goroutine.
type tty struct {
	screen tcell.Screen
	loop   *loop.Loop
	surf   *render.ImageSurface
	hold   *keyHold

	step     int
	x0, y0   int
	controls input.TouchLayout
	cardBtn  input.Rect
	points   map[int][2]int
	seen     map[int]bool
	mouse    bool
}

func newTTY(s tcell.Screen, l *loop.Loop, surf *render.ImageSurface, hold *keyHold) *tty {
	t := &tty{
		screen: s,
		loop:   l,
		surf:   surf,
		hold:   hold,
		points: map[int][2]int{},
		seen:   map[int]bool{},
	}
	t.resize()
	return t
}

// resize fits the canvas under the stats row with three rows left for the
// controls and the hint line.
func (t *tty) resize() {
	cols, rows := t.screen.Size()
	pw, ph := t.loop.World.Map.PixelSize()
	t.step = fitStep(pw, ph, cols, rows-4)
	cw, ch := ceilDiv(pw, t.step), ceilDiv(ph, 2*t.step)
	t.x0, t.y0 = max(0, (cols-cw)/2), 1

	row := t.y0 + ch + 1
	t.controls = input.TouchLayout{
		{Rect: input.Rect{X: t.x0, Y: row, W: 3, H: 1}, Control: input.ControlUp},
		{Rect: input.Rect{X: t.x0 + 4, Y: row, W: 3, H: 1}, Control: input.ControlDown},
		{Rect: input.Rect{X: t.x0 + 8, Y: row, W: 3, H: 1}, Control: input.ControlLeft},
		{Rect: input.Rect{X: t.x0 + 12, Y: row, W: 3, H: 1}, Control: input.ControlRight},
		{Rect: input.Rect{X: t.x0 + max(16, cw-3), Y: row, W: 3, H: 1}, Control: input.ControlReset},
	}
	clear(t.seen)
}

// event turns a terminal event into a job for the loop goroutine. quit is
// true for Esc, Ctrl-C and q.
func (t *tty) event(ev tcell.Event) (job func(), quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		var name string
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return nil, true
		case tcell.KeyEnter:
			return t.confirm, false
		case tcell.KeyUp:
			name = "arrowup"
		case tcell.KeyDown:
			name = "arrowdown"
		case tcell.KeyLeft:
			name = "arrowleft"
		case tcell.KeyRight:
			name = "arrowright"
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q', 'Q':
				return nil, true
			case ' ':
				return t.confirm, false
			default:
				name = string(r)
			}
		}
		if name == "" {
			return nil, false
		}
		when := ev.When()
		return func() {
			if t.loop.Input.Keyboard.KeyDown(name) {
				t.hold.press(input.NormalizeKey(name), when)
			}
		}, false

	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		return func() { t.pointer(x, y, down) }, false

	case *tcell.EventResize:
		return func() {
			t.screen.Sync()
			t.resize()
		}, false
	}
	return nil, false
}

// confirm presses the end-of-run card's button.
func (t *tty) confirm() {
	if t.loop.Frame().Overlay.Visible {
		t.loop.Restart()
	}
}

func (t *tty) pointer(x, y int, down bool) {
	clear(t.points)
	if down {
		t.points[mouseID] = [2]int{x, y}
	}
	t.controls.Track(t.loop.Input.Touch, t.points, t.seen)

	if down && !t.mouse && t.cardBtn.Hit(x, y) {
		t.confirm()
	}
	t.mouse = down
}

// frame runs after every tick.
func (t *tty) frame(f loop.Frame) {
	kb := t.loop.Input.Keyboard
	for _, name := range t.hold.expire(time.Now()) {
		kb.KeyUp(name)
	}
	t.draw(f)
}

func (t *tty) draw(f loop.Frame) {
	t.screen.Clear()
	t.text(t.x0, 0, strings.Join(hud.Stats(f.HUD), "   "), styleBar)

	for cy, row := range downsample(t.surf.Image(), t.step) {
		for cx, c := range row {
			st := tcell.StyleDefault.Foreground(rgb(c.top)).Background(rgb(c.bottom))
			t.screen.SetContent(t.x0+cx, t.y0+cy, '▀', nil, st)
		}
	}

	for _, b := range t.controls {
		st := styleBtn
		if d, ok := t.loop.Input.Touch.Held(mouseID); ok && d == b.Control.Dir && b.Control.Dir != input.DirNone {
			st = styleHeld
		}
		t.text(b.X, b.Y, "["+b.Control.Label+"]", st)
	}
	_, rows := t.screen.Size()
	t.text(t.x0, rows-1, "arrows/wasd move  r reset  q quit", styleHint)

	t.cardBtn = input.Rect{}
	if f.Overlay.Visible {
		t.drawCard(f.Overlay)
	}
	t.screen.Show()
}

func (t *tty) drawCard(o sim.Overlay) {
	pw, ph := t.loop.World.Map.PixelSize()
	cw, ch := ceilDiv(pw, t.step), ceilDiv(ph, 2*t.step)
	w := min(cw-2, 40)
	body := hud.Wrap(o.Body, w-4)
	h := len(body) + 6
	x, y := t.x0+(cw-w)/2, t.y0+max(0, (ch-h)/2)

	for r := 0; r < h; r++ {
		t.text(x, y+r, strings.Repeat(" ", w), styleCard)
	}
	title := styleClear
	if o.Outcome == sim.OutcomeHazard {
		title = styleOuch
	}
	t.centered(x, y+1, w, o.Title, title)
	for i, line := range body {
		t.text(x+2, y+3+i, line, styleCard)
	}
	label := " " + o.Button + " "
	bx := x + (w-len(label))/2
	t.text(bx, y+h-2, label, styleGold)
	t.cardBtn = input.Rect{X: bx, Y: y + h - 2, W: len(label), H: 1}
}

func (t *tty) centered(x, y, w int, s string, st tcell.Style) {
	t.text(x+max(0, (w-len(s))/2), y, s, st)
}

func (t *tty) text(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, st)
	}
}
