package main

import (
	"fmt"
	"strings"

	"coinrun/internal/level"
	"coinrun/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	zoom     = 4
	toolbarH = 24
	statusH  = 20
)

// tools in toolbar order; keys 1-5 select them
var tools = []level.Kind{level.Wall, level.Floor, level.Hazard, level.Coin, level.Spawn}

var toolKeys = map[ebiten.Key]int{
	ebiten.Key1: 0,
	ebiten.Key2: 1,
	ebiten.Key3: 2,
	ebiten.Key4: 3,
	ebiten.Key5: 4,
}

type editor struct {
	m        *level.Map
	path     string
	tool     int // index into tools
	showGrid bool
	dirty    bool
	status   string

	canvas *ebiten.Image
	surf   render.Surface
}

func (e *editor) screenSize() (int, int) {
	pw, ph := e.m.PixelSize()
	return max(pw*zoom, 480), toolbarH + ph*zoom + statusH
}

// cellAt maps a screen point to a level cell; ok is false off the canvas.
func (e *editor) cellAt(mx, my int) (level.Point, bool) {
	if my < toolbarH {
		return level.Point{}, false
	}
	p := level.Point{X: mx / (level.TileSize * zoom), Y: (my - toolbarH) / (level.TileSize * zoom)}
	return p, p.X < e.m.Width() && p.Y < e.m.Height()
}

// toolAt maps a toolbar click to a tool index.
func toolAt(mx, my int) (int, bool) {
	if my >= toolbarH || mx < 4 {
		return 0, false
	}
	i := (mx - 4) / toolW
	return i, i < len(tools)
}

func (e *editor) Update() error {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i, ok := toolAt(mx, my); ok {
			e.tool = i
		}
	}
	// left paints with the tool, right erases to floor; both drag
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		e.paintAt(mx, my, tools[e.tool])
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		e.paintAt(mx, my, level.Floor)
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if i, ok := toolKeys[k]; ok {
			e.tool = i
			continue
		}
		switch {
		case k == ebiten.KeyS && (ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)):
			e.save()
		case k == ebiten.KeyG:
			e.showGrid = !e.showGrid
		case k == ebiten.KeyEscape:
			return ebiten.Termination
		}
	}
	return nil
}

func (e *editor) paintAt(mx, my int, k level.Kind) {
	p, ok := e.cellAt(mx, my)
	if !ok {
		return
	}
	next, err := e.m.Paint(p, k)
	if err != nil {
		e.status = "Can't: " + err.Error()
		return
	}
	if next != e.m {
		e.m, e.dirty = next, true
		e.status = fmt.Sprintf("%s at %s", k, p)
	}
}

func (e *editor) save() {
	if err := e.m.Save(e.path); err != nil {
		e.status = "Save failed: " + err.Error()
		return
	}
	e.dirty = false
	e.status = "Saved " + e.path
	if warn := e.m.Check(); len(warn) > 0 {
		e.status += " (" + strings.Join(warn, "; ") + ")"
	}
}

func (e *editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.screenSize()
}
