// Command leveledit edits Coin Run layout files.
//
// Keys 1-5 (or the toolbar) pick wall, floor, lava, coin or spawn. Left
// mouse paints, right mouse erases to floor, G toggles the grid, Ctrl+S
// saves. Play the result with coinrun -level <file>.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"coinrun/internal/game"
	"coinrun/internal/level"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var path string
	var w, h int
	flag.StringVar(&path, "level", "level.txt", "layout file to edit (created on first save)")
	flag.IntVar(&w, "w", 20, "width of a new level")
	flag.IntVar(&h, "h", 15, "height of a new level")
	flag.Parse()
	log.SetFlags(0)

	m, existed, err := open(path, w, h)
	if err != nil {
		log.Fatal(err)
	}
	pw, ph := m.PixelSize()
	ed := &editor{m: m, path: path, status: "New level " + path}
	if existed {
		ed.status = "Loaded " + path
	}
	ed.canvas = ebiten.NewImage(pw, ph)
	ed.surf = game.NewSurface(ed.canvas)

	sw, sh := ed.screenSize()
	ebiten.SetWindowTitle("Coin Run Level Editor")
	ebiten.SetWindowSize(sw, sh)
	if err := ebiten.RunGame(ed); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

// open loads path, or starts a blank level when it doesn't exist yet.
func open(path string, w, h int) (*level.Map, bool, error) {
	m, err := level.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		m, err = level.Blank(w, h)
		return m, false, err
	}
	return m, err == nil, err
}
