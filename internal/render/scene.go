// Package render draws the playfield onto any Surface.
package render

import (
	"image/color"
	"strconv"

	"coinrun/internal/level"
	"coinrun/internal/sim"
)

// Surface is a fixed-size raster addressed in pixels.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeRect(x, y, w, h float64, c color.Color)
}

const ts = level.TileSize

// Draw redraws the whole playfield for the current world state.
func Draw(s Surface, w *sim.World) {
	DrawScene(s, w.Map, w.Coins(), w.Player.X, w.Player.Y)
}

// DrawScene clears s and draws tiles, then coins, then the player centred at
// (px, py).
func DrawScene(s Surface, m *level.Map, coins []level.Point, px, py float64) {
	s.Clear()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			drawTile(s, x, y, m.Classify(x, y))
		}
	}
	for _, c := range coins {
		drawCoin(s, c)
	}
	drawPlayer(s, px, py)
}

func drawTile(s Surface, x, y int, k level.Kind) {
	px, py := float64(x*ts), float64(y*ts)
	switch k {
	case level.Wall:
		// two tones fake a top face over a side face
		s.FillRect(px, py+ts/2, ts, ts/2, ColorWallSide)
		s.FillRect(px, py, ts, ts/2, ColorWallTop)
		s.StrokeRect(px, py, ts, ts, ColorWallEdge)
	case level.Hazard:
		s.FillRect(px, py, ts, ts, ColorLava)
		s.FillRect(px, py, ts, ts/3.0, ColorLavaGlow)
	default:
		s.FillRect(px, py, ts, ts, ColorFloor)
	}
}

func drawCoin(s Surface, p level.Point) {
	cx, cy := level.CellCenter(p)
	s.FillCircle(cx, cy, ts*0.3, ColorCoin)
	s.FillCircle(cx-1, cy-1, ts*0.12, ColorCoinHighlight)
}

func drawPlayer(s Surface, px, py float64) {
	s.FillRect(px-3, py+1, 6, 4, ColorPlayerShadow)
	s.FillRect(px-3, py-4, 6, 6, ColorPlayer)
	s.FillRect(px-2, py-3, 2, 2, ColorEye)
}

// HUD is the text shown next to the playfield.
type HUD struct {
	LevelCoins string
	SavedCoins string
	Best       string
}

const noBest = "--"

func HUDFor(w *sim.World) HUD {
	best := noBest
	if w.Progress.HasBest() {
		best = sim.FormatTime(w.Progress.BestMs)
	}
	return HUD{
		LevelCoins: strconv.Itoa(w.Run.CoinsLeft),
		SavedCoins: strconv.Itoa(w.Progress.TotalCoins),
		Best:       best,
	}
}
