package sim

import (
	"math"

	"coinrun/internal/input"
	"coinrun/internal/level"
)

// Step advances the world by dt seconds under the given intent.
func (w *World) Step(dt float64, in input.Intent) {
	dt = w.clampDt(dt)
	w.applyIntent(in)
	if !w.Run.Running {
		return
	}
	w.move(dt)
	w.detectCoin()
	w.detectHazard()
}

func (w *World) clampDt(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if dt > w.Tuning.MaxDt {
		return w.Tuning.MaxDt
	}
	return dt
}

// applyIntent turns held directions into a velocity of fixed length.
// Diagonals are normalized so they are no faster than straight moves.
func (w *World) applyIntent(in input.Intent) {
	dx, dy := in.Axis()
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		mag = 1
	}
	w.Player.VX = dx / mag * w.Tuning.Speed
	w.Player.VY = dy / mag * w.Tuning.Speed
}

// Blocked reports whether a player box centred at (x, y) touches a wall at
// any of its corners. The box is smaller than a tile, so the corners cover
// every cell it can overlap.
func (w *World) Blocked(x, y float64) bool {
	h := w.Tuning.HalfExtent
	left := int(math.Floor((x - h) / level.TileSize))
	right := int(math.Floor((x + h) / level.TileSize))
	top := int(math.Floor((y - h) / level.TileSize))
	bottom := int(math.Floor((y + h) / level.TileSize))
	return w.Map.Blocking(left, top) ||
		w.Map.Blocking(right, top) ||
		w.Map.Blocking(left, bottom) ||
		w.Map.Blocking(right, bottom)
}

// move resolves each axis on its own so a diagonal push into a wall still
// slides along it.
func (w *World) move(dt float64) {
	nx := w.Player.X + w.Player.VX*dt
	ny := w.Player.Y + w.Player.VY*dt
	if !w.Blocked(nx, w.Player.Y) {
		w.Player.X = nx
	}
	if !w.Blocked(w.Player.X, ny) {
		w.Player.Y = ny
	}
}

// Cell is the grid cell under the player's centre.
func (w *World) Cell() level.Point {
	return level.CellAt(w.Player.X, w.Player.Y)
}

func (w *World) detectCoin() {
	cell := w.Cell()
	if _, ok := w.coins[cell]; !ok {
		return
	}
	delete(w.coins, cell)
	w.Run.CoinsLeft--
	w.Progress.TotalCoins++
	w.save()
	w.log.Debug().Stringer("run", w.Run.ID).Stringer("cell", cell).Int("left", w.Run.CoinsLeft).Msg("coin")
	w.emit(Event{Kind: EventCoin, Cell: cell})

	if w.Run.CoinsLeft > 0 {
		return
	}
	elapsed := w.now().Sub(w.Run.Started).Milliseconds()
	if elapsed < 1 {
		elapsed = 1
	}
	newBest := w.Progress.Improve(elapsed)
	w.save()
	w.Run.LastClearMs = elapsed
	w.finish(clearOverlay(elapsed))
	w.log.Info().Stringer("run", w.Run.ID).Int64("elapsed_ms", elapsed).
		Int64("best_ms", w.Progress.BestMs).Bool("new_best", newBest).Msg("level clear")
	w.emit(Event{Kind: EventClear, Cell: cell, ElapsedMs: elapsed, NewBest: newBest})
}

// detectHazard runs after detectCoin; a clear in the same tick has already
// stopped the run, so clear wins.
func (w *World) detectHazard() {
	if !w.Run.Running {
		return
	}
	cell := w.Cell()
	if w.Map.Classify(cell.X, cell.Y) != level.Hazard {
		return
	}
	w.finish(hazardOverlay())
	w.log.Info().Stringer("run", w.Run.ID).Stringer("cell", cell).Msg("hazard")
	w.emit(Event{Kind: EventHazard, Cell: cell})
}

func (w *World) finish(o Overlay) {
	w.Overlay = o
	w.Run.Running = false
}
