// Package sim holds the game state and the per-tick simulation step.
package sim

import (
	"time"

	"coinrun/internal/level"
	"coinrun/internal/persist"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Tuning are the movement constants.
type Tuning struct {
	Speed      float64 // px/s
	MaxDt      float64 // seconds; larger frame gaps are clamped
	HalfExtent float64 // half the player's box edge, px
}

func DefaultTuning() Tuning {
	return Tuning{
		Speed:      42,
		MaxDt:      0.05,
		HalfExtent: level.TileSize * 0.35,
	}
}

type Player struct {
	X, Y   float64
	VX, VY float64
}

// Run is the state of one attempt at the level.
type Run struct {
	ID          uuid.UUID
	CoinsLeft   int
	Running     bool
	Started     time.Time
	LastClearMs int64 // time of the clear that ended this run, 0 otherwise
}

// World is the whole mutable game state. It is owned by a single loop and is
// not safe for concurrent use.
type World struct {
	Map      *level.Map
	Player   Player
	Run      Run
	Progress persist.Progress
	Overlay  Overlay
	Tuning   Tuning

	coins  map[level.Point]struct{}
	events []Event

	now   func() time.Time
	store persist.Store
	log   zerolog.Logger
}

type Option func(*World)

func WithClock(now func() time.Time) Option { return func(w *World) { w.now = now } }
func WithStore(s persist.Store) Option      { return func(w *World) { w.store = s } }
func WithLogger(l zerolog.Logger) Option    { return func(w *World) { w.log = l } }
func WithTuning(t Tuning) Option            { return func(w *World) { w.Tuning = t } }

// NewWorld loads saved progress and builds the level.
func NewWorld(m *level.Map, opts ...Option) *World {
	w := &World{
		Map:    m,
		Tuning: DefaultTuning(),
		coins:  map[level.Point]struct{}{},
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(w)
	}
	if w.store == nil {
		w.store = persist.NewMemoryStore()
	}
	w.Progress = persist.Load(w.store)
	w.BuildLevel()
	return w
}

// BuildLevel puts every coin back, moves the player to the spawn and starts
// the run clock. Overlay visibility is left alone; Restart clears it.
func (w *World) BuildLevel() {
	clear(w.coins)
	for _, p := range w.Map.Coins() {
		w.coins[p] = struct{}{}
	}
	x, y := w.Map.SpawnCenter()
	w.Player = Player{X: x, Y: y}
	w.Run = Run{
		ID:        uuid.New(),
		CoinsLeft: len(w.coins),
		Running:   !w.Overlay.Visible,
		Started:   w.now(),
	}
	w.log.Info().Stringer("run", w.Run.ID).Int("coins", w.Run.CoinsLeft).Msg("level built")
}

// Restart rebuilds the level and resumes play. It is the only way out of a
// terminal state.
func (w *World) Restart() {
	w.Overlay = Overlay{}
	w.BuildLevel()
	w.Run.Running = true
	w.Run.Started = w.now()
	w.emit(Event{Kind: EventRestart})
}

// Coins lists the uncollected coins in row-major order.
func (w *World) Coins() []level.Point {
	out := make([]level.Point, 0, len(w.coins))
	for _, p := range w.Map.Coins() {
		if _, ok := w.coins[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// DrainEvents returns the events raised since the last call.
func (w *World) DrainEvents() []Event {
	ev := w.events
	w.events = nil
	return ev
}

func (w *World) emit(e Event) {
	e.Run = w.Run.ID
	e.CoinsLeft = w.Run.CoinsLeft
	e.TotalCoins = w.Progress.TotalCoins
	e.BestMs = w.Progress.BestMs
	w.events = append(w.events, e)
}

func (w *World) save() {
	if err := persist.Save(w.store, w.Progress); err != nil {
		w.log.Warn().Err(err).Msg("saving progress failed")
	}
}
