package sim

import (
	"coinrun/internal/level"

	"github.com/google/uuid"
)

type EventKind uint8

const (
	EventCoin EventKind = iota + 1
	EventClear
	EventHazard
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventCoin:
		return "coin"
	case EventClear:
		return "clear"
	case EventHazard:
		return "hazard"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

// Event is something the frontends may want to react to (sound, logs).
// The counters are a snapshot taken when the event was raised.
type Event struct {
	Kind       EventKind
	Run        uuid.UUID
	Cell       level.Point
	CoinsLeft  int
	TotalCoins int
	ElapsedMs  int64
	BestMs     int64
	NewBest    bool
}
