package input

import (
	"fmt"
	"strings"
)

// MergeMode decides how the sources combine into one Intent.
type MergeMode uint8

const (
	// MergeOr holds a direction if any source holds it.
	MergeOr MergeMode = iota
	// MergeGamepadOverrides lets a connected pad overwrite keyboard and touch
	// directions every tick, as the first release of the game did.
	MergeGamepadOverrides
)

func (m MergeMode) String() string {
	if m == MergeGamepadOverrides {
		return "gamepad-overrides"
	}
	return "or"
}

func ParseMergeMode(s string) (MergeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "or":
		return MergeOr, nil
	case "gamepad-overrides", "legacy":
		return MergeGamepadOverrides, nil
	}
	return MergeOr, fmt.Errorf("unknown merge mode %q", s)
}

// Aggregator merges keyboard, gamepad and touch into an Intent.
type Aggregator struct {
	Keyboard *Keyboard
	Touch    *Touch

	mode  MergeMode
	pad   gamepad
	reset bool
}

func NewAggregator(mode MergeMode, deadZone float64) *Aggregator {
	if deadZone < 0 {
		deadZone = 0
	}
	return &Aggregator{
		Keyboard: NewKeyboard(),
		Touch:    NewTouch(),
		mode:     mode,
		pad:      gamepad{deadZone: deadZone},
	}
}

func (a *Aggregator) Mode() MergeMode { return a.mode }

// Poll samples every source once. The reset flag stays set until
// ConsumeReset, so it reads true for exactly the tick it was triggered in.
func (a *Aggregator) Poll(pad GamepadState) Intent {
	padDirs, padReset := a.pad.read(pad)

	var d dirs
	if a.mode == MergeGamepadOverrides && pad.Connected {
		d = padDirs
	} else {
		d = a.Keyboard.dirs().or(a.Touch.dirs()).or(padDirs)
	}

	if a.Keyboard.takeReset() || a.Touch.takeReset() || padReset {
		a.reset = true
	}
	return Intent{
		Up:    d[DirUp],
		Down:  d[DirDown],
		Left:  d[DirLeft],
		Right: d[DirRight],
		Reset: a.reset,
	}
}

// ConsumeReset clears the one-shot reset flag.
func (a *Aggregator) ConsumeReset() { a.reset = false }
