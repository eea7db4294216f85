package sim

import "fmt"

// Outcome is how a run ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeClear
	OutcomeHazard
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClear:
		return "clear"
	case OutcomeHazard:
		return "hazard"
	}
	return "none"
}

// Overlay is the modal message shown when a run ends.
type Overlay struct {
	Visible bool
	Outcome Outcome
	Title   string
	Body    string
	Button  string
}

const (
	TitleClear  = "Level Clear!"
	TitleHazard = "Ouch!"
)

func clearOverlay(elapsedMs int64) Overlay {
	return Overlay{
		Visible: true,
		Outcome: OutcomeClear,
		Title:   TitleClear,
		Body:    fmt.Sprintf("You collected every coin in %s. Ready for another run?", FormatTime(elapsedMs)),
		Button:  "Play Again",
	}
}

func hazardOverlay() Overlay {
	return Overlay{
		Visible: true,
		Outcome: OutcomeHazard,
		Title:   TitleHazard,
		Body:    "Lava resets your run. Try again.",
		Button:  "Retry",
	}
}

// FormatTime renders milliseconds as M:SS.
func FormatTime(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	s := ms / 1000
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
