package loop

import (
	"context"
	"image/color"
	"testing"
	"time"

	"coinrun/internal/input"
	"coinrun/internal/level"
	"coinrun/internal/render"
	"coinrun/internal/sim"
)

// playerSpy remembers the left edge of the last player body drawn.
type playerSpy struct {
	clears int
	bodyX  float64
}

func (p *playerSpy) Clear() { p.clears++ }
func (p *playerSpy) FillRect(x, y, w, h float64, c color.Color) {
	if c == render.ColorPlayer {
		p.bodyX = x
	}
}
func (p *playerSpy) FillCircle(cx, cy, r float64, c color.Color) {}
func (p *playerSpy) StrokeRect(x, y, w, h float64, c color.Color) {}

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestLoop(t *testing.T, lines []string, opts ...Option) (*Loop, *playerSpy) {
	t.Helper()
	m, err := level.Parse(lines)
	if err != nil {
		t.Fatal(err)
	}
	spy := &playerSpy{}
	w := sim.NewWorld(m)
	return New(w, input.NewAggregator(input.MergeOr, input.DefaultDeadZone), spy, t0, opts...), spy
}

var corridor = []string{
	"##########",
	"#P.......#",
	"##########",
}

func TestTickMovesAndRenders(t *testing.T) {
	l, spy := newTestLoop(t, corridor)
	l.Input.Keyboard.KeyDown("arrowright")

	f := l.Tick(t0.Add(16 * time.Millisecond))
	if f.Number != 1 || !f.Intent.Right {
		t.Fatalf("frame = %+v", f)
	}
	if spy.clears != 1 {
		t.Fatalf("surface cleared %d times, want 1", spy.clears)
	}
	if spy.bodyX != l.World.Player.X-3 || l.World.Player.X <= 12 {
		t.Fatalf("drawn at %v, player at %v", spy.bodyX, l.World.Player.X)
	}
	if f.HUD.LevelCoins != "0" {
		t.Fatalf("HUD = %+v", f.HUD)
	}
}

func TestResetAppliesAfterRender(t *testing.T) {
	l, spy := newTestLoop(t, corridor)
	l.Input.Keyboard.KeyDown("d")
	now := t0
	for i := 0; i < 5; i++ {
		now = now.Add(50 * time.Millisecond)
		l.Tick(now)
	}
	moved := l.World.Player.X

	l.Input.Keyboard.KeyUp("d")
	l.Input.Keyboard.KeyDown("r")
	now = now.Add(50 * time.Millisecond)
	f := l.Tick(now)

	if !f.Intent.Reset {
		t.Fatalf("reset tick should carry the reset intent")
	}
	if spy.bodyX != moved-3 {
		t.Fatalf("reset frame drew player at %v, want pre-reset %v", spy.bodyX+3, moved)
	}
	sx, _ := l.World.Map.SpawnCenter()
	if l.World.Player.X != sx {
		t.Fatalf("player at %v after reset tick, want spawn %v", l.World.Player.X, sx)
	}

	now = now.Add(50 * time.Millisecond)
	if f := l.Tick(now); f.Intent.Reset {
		t.Fatalf("reset fired twice")
	}
}

func TestLargeGapIsClamped(t *testing.T) {
	l, _ := newTestLoop(t, corridor)
	l.Input.Keyboard.KeyDown("d")
	x0 := l.World.Player.X
	l.Tick(t0.Add(10 * time.Second))
	if d := l.World.Player.X - x0; d > l.World.Tuning.Speed*0.05+1e-9 {
		t.Fatalf("moved %v after a 10s gap", d)
	}
}

func TestHooksSeeEvents(t *testing.T) {
	var got []sim.EventKind
	l, _ := newTestLoop(t, []string{
		"#####",
		"#PC.#",
		"#####",
	}, WithHook(func(e sim.Event) { got = append(got, e.Kind) }))
	l.Input.Keyboard.KeyDown("d")
	l.Tick(t0.Add(50 * time.Millisecond))
	l.Tick(t0.Add(100 * time.Millisecond))

	if len(got) != 2 || got[0] != sim.EventCoin || got[1] != sim.EventClear {
		t.Fatalf("events = %v, want coin, clear", got)
	}
	if f := l.Frame(); !f.Overlay.Visible || f.Overlay.Outcome != sim.OutcomeClear {
		t.Fatalf("frame overlay = %+v", f.Overlay)
	}

	l.Restart()
	if got[len(got)-1] != sim.EventRestart {
		t.Fatalf("restart event missing: %v", got)
	}
	if !l.World.Run.Running {
		t.Fatalf("restart did not resume")
	}
}

func TestGamepadSourceIsPolled(t *testing.T) {
	polls := 0
	l, _ := newTestLoop(t, corridor, WithGamepad(func() input.GamepadState {
		polls++
		return input.GamepadState{Connected: true, Axes: [2]float64{1, 0}}
	}))
	f := l.Tick(t0.Add(16 * time.Millisecond))
	if polls != 1 || !f.Intent.Right {
		t.Fatalf("polls=%d intent=%+v", polls, f.Intent)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l, _ := newTestLoop(t, corridor)
	ctx, cancel := context.WithCancel(context.Background())
	ticks := make(chan time.Time)
	jobs := make(chan func())
	frames := make(chan Frame, 4)
	done := make(chan error, 1)

	go func() { done <- l.Run(ctx, ticks, jobs, func(f Frame) { frames <- f }) }()

	jobs <- func() { l.Input.Keyboard.KeyDown("d") }
	ticks <- t0.Add(16 * time.Millisecond)
	f := <-frames
	if !f.Intent.Right {
		t.Fatalf("job did not run before the tick: %+v", f.Intent)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}

func TestRunStopsWhenTicksClose(t *testing.T) {
	l, _ := newTestLoop(t, corridor)
	ticks := make(chan time.Time, 2)
	ticks <- t0.Add(10 * time.Millisecond)
	ticks <- t0.Add(20 * time.Millisecond)
	close(ticks)

	if err := l.Run(context.Background(), ticks, nil, nil); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if l.Frame().Number != 2 {
		t.Fatalf("ran %d frames, want 2", l.Frame().Number)
	}
}
