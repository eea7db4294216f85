// Package loop drives one tick of the game: input, simulation, rendering,
// then any deferred reset.
package loop

import (
	"context"
	"time"

	"coinrun/internal/input"
	"coinrun/internal/render"
	"coinrun/internal/sim"

	"github.com/rs/zerolog"
)

// Frame is what the host needs besides the rendered surface.
type Frame struct {
	Number  uint64
	HUD     render.HUD
	Overlay sim.Overlay
	Intent  input.Intent
}

// GamepadSource polls the first connected pad. Nil means no pad support.
type GamepadSource func() input.GamepadState

// Hook receives every simulation event after the frame is rendered.
type Hook func(sim.Event)

type Loop struct {
	World   *sim.World
	Input   *input.Aggregator
	Surface render.Surface

	pad   GamepadSource
	hooks []Hook
	log   zerolog.Logger

	last  time.Time
	frame Frame
}

type Option func(*Loop)

func WithGamepad(src GamepadSource) Option { return func(l *Loop) { l.pad = src } }
func WithHook(h Hook) Option               { return func(l *Loop) { l.hooks = append(l.hooks, h) } }
func WithLogger(log zerolog.Logger) Option { return func(l *Loop) { l.log = log } }

// New makes a loop whose first tick measures dt from start.
func New(w *sim.World, agg *input.Aggregator, s render.Surface, start time.Time, opts ...Option) *Loop {
	l := &Loop{
		World:   w,
		Input:   agg,
		Surface: s,
		log:     zerolog.Nop(),
		last:    start,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Tick runs one frame at time now. Order: poll input, step, render, emit
// events, then apply a reset requested this tick so the frame drawn still
// shows the state before it.
func (l *Loop) Tick(now time.Time) Frame {
	dt := now.Sub(l.last).Seconds()
	l.last = now

	var pad input.GamepadState
	if l.pad != nil {
		pad = l.pad()
	}
	in := l.Input.Poll(pad)

	l.World.Step(dt, in)

	render.Draw(l.Surface, l.World)
	l.frame = Frame{
		Number:  l.frame.Number + 1,
		HUD:     render.HUDFor(l.World),
		Overlay: l.World.Overlay,
		Intent:  in,
	}

	for _, ev := range l.World.DrainEvents() {
		for _, h := range l.hooks {
			h(ev)
		}
	}

	if in.Reset {
		l.Input.ConsumeReset()
		l.log.Debug().Uint64("frame", l.frame.Number).Msg("reset requested")
		l.Restart()
	}
	return l.frame
}

// Restart rebuilds the level right away, e.g. from the overlay button.
func (l *Loop) Restart() {
	l.World.Restart()
	for _, ev := range l.World.DrainEvents() {
		for _, h := range l.hooks {
			h(ev)
		}
	}
}

// Frame returns the most recent frame.
func (l *Loop) Frame() Frame { return l.frame }

// Run calls Tick for every value on ticks until ctx is done or ticks is
// closed. Jobs run between ticks on the same goroutine, so input sources can
// feed the aggregator without locking. After each tick onFrame, if set, sees
// the result.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time, jobs <-chan func(), onFrame func(Frame)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case job, ok := <-jobs:
			if !ok {
				jobs = nil
				continue
			}
			job()
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			f := l.Tick(now)
			if onFrame != nil {
				onFrame(f)
			}
		}
	}
}
