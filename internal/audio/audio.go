// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"coinrun/internal/sim"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

type Cue int

const (
	CueNone Cue = iota
	CueCoin
	CueClear
	CueBest
	CueHazard
)

func (c Cue) String() string {
	switch c {
	case CueCoin:
		return "coin"
	case CueClear:
		return "clear"
	case CueBest:
		return "best"
	case CueHazard:
		return "hazard"
	}
	return "none"
}

// CueFor picks the sound for an event, if any.
func CueFor(e sim.Event) Cue {
	switch e.Kind {
	case sim.EventCoin:
		return CueCoin
	case sim.EventClear:
		if e.NewBest {
			return CueBest
		}
		return CueClear
	case sim.EventHazard:
		return CueHazard
	}
	return CueNone
}

type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[Cue][]note{
	CueCoin:   {{988, 40 * time.Millisecond}, {1319, 70 * time.Millisecond}},
	CueClear:  {{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 160 * time.Millisecond}},
	CueBest:   {{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 80 * time.Millisecond}, {1047, 200 * time.Millisecond}},
	CueHazard: {{220, 120 * time.Millisecond}, {147, 220 * time.Millisecond}},
}

// Player mixes cues onto the speaker. Without a successful Init every call
// is a no-op, so the game runs silently on machines with no audio device.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
	log    zerolog.Logger
}

// NewPlayer makes a player. volume is in beep's log2 steps; 0 leaves the
// tones unchanged, -1 halves them.
func NewPlayer(volume float64, log zerolog.Logger) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume, log: log}
}

func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Hook plays the cue for e. It matches loop.Hook.
func (p *Player) Hook(e sim.Event) {
	if c := CueFor(e); c != CueNone {
		p.Play(c)
	}
}

func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	s, err := stream(c, p.volume)
	if err != nil {
		p.log.Warn().Err(err).Stringer("cue", c).Msg("build cue")
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// stream renders a cue as a finite streamer.
func stream(c Cue, volume float64) (beep.Streamer, error) {
	notes := cues[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, &fade{s: beep.Take(sampleRate.N(n.dur), tone), n: sampleRate.N(n.dur)})
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: volume - 2}, nil
}

// fade applies a short attack and a linear release so notes don't click.
type fade struct {
	s   beep.Streamer
	n   int
	pos int
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	attack := float64(sampleRate.N(5 * time.Millisecond))
	for i := 0; i < n; i++ {
		t := float64(f.pos)
		g := math.Min(t/attack, 1) * (1 - t/float64(f.n))
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }
