// Package app wires a playable session from config: level, progress store,
// simulation, input and sound. Hosts add their own surface and loop.
package app

import (
	"fmt"

	"coinrun/internal/audio"
	"coinrun/internal/config"
	"coinrun/internal/input"
	"coinrun/internal/level"
	"coinrun/internal/loop"
	"coinrun/internal/persist"
	"coinrun/internal/sim"

	"github.com/rs/zerolog"
)

type Session struct {
	World *sim.World
	Input *input.Aggregator
	Hooks []loop.Hook
	Store persist.Store

	closers []func()
}

// Open builds a session. Only a bad level file is fatal; a store or audio
// device that can't be opened is logged and replaced by an in-memory store or
// silence.
func Open(cfg config.Config, log zerolog.Logger) (*Session, error) {
	m := level.Default()
	if cfg.Level != "" {
		var err error
		if m, err = level.Load(cfg.Level); err != nil {
			return nil, fmt.Errorf("level %s: %w", cfg.Level, err)
		}
		log.Info().Str("path", cfg.Level).Int("coins", len(m.Coins())).Msg("custom level loaded")
	}

	s := &Session{Store: openStore(cfg.Store, log)}
	s.World = sim.NewWorld(m,
		sim.WithStore(s.Store),
		sim.WithLogger(log),
		sim.WithTuning(cfg.SimTuning()),
	)
	s.Input = input.NewAggregator(cfg.MergeMode(), cfg.Input.DeadZone)
	s.Hooks = append(s.Hooks, logEvents(log))

	if cfg.Audio.Enabled {
		p := audio.NewPlayer(cfg.Audio.Volume, log)
		if err := p.Init(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, playing silently")
		} else {
			s.Hooks = append(s.Hooks, p.Hook)
			s.closers = append(s.closers, p.Close)
		}
	}
	return s, nil
}

func (s *Session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

func openStore(c config.Store, log zerolog.Logger) persist.Store {
	codec, err := persist.CodecFor(c.Format)
	if err != nil {
		log.Warn().Err(err).Msg("progress will not be saved")
		return persist.NewMemoryStore()
	}
	dir, err := persist.ConfigDir(c.Dir, c.Profile)
	if err != nil {
		log.Warn().Err(err).Msg("no config dir, progress will not be saved")
		return persist.NewMemoryStore()
	}
	fs, err := persist.OpenFileStore(dir, codec, log)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("progress will not be saved")
		return persist.NewMemoryStore()
	}
	log.Info().Str("path", fs.Path()).Msg("progress store")
	return fs
}

func logEvents(log zerolog.Logger) loop.Hook {
	return func(e sim.Event) {
		switch e.Kind {
		case sim.EventClear:
			log.Info().Str("run", e.Run.String()).
				Str("time", sim.FormatTime(e.ElapsedMs)).
				Bool("new_best", e.NewBest).
				Int("total", e.TotalCoins).
				Msg("level clear")
		case sim.EventHazard:
			log.Info().Str("run", e.Run.String()).Stringer("cell", e.Cell).Msg("hit lava")
		case sim.EventCoin:
			log.Debug().Stringer("cell", e.Cell).Int("left", e.CoinsLeft).Msg("coin")
		}
	}
}
