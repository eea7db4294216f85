// Command coinrun-tty plays the game in a terminal.
//
// Terminals only report key presses, so a direction stays held for a short
// window after each press or auto-repeat (input.key_hold_ms). The mouse can
// work the on-screen controls below the level.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"coinrun/internal/app"
	"coinrun/internal/config"
	"coinrun/internal/loop"
	"coinrun/internal/logging"
	"coinrun/internal/render"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// first press window; covers the usual terminal repeat delay
const firstHold = 500 * time.Millisecond

var errQuit = errors.New("quit")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "YAML config file (default $COINRUN_CONFIG)")
	levelPath := flag.String("level", "", "custom level layout file")
	profile := flag.String("profile", "", "progress profile name")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *levelPath != "" {
		cfg.Level = *levelPath
	}
	if *profile != "" {
		cfg.Store.Profile = *profile
	}
	if *mute {
		cfg.Audio.Enabled = false
	}
	// the screen owns stdout and stderr
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(os.TempDir(), "coinrun-tty.log")
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := app.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()
	screen.HideCursor()
	finish := sync.OnceFunc(screen.Fini)
	defer finish()

	pw, ph := sess.World.Map.PixelSize()
	surf := render.NewImageSurface(pw, ph)
	opts := []loop.Option{loop.WithLogger(logger)}
	for _, h := range sess.Hooks {
		opts = append(opts, loop.WithHook(h))
	}
	l := loop.New(sess.World, sess.Input, surf, time.Now(), opts...)

	hold := time.Duration(cfg.Input.KeyHoldMs) * time.Millisecond
	t := newTTY(screen, l, surf, newKeyHold(max(firstHold, hold), hold))

	logger.Info().Int("step", t.step).Msg("terminal starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)
	jobs := make(chan func(), 64)

	eg.Go(guard(finish, func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil // screen finalized
			}
			job, quit := t.event(ev)
			if quit {
				return errQuit
			}
			if job == nil {
				continue
			}
			select {
			case jobs <- job:
			case <-ctx.Done():
				return nil
			}
		}
	}))
	eg.Go(guard(finish, func() error {
		// Fini unblocks PollEvent once the loop is done
		defer finish()
		ticker := time.NewTicker(time.Second / time.Duration(cfg.Window.TPS))
		defer ticker.Stop()
		return l.Run(ctx, ticker.C, jobs, t.frame)
	}))

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// guard restores the terminal before reporting a panic, or the shell is left
// in raw mode.
func guard(finish func(), fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				finish()
				fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn()
	}
}
