//go:build !android

package main

import (
	"errors"
	"flag"
	"log"

	"coinrun/internal/app"
	"coinrun/internal/config"
	"coinrun/internal/game"
	"coinrun/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

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

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := app.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	g := game.New(sess.World, sess.Input, game.Options{Share: true, Hooks: sess.Hooks, Log: logger})
	game.SetupWindow(g, cfg.Window.Title, cfg.Window.Scale, cfg.Window.Fullscreen, cfg.Window.TPS)

	logger.Info().Msg("desktop starting")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
