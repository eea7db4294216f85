// Package mobile is the gomobile entry point. Its init hands the game to
// ebiten's mobile runner.
package mobile

import (
	"log"

	"coinrun/internal/app"
	"coinrun/internal/config"
	"coinrun/internal/game"
	"coinrun/internal/logging"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	mobile.SetGame(NewGame())
}

// NewGame builds the game from defaults and COINRUN_* environment values.
// Clipboard sharing is off: there is no desktop clipboard to write to.
func NewGame() *game.Game {
	cfg, err := config.Load("")
	if err != nil {
		log.Printf("config: %v; using defaults", err)
		cfg = config.Default()
	}
	logger, _, err := logging.New(logging.Options{Level: cfg.Log.Level})
	if err != nil {
		log.Printf("logging: %v", err)
	}
	sess, err := app.Open(cfg, logger)
	if err != nil {
		log.Printf("session: %v; using the built-in level", err)
		cfg.Level = ""
		sess, _ = app.Open(cfg, logger)
	}
	return game.New(sess.World, sess.Input, game.Options{Hooks: sess.Hooks, Log: logger})
}

func Dummy() {}
