// Package config loads game settings from a YAML file, a .env file and the
// environment, in that order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"coinrun/internal/input"
	"coinrun/internal/level"
	"coinrun/internal/persist"
	"coinrun/internal/sim"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid value")

type Window struct {
	Scale      int    `yaml:"scale"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	TPS        int    `yaml:"tps"`
}

type Tuning struct {
	Speed      float64 `yaml:"speed"`
	MaxDt      float64 `yaml:"max_dt"`
	HalfExtent float64 `yaml:"half_extent"`
}

type Input struct {
	DeadZone  float64 `yaml:"dead_zone"`
	Merge     string  `yaml:"merge"`
	KeyHoldMs int     `yaml:"key_hold_ms"` // terminal only: no key-up events there
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // beep volume steps, 0 = unchanged
}

type Store struct {
	Dir     string `yaml:"dir"`
	Format  string `yaml:"format"`
	Profile string `yaml:"profile"`
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
	File   string `yaml:"file"`
}

type Config struct {
	Window Window `yaml:"window"`
	Tuning Tuning `yaml:"tuning"`
	Input  Input  `yaml:"input"`
	Audio  Audio  `yaml:"audio"`
	Store  Store  `yaml:"store"`
	Log    Log    `yaml:"log"`
	Level  string `yaml:"level"` // optional custom layout file
}

func Default() Config {
	t := sim.DefaultTuning()
	return Config{
		Window: Window{Scale: 2, Title: "Coin Run", TPS: 60},
		Tuning: Tuning{Speed: t.Speed, MaxDt: t.MaxDt, HalfExtent: t.HalfExtent},
		Input:  Input{DeadZone: input.DefaultDeadZone, Merge: "or", KeyHoldMs: 150},
		Audio:  Audio{Enabled: true},
		Store:  Store{Format: "json"},
		Log:    Log{Level: "info", Pretty: true},
	}
}

// Load reads path over the defaults (a missing file is fine when path is
// empty), loads .env if present and applies COINRUN_* overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("COINRUN_CONFIG")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("COINRUN_PROFILE"); v != "" {
		c.Store.Profile = v
	}
	if v := os.Getenv("COINRUN_STORE_DIR"); v != "" {
		c.Store.Dir = v
	}
	if v := os.Getenv("COINRUN_STORE_FORMAT"); v != "" {
		c.Store.Format = v
	}
	if v := os.Getenv("COINRUN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("COINRUN_LEVEL"); v != "" {
		c.Level = v
	}
	if v := os.Getenv("COINRUN_AUDIO"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("COINRUN_AUDIO=%q: %w", v, ErrInvalid)
		}
		c.Audio.Enabled = on
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	bad := func(field string, v any) {
		errs = append(errs, fmt.Errorf("%s=%v: %w", field, v, ErrInvalid))
	}
	if c.Window.Scale < 1 {
		bad("window.scale", c.Window.Scale)
	}
	if c.Window.TPS < 1 {
		bad("window.tps", c.Window.TPS)
	}
	if c.Tuning.Speed <= 0 {
		bad("tuning.speed", c.Tuning.Speed)
	}
	if c.Tuning.MaxDt <= 0 {
		bad("tuning.max_dt", c.Tuning.MaxDt)
	}
	// the box must stay smaller than a tile or corner checks miss cells
	if c.Tuning.HalfExtent <= 0 || c.Tuning.HalfExtent >= 4 {
		bad("tuning.half_extent", c.Tuning.HalfExtent)
	}
	// one clamped step has to stay under the gap a wall corner can hide in
	if step := c.Tuning.Speed * c.Tuning.MaxDt; step >= level.TileSize-2*c.Tuning.HalfExtent {
		bad("tuning.speed*max_dt", step)
	}
	if c.Input.DeadZone < 0 || c.Input.DeadZone >= 1 {
		bad("input.dead_zone", c.Input.DeadZone)
	}
	if _, err := input.ParseMergeMode(c.Input.Merge); err != nil {
		bad("input.merge", c.Input.Merge)
	}
	if _, err := persist.CodecFor(c.Store.Format); err != nil {
		bad("store.format", c.Store.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		bad("log.level", c.Log.Level)
	}
	return errors.Join(errs...)
}

// SimTuning converts the tuning section.
func (c Config) SimTuning() sim.Tuning {
	return sim.Tuning{Speed: c.Tuning.Speed, MaxDt: c.Tuning.MaxDt, HalfExtent: c.Tuning.HalfExtent}
}

// MergeMode returns the validated merge mode.
func (c Config) MergeMode() input.MergeMode {
	m, _ := input.ParseMergeMode(c.Input.Merge)
	return m
}
