package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coinrun/internal/config"
	"coinrun/internal/input"
	"coinrun/internal/level"
	"coinrun/internal/persist"

	"github.com/rs/zerolog"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.Store.Dir = t.TempDir()
	cfg.Store.Profile = "test"
	return cfg
}

func TestOpenDefaultSession(t *testing.T) {
	s, err := Open(testConfig(t), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if s.World.Run.CoinsLeft != 5 || !s.World.Run.Running {
		t.Fatalf("run = %+v", s.World.Run)
	}
	if _, ok := s.Store.(*persist.FileStore); !ok {
		t.Fatalf("store is %T, want file store", s.Store)
	}
	if s.Input.Mode() != input.MergeOr || len(s.Hooks) != 1 {
		t.Fatalf("mode %v, %d hooks", s.Input.Mode(), len(s.Hooks))
	}
}

func TestProgressSurvivesReopen(t *testing.T) {
	cfg := testConfig(t)
	s, err := Open(cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if err := persist.Save(s.Store, persist.Progress{TotalCoins: 7, BestMs: 30000}); err != nil {
		t.Fatal(err)
	}

	cfg.Store.Format = "json"
	s2, err := Open(cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if s2.World.Progress != (persist.Progress{TotalCoins: 7, BestMs: 30000}) {
		t.Fatalf("progress = %+v", s2.World.Progress)
	}
}

func TestUnwritableStoreFallsBackToMemory(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(cfg.Store.Dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Store.Dir = blocker

	s, err := Open(cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Store.(*persist.MemoryStore); !ok {
		t.Fatalf("store is %T, want memory fallback", s.Store)
	}
}

func TestCustomLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level = filepath.Join(t.TempDir(), "tiny.txt")
	body := strings.Join([]string{"#####", "#PCC#", "#####"}, "\n")
	if err := os.WriteFile(cfg.Level, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if s.World.Map.Width() != 5 || s.World.Run.CoinsLeft != 2 {
		t.Fatalf("map %dx%d, coins %d", s.World.Map.Width(), s.World.Map.Height(), s.World.Run.CoinsLeft)
	}
}

func TestBadLevelIsFatal(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level = filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(cfg.Level, []byte("###\n#.#\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(cfg, zerolog.Nop()); !errors.Is(err, level.ErrNoSpawn) {
		t.Fatalf("err = %v, want ErrNoSpawn", err)
	}
}
