package persist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	cases := []struct {
		name  string
		total string
		best  string
		want  Progress
	}{
		{"missing", "", "", Progress{}},
		{"valid", "12", "34567", Progress{TotalCoins: 12, BestMs: 34567}},
		{"garbage", "abc", "1.5e3", Progress{}},
		{"negative", "-4", "-1", Progress{}},
		{"zero best is unset", "3", "0", Progress{TotalCoins: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewMemoryStore()
			if tc.total != "" {
				s.values[KeyTotalCoins] = tc.total
			}
			if tc.best != "" {
				s.values[KeyBestTime] = tc.best
			}
			if got := Load(s); got != tc.want {
				t.Fatalf("Load = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSaveKeepsBestWhenUnset(t *testing.T) {
	s := NewMemoryStore()
	if err := Save(s, Progress{TotalCoins: 2, BestMs: 9000}); err != nil {
		t.Fatal(err)
	}
	if err := Save(s, Progress{TotalCoins: 3}); err != nil {
		t.Fatal(err)
	}
	got := Load(s)
	if got.TotalCoins != 3 || got.BestMs != 9000 {
		t.Fatalf("Load = %+v, want total 3 best 9000", got)
	}
	if s.Writes != 3 {
		t.Fatalf("writes = %d, want 3", s.Writes)
	}
}

func TestImproveOnlyDecreases(t *testing.T) {
	var p Progress
	if !p.Improve(5000) || p.BestMs != 5000 {
		t.Fatalf("first clear should set best, got %d", p.BestMs)
	}
	if p.Improve(6000) || p.BestMs != 5000 {
		t.Fatalf("slower clear changed best to %d", p.BestMs)
	}
	if !p.Improve(4000) || p.BestMs != 4000 {
		t.Fatalf("faster clear not recorded, best %d", p.BestMs)
	}
	if p.Improve(0) {
		t.Fatalf("zero is not a valid time")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	for _, codec := range []Codec{JSON, MsgPack} {
		t.Run(codec.Ext(), func(t *testing.T) {
			dir := t.TempDir()
			s, err := OpenFileStore(dir, codec, zerolog.Nop())
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if err := Save(s, Progress{TotalCoins: 7, BestMs: 61000}); err != nil {
				t.Fatalf("save: %v", err)
			}
			if _, err := os.Stat(s.Path() + ".tmp"); !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("tmp file left behind: %v", err)
			}

			again, err := OpenFileStore(dir, codec, zerolog.Nop())
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			if got := Load(again); got != (Progress{TotalCoins: 7, BestMs: 61000}) {
				t.Fatalf("reloaded %+v", got)
			}
		})
	}
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "progress.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := OpenFileStore(dir, JSON, zerolog.Nop())
	if err != nil {
		t.Fatalf("corrupt file should not fail open: %v", err)
	}
	if got := Load(s); got != (Progress{}) {
		t.Fatalf("Load = %+v, want zero progress", got)
	}
}

func TestCodecFor(t *testing.T) {
	if c, err := CodecFor("MsgPack"); err != nil || c != MsgPack {
		t.Fatalf("CodecFor(MsgPack) = %v, %v", c, err)
	}
	if c, err := CodecFor(""); err != nil || c != JSON {
		t.Fatalf("default codec = %v, %v", c, err)
	}
	if _, err := CodecFor("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestConfigDirUsesProfile(t *testing.T) {
	root := t.TempDir()
	dir, err := ConfigDir(root, "Dev Box!")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(root, "CoinRun", "dev_box"); dir != want {
		t.Fatalf("dir = %q, want %q", dir, want)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("config dir not created: %v", err)
	}
}
