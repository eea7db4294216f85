package persist

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const appDir = "CoinRun"

var unsafeChars = regexp.MustCompile(`[^a-z0-9._-]`)

func sanitize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeChars.ReplaceAllString(s, "")
	if s == "" {
		s = "default"
	}
	return s
}

// ProfileID picks the save profile:
// 1) the explicit name (flag, config or COINRUN_PROFILE)
// 2) <exeBase>-<hash8 of full exe path>, so two copies of the binary keep
// separate saves.
func ProfileID(name string) string {
	if p := strings.TrimSpace(name); p != "" {
		return sanitize(p)
	}
	exe, _ := os.Executable()
	base := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	sum := sha1.Sum([]byte(exe))
	return sanitize(base) + "-" + hex.EncodeToString(sum[:])[:8]
}

// ConfigDir = root / CoinRun / profile, where root defaults to the OS config
// dir:
//
//	Windows: %APPDATA%\CoinRun\<profile>\
//	macOS:   ~/Library/Application Support/CoinRun/<profile>/
//	Linux:   ~/.config/CoinRun/<profile>/
func ConfigDir(root, profile string) (string, error) {
	if root == "" {
		root, _ = os.UserConfigDir()
	}
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		root = filepath.Join(home, ".config")
	}
	dir := filepath.Join(root, appDir, ProfileID(profile))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
