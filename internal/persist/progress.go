package persist

import (
	"strconv"
	"strings"
)

// Keys of the two persisted scalars.
const (
	KeyTotalCoins = "coinCollectorTotal"
	KeyBestTime   = "coinCollectorBest"
)

// Store is a durable string key-value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Progress survives across runs and sessions.
type Progress struct {
	TotalCoins int
	BestMs     int64 // 0 = no clear recorded yet
}

func (p Progress) HasBest() bool { return p.BestMs > 0 }

// Improve records a clear time if it beats the current best. Reports whether
// the best changed.
func (p *Progress) Improve(ms int64) bool {
	if ms <= 0 {
		return false
	}
	if !p.HasBest() || ms < p.BestMs {
		p.BestMs = ms
		return true
	}
	return false
}

func parseCount(s string, ok bool) int64 {
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Load reads progress from s. Missing or malformed values read as zero coins
// and no best time.
func Load(s Store) Progress {
	total := parseCount(s.Get(KeyTotalCoins))
	best := parseCount(s.Get(KeyBestTime))
	return Progress{TotalCoins: int(total), BestMs: best}
}

// Save writes the coin total, and the best time only when one is set so an
// unset value never erases an earlier record.
func Save(s Store, p Progress) error {
	if err := s.Set(KeyTotalCoins, strconv.Itoa(p.TotalCoins)); err != nil {
		return err
	}
	if p.HasBest() {
		return s.Set(KeyBestTime, strconv.FormatInt(p.BestMs, 10))
	}
	return nil
}
