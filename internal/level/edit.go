package level

import (
	"errors"
	"fmt"
	"strings"
)

var ErrOutside = errors.New("level: cell outside the grid")

// Blank is a walled w x h room with the spawn in the top-left corner.
func Blank(w, h int) (*Map, error) {
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("level must be at least 3x3, got %dx%d", w, h)
	}
	lines := make([]string, h)
	for y := range lines {
		if y == 0 || y == h-1 {
			lines[y] = strings.Repeat("#", w)
			continue
		}
		lines[y] = "#" + strings.Repeat(".", w-2) + "#"
	}
	lines[1] = "#P" + lines[1][2:]
	return Parse(lines)
}

// Paint returns a copy of m with cell p set to k. Placing the spawn moves it.
// An edit that leaves the map invalid, such as painting over the spawn, is
// refused: m comes back unchanged along with the error.
func (m *Map) Paint(p Point, k Kind) (*Map, error) {
	if p.X < 0 || p.Y < 0 || p.X >= m.w || p.Y >= m.h {
		return m, ErrOutside
	}
	if m.Classify(p.X, p.Y) == k {
		return m, nil
	}
	lines := m.With(p, k)
	if k == Spawn {
		row := []rune(lines[m.spawn.Y])
		row[m.spawn.X] = Floor.Rune()
		lines[m.spawn.Y] = string(row)
	}
	next, err := Parse(lines)
	if err != nil {
		return m, err
	}
	return next, nil
}

// Check lists problems that still make a playable map but a poor level.
func (m *Map) Check() []string {
	var warn []string
	if len(m.coins) == 0 {
		warn = append(warn, "no coins: the level can never be cleared")
	}
	for x := 0; x < m.w; x++ {
		if !m.Blocking(x, 0) || !m.Blocking(x, m.h-1) {
			warn = append(warn, "open top or bottom edge")
			break
		}
	}
	for y := 0; y < m.h; y++ {
		if !m.Blocking(0, y) || !m.Blocking(m.w-1, y) {
			warn = append(warn, "open left or right edge")
			break
		}
	}
	return warn
}
