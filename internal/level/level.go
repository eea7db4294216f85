package level

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
)

// TileSize is the edge of one grid cell in pixels.
const TileSize = 8

// Kind classifies one cell of the grid.
type Kind uint8

const (
	Floor Kind = iota
	Wall
	Hazard
	Coin
	Spawn
)

func (k Kind) String() string {
	switch k {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Hazard:
		return "hazard"
	case Coin:
		return "coin"
	case Spawn:
		return "spawn"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Rune is the layout character for k.
func (k Kind) Rune() rune {
	switch k {
	case Wall:
		return '#'
	case Hazard:
		return 'L'
	case Coin:
		return 'C'
	case Spawn:
		return 'P'
	}
	return '.'
}

// Point is a grid coordinate. Comparable, so it is used directly as a set key.
type Point struct{ X, Y int }

func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

var (
	ErrEmpty          = errors.New("level: empty layout")
	ErrRagged         = errors.New("level: rows differ in width")
	ErrUnknownTile    = errors.New("level: unknown tile")
	ErrNoSpawn        = errors.New("level: no player spawn")
	ErrMultipleSpawns = errors.New("level: more than one player spawn")
)

// Map is an immutable tile grid.
type Map struct {
	w, h  int
	cells []Kind
	spawn Point
	coins []Point
}

func kindOf(r rune) (Kind, bool) {
	switch r {
	case '#':
		return Wall, true
	case '.', ' ':
		return Floor, true
	case 'L':
		return Hazard, true
	case 'C':
		return Coin, true
	case 'P':
		return Spawn, true
	}
	return Floor, false
}

// Parse builds a Map from layout rows.
func Parse(lines []string) (*Map, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmpty
	}
	w := len([]rune(lines[0]))
	m := &Map{w: w, h: len(lines), cells: make([]Kind, 0, w*len(lines))}
	spawns := 0
	for y, row := range lines {
		rs := []rune(row)
		if len(rs) != w {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", y, len(rs), w, ErrRagged)
		}
		for x, r := range rs {
			k, ok := kindOf(r)
			if !ok {
				return nil, fmt.Errorf("row %d col %d %q: %w", y, x, r, ErrUnknownTile)
			}
			switch k {
			case Spawn:
				spawns++
				m.spawn = Point{x, y}
			case Coin:
				m.coins = append(m.coins, Point{x, y})
			}
			m.cells = append(m.cells, k)
		}
	}
	switch {
	case spawns == 0:
		return nil, ErrNoSpawn
	case spawns > 1:
		return nil, fmt.Errorf("%d spawns: %w", spawns, ErrMultipleSpawns)
	}
	return m, nil
}

// MustParse is Parse for layouts known at compile time.
func MustParse(lines []string) *Map {
	m, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return m
}

// Load reads a layout file, one row per line. Blank lines are ignored.
func Load(path string) (*Map, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lines []string
	for _, l := range strings.Split(string(b), "\n") {
		// spaces are floor, so only line endings are trimmed
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	m, err := Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (m *Map) Width() int  { return m.w }
func (m *Map) Height() int { return m.h }

// PixelSize is the surface size needed to draw the whole map.
func (m *Map) PixelSize() (int, int) { return m.w * TileSize, m.h * TileSize }

// Classify returns the kind at a grid coordinate. Anything outside the grid is
// a Wall, which is also what keeps the player inside.
func (m *Map) Classify(x, y int) Kind {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return Wall
	}
	return m.cells[y*m.w+x]
}

func (m *Map) Blocking(x, y int) bool { return m.Classify(x, y) == Wall }

// Spawn is the player spawn cell.
func (m *Map) Spawn() Point { return m.spawn }

// SpawnCenter is the pixel centre of the spawn cell.
func (m *Map) SpawnCenter() (float64, float64) {
	return CellCenter(m.spawn)
}

// Coins lists every coin cell in row-major order. The slice is a copy.
func (m *Map) Coins() []Point {
	out := make([]Point, len(m.coins))
	copy(out, m.coins)
	return out
}

// CellAt maps a pixel position to the grid cell containing it.
func CellAt(px, py float64) Point {
	return Point{int(math.Floor(px / TileSize)), int(math.Floor(py / TileSize))}
}

func CellCenter(p Point) (float64, float64) {
	return float64(p.X*TileSize) + TileSize/2, float64(p.Y*TileSize) + TileSize/2
}

// Lines renders the map back to layout rows.
func (m *Map) Lines() []string {
	out := make([]string, m.h)
	var sb strings.Builder
	for y := 0; y < m.h; y++ {
		sb.Reset()
		for x := 0; x < m.w; x++ {
			sb.WriteRune(m.cells[y*m.w+x].Rune())
		}
		out[y] = sb.String()
	}
	return out
}

// With returns a copy of m with one cell replaced. The result is not
// validated; run it through Parse(Lines()) before playing it.
func (m *Map) With(p Point, k Kind) []string {
	lines := m.Lines()
	if p.X < 0 || p.Y < 0 || p.X >= m.w || p.Y >= m.h {
		return lines
	}
	row := []rune(lines[p.Y])
	row[p.X] = k.Rune()
	lines[p.Y] = string(row)
	return lines
}

// Save writes the layout to path.
func (m *Map) Save(path string) error {
	data := strings.Join(m.Lines(), "\n") + "\n"
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(data), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
