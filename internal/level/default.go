package level

// defaultLayout is the one built-in level.
var defaultLayout = []string{
	"####################",
	"#........#.....C...#",
	"#..C.....#..####...#",
	"#........#..#..#...#",
	"#..####..#..#..#...#",
	"#..#..#..#..#..#...#",
	"#..#..#..#..#..#...#",
	"#..#..#..#..#..#...#",
	"#..#..#..#..####...#",
	"#..#..#..#......C..#",
	"#..#..#..#####.....#",
	"#..#..#......#####.#",
	"#..#..#..C.......L.#",
	"#P.....#.....C.....#",
	"####################",
}

var defaultMap = MustParse(defaultLayout)

// Default returns the built-in 20x15 level.
func Default() *Map { return defaultMap }
