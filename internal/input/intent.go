package input

// Intent is the aggregated input for one tick.
type Intent struct {
	Up, Down, Left, Right bool
	Reset                 bool
}

// Axis returns the summed direction vector, each component in -1..1.
func (i Intent) Axis() (dx, dy float64) {
	if i.Left {
		dx--
	}
	if i.Right {
		dx++
	}
	if i.Up {
		dy--
	}
	if i.Down {
		dy++
	}
	return dx, dy
}

// Dir names one of the four movement directions.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// dirs holds one held flag per direction, indexed by Dir.
type dirs [5]bool

func (d *dirs) set(dir Dir, v bool) {
	if dir != DirNone {
		d[dir] = v
	}
}

func (d dirs) or(o dirs) dirs {
	for i := range d {
		d[i] = d[i] || o[i]
	}
	return d
}
