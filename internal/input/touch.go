package input

// Control is one on-screen touch button.
type Control struct {
	Label string
	Dir   Dir  // DirNone for action buttons
	Reset bool // true for the reset button
}

var (
	ControlUp    = Control{Label: "^", Dir: DirUp}
	ControlDown  = Control{Label: "v", Dir: DirDown}
	ControlLeft  = Control{Label: "<", Dir: DirLeft}
	ControlRight = Control{Label: ">", Dir: DirRight}
	ControlReset = Control{Label: "R", Reset: true}
)

// Touch tracks which controls are held by which pointer.
type Touch struct {
	held  map[int]Dir
	reset bool
}

func NewTouch() *Touch {
	return &Touch{held: map[int]Dir{}}
}

func (t *Touch) PointerDown(id int, c Control) {
	if c.Reset {
		t.reset = true
	}
	if c.Dir != DirNone {
		t.held[id] = c.Dir
	}
}

func (t *Touch) PointerUp(id int) { delete(t.held, id) }

// PointerLeave is a pointer sliding off its control; same as lifting it.
func (t *Touch) PointerLeave(id int) { delete(t.held, id) }

// Held reports the control direction held by pointer id, if any.
func (t *Touch) Held(id int) (Dir, bool) {
	d, ok := t.held[id]
	return d, ok
}

func (t *Touch) dirs() dirs {
	var d dirs
	for _, dir := range t.held {
		d.set(dir, true)
	}
	return d
}

func (t *Touch) takeReset() bool {
	r := t.reset
	t.reset = false
	return r
}

// Rect is an axis-aligned hit box in screen pixels.
type Rect struct{ X, Y, W, H int }

func (r Rect) Hit(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Button places a control on screen.
type Button struct {
	Rect
	Control Control
}

// TouchLayout is the set of on-screen controls.
type TouchLayout []Button

// DefaultLayout lays the four arrows out as a cross on the left and the reset
// button on the right of a w x h strip starting at y.
func DefaultLayout(w, y, h int) TouchLayout {
	size := h / 2
	if size < 8 {
		size = 8
	}
	left := size / 2
	return TouchLayout{
		{Rect{left + size, y, size, size}, ControlUp},
		{Rect{left + size, y + size, size, size}, ControlDown},
		{Rect{left, y + size, size, size}, ControlLeft},
		{Rect{left + 2*size, y + size, size, size}, ControlRight},
		{Rect{w - 2*size, y + size/2, size + size/2, size}, ControlReset},
	}
}

// At returns the control under a point.
func (l TouchLayout) At(px, py int) (Control, bool) {
	for _, b := range l {
		if b.Hit(px, py) {
			return b.Control, true
		}
	}
	return Control{}, false
}

// Track feeds one poll of pointer positions into t. New pointers press the
// control under them, pointers that moved off their control leave it, and
// pointers no longer reported are lifted.
func (l TouchLayout) Track(t *Touch, points map[int][2]int, seen map[int]bool) {
	for id, p := range points {
		c, ok := l.At(p[0], p[1])
		if !seen[id] {
			seen[id] = true
			if ok {
				t.PointerDown(id, c)
			}
			continue
		}
		if held, isHeld := t.Held(id); isHeld && (!ok || c.Dir != held) {
			t.PointerLeave(id)
		}
	}
	for id := range seen {
		if _, still := points[id]; !still {
			t.PointerUp(id)
			delete(seen, id)
		}
	}
}
