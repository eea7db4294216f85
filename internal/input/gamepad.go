package input

// Button indices of the standard gamepad layout.
const (
	ButtonAction = 0
	ButtonUp     = 12
	ButtonDown   = 13
	ButtonLeft   = 14
	ButtonRight  = 15
)

// DefaultDeadZone is the analog magnitude at or below which a stick axis is
// treated as centred.
const DefaultDeadZone = 0.2

// GamepadState is one poll of a pad. Axes are the left stick in -1..1.
// A zero value means no pad is connected.
type GamepadState struct {
	Connected bool
	Axes      [2]float64
	Buttons   []bool
}

func (g GamepadState) pressed(i int) bool {
	return i >= 0 && i < len(g.Buttons) && g.Buttons[i]
}

// gamepad keeps the edge state of the action button between polls.
type gamepad struct {
	deadZone   float64
	prevAction bool
}

func applyDeadZone(v, dz float64) float64 {
	if v > dz || v < -dz {
		return v
	}
	return 0
}

// read returns the held directions and whether the action button went down
// this poll.
func (p *gamepad) read(s GamepadState) (dirs, bool) {
	var d dirs
	if !s.Connected {
		p.prevAction = false
		return d, false
	}
	ax := applyDeadZone(s.Axes[0], p.deadZone)
	ay := applyDeadZone(s.Axes[1], p.deadZone)
	d.set(DirLeft, ax < 0 || s.pressed(ButtonLeft))
	d.set(DirRight, ax > 0 || s.pressed(ButtonRight))
	d.set(DirUp, ay < 0 || s.pressed(ButtonUp))
	d.set(DirDown, ay > 0 || s.pressed(ButtonDown))

	action := s.pressed(ButtonAction)
	edge := action && !p.prevAction
	p.prevAction = action
	return d, edge
}
