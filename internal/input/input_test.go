package input

import "testing"

func TestKeyboardAliases(t *testing.T) {
	a := NewAggregator(MergeOr, DefaultDeadZone)
	a.Keyboard.KeyDown("ArrowUp")
	a.Keyboard.KeyDown("d")
	in := a.Poll(GamepadState{})
	if !in.Up || !in.Right || in.Down || in.Left {
		t.Fatalf("intent = %+v, want up+right", in)
	}
	a.Keyboard.KeyUp("arrowup")
	in = a.Poll(GamepadState{})
	if in.Up || !in.Right {
		t.Fatalf("after key-up intent = %+v", in)
	}
	if a.Keyboard.KeyDown("q") {
		t.Fatalf("q should not be a game key")
	}
}

func TestResetIsOneShot(t *testing.T) {
	a := NewAggregator(MergeOr, DefaultDeadZone)
	a.Keyboard.KeyDown("r")

	if in := a.Poll(GamepadState{}); !in.Reset {
		t.Fatalf("reset not set on trigger tick")
	}
	a.ConsumeReset()
	for i := 0; i < 3; i++ {
		if in := a.Poll(GamepadState{}); in.Reset {
			t.Fatalf("reset still set on tick %d", i+1)
		}
	}
}

func TestGamepadDeadZoneAndDpad(t *testing.T) {
	a := NewAggregator(MergeOr, 0.2)
	cases := []struct {
		name string
		pad  GamepadState
		want Intent
	}{
		{"centred", GamepadState{Connected: true, Axes: [2]float64{0.1, -0.15}}, Intent{}},
		{"edge of dead zone", GamepadState{Connected: true, Axes: [2]float64{0.2, -0.2}}, Intent{}},
		{"stick left up", GamepadState{Connected: true, Axes: [2]float64{-0.8, -0.5}}, Intent{Left: true, Up: true}},
		{"dpad down", GamepadState{Connected: true, Buttons: padButtons(ButtonDown)}, Intent{Down: true}},
		{"disconnected", GamepadState{Axes: [2]float64{1, 1}}, Intent{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Poll(tc.pad); got != tc.want {
				t.Fatalf("intent = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestGamepadActionIsEdgeTriggered(t *testing.T) {
	a := NewAggregator(MergeOr, DefaultDeadZone)
	held := GamepadState{Connected: true, Buttons: padButtons(ButtonAction)}

	if in := a.Poll(held); !in.Reset {
		t.Fatalf("action press should reset")
	}
	a.ConsumeReset()
	if in := a.Poll(held); in.Reset {
		t.Fatalf("held action button re-triggered reset")
	}
	a.Poll(GamepadState{Connected: true, Buttons: padButtons()})
	if in := a.Poll(held); !in.Reset {
		t.Fatalf("second press should reset again")
	}
}

func TestMergeModes(t *testing.T) {
	centred := GamepadState{Connected: true, Buttons: padButtons()}

	or := NewAggregator(MergeOr, DefaultDeadZone)
	or.Keyboard.KeyDown("a")
	if in := or.Poll(centred); !in.Left {
		t.Fatalf("MergeOr dropped held keyboard input")
	}

	legacy := NewAggregator(MergeGamepadOverrides, DefaultDeadZone)
	legacy.Keyboard.KeyDown("a")
	if in := legacy.Poll(centred); in.Left {
		t.Fatalf("gamepad-overrides should cancel keyboard while a pad is connected")
	}
	if in := legacy.Poll(GamepadState{}); !in.Left {
		t.Fatalf("gamepad-overrides without a pad should use the keyboard")
	}
}

func TestParseMergeMode(t *testing.T) {
	for s, want := range map[string]MergeMode{"": MergeOr, "OR": MergeOr, "legacy": MergeGamepadOverrides, "gamepad-overrides": MergeGamepadOverrides} {
		got, err := ParseMergeMode(s)
		if err != nil || got != want {
			t.Errorf("ParseMergeMode(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseMergeMode("xor"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestTouchButtons(t *testing.T) {
	a := NewAggregator(MergeOr, DefaultDeadZone)
	a.Touch.PointerDown(1, ControlLeft)
	a.Touch.PointerDown(2, ControlUp)
	in := a.Poll(GamepadState{})
	if !in.Left || !in.Up {
		t.Fatalf("intent = %+v, want left+up", in)
	}
	a.Touch.PointerLeave(1)
	a.Touch.PointerUp(2)
	if in := a.Poll(GamepadState{}); in.Left || in.Up {
		t.Fatalf("released pointers still held: %+v", in)
	}
	a.Touch.PointerDown(3, ControlReset)
	if in := a.Poll(GamepadState{}); !in.Reset {
		t.Fatalf("reset control did not reset")
	}
}

func TestTouchLayoutTrack(t *testing.T) {
	layout := TouchLayout{
		{Rect{0, 0, 10, 10}, ControlLeft},
		{Rect{20, 0, 10, 10}, ControlRight},
	}
	touch := NewTouch()
	seen := map[int]bool{}

	layout.Track(touch, map[int][2]int{7: {5, 5}}, seen)
	if d, ok := touch.Held(7); !ok || d != DirLeft {
		t.Fatalf("pointer 7 should hold left, got %v %v", d, ok)
	}
	// slid onto the gap between buttons
	layout.Track(touch, map[int][2]int{7: {15, 5}}, seen)
	if _, ok := touch.Held(7); ok {
		t.Fatalf("pointer leaving its button should release it")
	}
	layout.Track(touch, map[int][2]int{}, seen)
	if len(seen) != 0 {
		t.Fatalf("lifted pointer still tracked")
	}
}

func TestDefaultLayoutHasEveryControl(t *testing.T) {
	l := DefaultLayout(320, 260, 64)
	found := map[string]bool{}
	for _, b := range l {
		found[b.Control.Label] = true
		c, ok := l.At(b.X+1, b.Y+1)
		if !ok || c != b.Control {
			t.Errorf("At inside %s returned %+v", b.Control.Label, c)
		}
	}
	if len(found) != 5 {
		t.Fatalf("layout has %d controls, want 5", len(found))
	}
}

func padButtons(pressed ...int) []bool {
	b := make([]bool, 16)
	for _, i := range pressed {
		b[i] = true
	}
	return b
}
