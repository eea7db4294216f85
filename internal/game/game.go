// Package game hosts the loop in an ebiten window: keyboard, gamepad, mouse
// and touch in; the level canvas, stats bar, touch controls and the
// end-of-run card out.
package game

import (
	"time"

	"coinrun/internal/game/hud"
	"coinrun/internal/input"
	"coinrun/internal/loop"
	"coinrun/internal/sim"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// mouseID is the pointer id the left mouse button tracks as.
const mouseID = -1

type Options struct {
	Share bool // offer copying the clear time to the clipboard
	Hooks []loop.Hook
	Log   zerolog.Logger
}

type Game struct {
	loop   *loop.Loop
	canvas *ebiten.Image
	lay    hud.Layout
	log    zerolog.Logger
	share  bool

	keys    []ebiten.Key
	pads    []ebiten.GamepadID
	touches []ebiten.TouchID
	points  map[int][2]int
	seen    map[int]bool

	newBest   bool
	status    string
	statusEnd time.Time
}

func New(w *sim.World, agg *input.Aggregator, o Options) *Game {
	pw, ph := w.Map.PixelSize()
	g := &Game{
		canvas: ebiten.NewImage(pw, ph),
		lay:    hud.NewLayout(pw, ph),
		log:    o.Log,
		share:  o.Share,
		points: map[int][2]int{},
		seen:   map[int]bool{},
	}
	opts := []loop.Option{
		loop.WithGamepad(g.gamepad),
		loop.WithLogger(o.Log),
		loop.WithHook(g.remember),
	}
	for _, h := range o.Hooks {
		opts = append(opts, loop.WithHook(h))
	}
	g.loop = loop.New(w, agg, surface{g.canvas}, time.Now(), opts...)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !ebiten.IsFocused() {
		g.loop.Input.Keyboard.Release()
	}
	g.pollKeys()
	g.pollPointers()
	if g.loop.Frame().Overlay.Visible {
		g.updateCard()
	}
	g.loop.Tick(time.Now())
	return nil
}

func (g *Game) Layout(w, h int) (int, int) { return g.lay.W, g.lay.H }

func (g *Game) pollKeys() {
	kb := g.loop.Input.Keyboard
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		kb.KeyDown(k.String())
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		kb.KeyUp(k.String())
	}
}

// pollPointers feeds every touch plus the held left mouse button to the
// on-screen controls.
func (g *Game) pollPointers() {
	clear(g.points)
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.points[int(id)] = [2]int{x, y}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.points[mouseID] = [2]int{x, y}
	}
	g.lay.Controls.Track(g.loop.Input.Touch, g.points, g.seen)
}

// gamepad reads the first connected pad. Pads with a standard mapping are
// read through it; others by raw index, which matches the standard order on
// most controllers.
func (g *Game) gamepad() input.GamepadState {
	g.pads = ebiten.AppendGamepadIDs(g.pads[:0])
	if len(g.pads) == 0 {
		return input.GamepadState{}
	}
	id := g.pads[0]
	st := input.GamepadState{Connected: true, Buttons: make([]bool, input.ButtonRight+1)}

	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		st.Axes[0] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		st.Axes[1] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		for i, b := range map[int]ebiten.StandardGamepadButton{
			input.ButtonAction: ebiten.StandardGamepadButtonRightBottom,
			input.ButtonUp:     ebiten.StandardGamepadButtonLeftTop,
			input.ButtonDown:   ebiten.StandardGamepadButtonLeftBottom,
			input.ButtonLeft:   ebiten.StandardGamepadButtonLeftLeft,
			input.ButtonRight:  ebiten.StandardGamepadButtonLeftRight,
		} {
			st.Buttons[i] = ebiten.IsStandardGamepadButtonPressed(id, b)
		}
		return st
	}

	if ebiten.GamepadAxisCount(id) >= 2 {
		st.Axes = [2]float64{ebiten.GamepadAxisValue(id, 0), ebiten.GamepadAxisValue(id, 1)}
	}
	for i := 0; i < min(len(st.Buttons), ebiten.GamepadButtonCount(id)); i++ {
		st.Buttons[i] = ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(i))
	}
	return st
}

func (g *Game) remember(e sim.Event) {
	if e.Kind == sim.EventClear {
		g.newBest = e.NewBest
	}
}

func (g *Game) canShare() bool {
	return g.share && g.loop.Frame().Overlay.Outcome == sim.OutcomeClear
}

// updateCard handles the end-of-run card: its button (or Enter/Space)
// restarts, the share button (or C) copies the clear time.
func (g *Game) updateCard() {
	primary, share := g.lay.CardButtons(g.canShare())

	var clicks [][2]int
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		clicks = append(clicks, [2]int{x, y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		clicks = append(clicks, [2]int{x, y})
	}

	restart := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	copyTime := g.canShare() && inpututil.IsKeyJustPressed(ebiten.KeyC)
	for _, c := range clicks {
		switch {
		case primary.Hit(c[0], c[1]):
			restart = true
		case g.canShare() && share.Hit(c[0], c[1]):
			copyTime = true
		}
	}

	if copyTime {
		g.copyShare()
	}
	if restart {
		g.loop.Restart()
	}
}

func (g *Game) copyShare() {
	msg := hud.ShareText(g.loop.World.Run.LastClearMs, g.newBest)
	if err := clipboard.WriteAll(msg); err != nil {
		g.log.Warn().Err(err).Msg("clipboard copy failed")
		g.flash("Clipboard unavailable")
		return
	}
	g.log.Debug().Str("text", msg).Msg("copied clear time")
	g.flash("Time copied to clipboard")
}

func (g *Game) flash(msg string) {
	g.status = msg
	g.statusEnd = time.Now().Add(2 * time.Second)
}
