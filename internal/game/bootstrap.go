//go:build !android

package game

import "github.com/hajimehoshi/ebiten/v2"

// SetupWindow sizes the desktop window to the layout at the given scale.
func SetupWindow(g *Game, title string, scale int, fullscreen bool, tps int) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.lay.W*scale, g.lay.H*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(g.lay.W, g.lay.H, -1, -1)
	ebiten.SetFullscreen(fullscreen)
	ebiten.SetTPS(tps)

	// Draw fills the whole screen itself
	ebiten.SetScreenClearedEveryFrame(false)
}
