package render

import "image/color"

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Palette of the playfield.
var (
	ColorFloor         = hex(0x121933)
	ColorWallTop       = hex(0x39406a)
	ColorWallSide      = hex(0x1e243f)
	ColorWallEdge      = hex(0x11162e)
	ColorLava          = hex(0xff4b4b)
	ColorLavaGlow      = hex(0xff9e6a)
	ColorCoin          = hex(0xffd65a)
	ColorCoinHighlight = hex(0xfff2b3)
	ColorPlayer        = hex(0x61dafb)
	ColorPlayerShadow  = hex(0x2c4b6b)
	ColorEye           = hex(0xffffff)
	ColorBackground    = color.RGBA{A: 0xff}
)
