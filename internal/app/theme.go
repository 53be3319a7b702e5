package app

import "image/color"

// Colors — dark slate theme for the demo shell
var (
	ColorBackground = color.RGBA{R: 0x12, G: 0x14, B: 0x1A, A: 0xFF}
	ColorSurface    = color.RGBA{R: 0x1C, G: 0x20, B: 0x2A, A: 0xFF}
	ColorAccent     = color.RGBA{R: 0x38, G: 0x8B, B: 0xEF, A: 0xFF}
	ColorDot        = color.RGBA{R: 0x3C, G: 0x42, B: 0x50, A: 0xFF}
	ColorOverlay    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
)

// pagePalette is cycled across the demo deck.
var pagePalette = []color.RGBA{
	{R: 0x2F, G: 0x6B, B: 0xE0, A: 0xFF}, // blue
	{R: 0xB8, G: 0x4A, B: 0x62, A: 0xFF}, // rose
	{R: 0x2E, G: 0x96, B: 0x65, A: 0xFF}, // green
	{R: 0xC4, G: 0x8A, B: 0x2F, A: 0xFF}, // amber
	{R: 0x7B, G: 0x5B, B: 0xC4, A: 0xFF}, // violet
	{R: 0x2F, G: 0x98, B: 0xA4, A: 0xFF}, // teal
}

// Layout constants
const (
	DeckPadding = 48.0
	HUDHeight   = 64.0

	DotRadius = 5.0
	DotGap    = 18.0
)
