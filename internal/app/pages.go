package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/swipedeck"
)

// BuildDeck returns n demo pages cycling through the page palette.
func BuildDeck(n int) []swipedeck.Page {
	pages := make([]swipedeck.Page, n)
	for i := 0; i < n; i++ {
		idx := i
		pages[i] = swipedeck.PageFunc(func(dst *ebiten.Image, x, y, w, h float64) {
			drawCard(dst, idx, x, y, w, h)
		})
	}
	return pages
}

// drawCard fills a page card with its palette color, an inner frame and a label.
func drawCard(dst *ebiten.Image, idx int, x, y, w, h float64) {
	c := pagePalette[idx%len(pagePalette)]
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)

	const inset = 12.0
	if w > inset*2 && h > inset*2 {
		vector.StrokeRect(dst, float32(x+inset), float32(y+inset),
			float32(w-inset*2), float32(h-inset*2), 2, lighten(c), false)
	}

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Page %d", idx+1), int(x)+24, int(y)+24)
}

// lighten shifts a card color halfway toward white for the frame.
func lighten(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R/2 + 0x80,
		G: c.G/2 + 0x80,
		B: c.B/2 + 0x80,
		A: 0xFF,
	}
}
