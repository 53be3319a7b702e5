package swipedeck

import "github.com/hajimehoshi/ebiten/v2"

// Page renders one full-size page of a View. Draw receives the page
// rectangle in screen coordinates; dst is already clipped to the view
// bounds, so pages may paint edge to edge.
type Page interface {
	Draw(dst *ebiten.Image, x, y, w, h float64)
}

// PageFunc adapts a plain function to the Page interface.
type PageFunc func(dst *ebiten.Image, x, y, w, h float64)

func (f PageFunc) Draw(dst *ebiten.Image, x, y, w, h float64) {
	f(dst, x, y, w, h)
}
