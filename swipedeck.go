// Package swipedeck is a snap-paging swipe container for Ebitengine: a
// horizontal (or vertical) sequence of full-size pages navigated by
// drag gesture, wheel/trackpad scroll, or the imperative API, always
// settling on an exact page boundary.
//
// View is the drawable widget. The interaction rules, event callbacks
// and snap behavior live in the pager subpackage; View wires a
// pager.Engine to Ebitengine input and rendering.
package swipedeck

const (
	// scrollAnimSpeed is the lerp factor applied per tick while an
	// animated scroll chases its target.
	scrollAnimSpeed = 0.18
	// scrollFinishDist is the remaining distance, in pixels, below which
	// an animated scroll lands exactly on its target.
	scrollFinishDist = 0.5
	// scrollWheelSpeed converts one wheel unit into pixels of scroll.
	scrollWheelSpeed = 60.0
)

// lerp for smooth scrolling
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
