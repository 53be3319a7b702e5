package swipedeck

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"

	"github.com/depeter/swipedeck/pager"
)

// mousePointer is the PointerID used for the left mouse button. Touch
// contacts use their ebiten.TouchID, which is never negative.
const mousePointer pager.PointerID = -1

// contains reports whether the point is inside the view bounds.
func (v *View) contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= v.x && fx < v.x+v.w && fy >= v.y && fy < v.y+v.h
}

// axisCoord picks the drag coordinate along the scroll axis.
func (v *View) axisCoord(x, y int) float64 {
	if v.engine.Config().Orientation == pager.Vertical {
		return float64(y)
	}
	return float64(x)
}

func (v *View) pollMouse() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && v.contains(x, y) {
		v.engine.PointerDown(mousePointer, v.axisCoord(x, y))
	}
	if !v.captured || v.capturedID != mousePointer {
		return
	}
	// Captured: keep tracking even outside the bounds.
	v.engine.PointerMove(mousePointer, v.axisCoord(x, y))
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.engine.PointerUp(mousePointer)
	}
}

func (v *View) pollTouches() {
	v.touchIDs = inpututil.AppendJustPressedTouchIDs(v.touchIDs[:0])
	for _, id := range v.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if v.contains(x, y) {
			v.engine.PointerDown(pager.PointerID(id), v.axisCoord(x, y))
		}
	}
	if !v.captured || v.capturedID == mousePointer {
		return
	}
	id := ebiten.TouchID(v.capturedID)
	if inpututil.IsTouchJustReleased(id) {
		v.engine.PointerUp(v.capturedID)
		return
	}
	v.touchIDs = ebiten.AppendTouchIDs(v.touchIDs[:0])
	for _, active := range v.touchIDs {
		if active == id {
			x, y := ebiten.TouchPosition(id)
			v.engine.PointerMove(v.capturedID, v.axisCoord(x, y))
			return
		}
	}
	// The contact vanished without a release event.
	v.engine.PointerCancel(v.capturedID)
}

func (v *View) pollWheel() {
	x, y := ebiten.CursorPosition()
	if !v.contains(x, y) || v.engine.Dragging() {
		return
	}
	wx, wy := ebiten.Wheel()
	var d float64
	if v.engine.Config().Orientation == pager.Vertical {
		d = wy
	} else {
		// Horizontal pagers take the x axis when a trackpad provides
		// one and fall back to the plain wheel.
		d = lo.Ternary(wx != 0, wx, wy)
	}
	if d == 0 {
		return
	}
	dir := lo.Ternary(v.engine.Config().Direction == pager.RTL, -1.0, 1.0)
	prev := v.offset
	v.SetOffset(v.offset - d*scrollWheelSpeed*dir)
	if v.offset != prev {
		v.engine.NotifyScroll()
	}
}
