package pager

import (
	"time"

	"github.com/samber/lo"
)

// dragSession is the per-drag record. It exists only between a matching
// pointer-down and pointer-up/cancel and is owned by the gesture
// handlers alone.
type dragSession struct {
	pointer     PointerID
	startCoord  float64
	startOffset float64
}

// PointerDown begins a drag for the given pointer, coord measured along
// the scroll axis. Ignored while another drag is active, while gestures
// are disabled, and on vertical pagers.
func (e *Engine) PointerDown(id PointerID, coord float64) {
	if e.drag != nil || !e.cfg.ScrollEnabled || e.cfg.Orientation != Horizontal {
		return
	}
	if e.viewport == nil {
		return
	}
	e.drag = &dragSession{
		pointer:     id,
		startCoord:  coord,
		startOffset: e.viewport.Offset(),
	}
	e.settleAt = time.Time{} // the drag owns the offset now; no snap under it
	if e.capturer != nil {
		e.capturer.CapturePointer(id)
	}
	if e.styler != nil {
		e.styler.BeginGrab()
	}
	e.setState(StateDragging)
}

// PointerMove tracks the captured pointer 1:1. Moves for a foreign
// pointer, or with no active drag, are ignored.
func (e *Engine) PointerMove(id PointerID, coord float64) {
	if e.drag == nil || e.drag.pointer != id {
		return
	}
	delta := coord - e.drag.startCoord
	dir := lo.Ternary(e.cfg.Direction == RTL, -1.0, 1.0)
	e.viewport.SetOffset(e.drag.startOffset - delta*dir)
	e.reportScroll()
}

// PointerUp ends the drag and snaps to the nearest page boundary.
func (e *Engine) PointerUp(id PointerID) {
	e.endDrag(id)
}

// PointerCancel ends the drag exactly like PointerUp; the snap runs
// from wherever the last move left the offset.
func (e *Engine) PointerCancel(id PointerID) {
	e.endDrag(id)
}

// endDrag releases capture and restores the grab affordance on every
// exit path, then runs the release settle sequence.
func (e *Engine) endDrag(id PointerID) {
	if e.drag == nil || e.drag.pointer != id {
		return
	}
	if e.capturer != nil {
		e.capturer.ReleasePointer(id)
	}
	if e.styler != nil {
		e.styler.EndGrab()
	}
	e.drag = nil
	e.settle()
}
