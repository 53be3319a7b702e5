package pager

// PointerID identifies one pointer (a mouse button, a touch contact)
// across a down/move/up sequence.
type PointerID int64

// Viewport is the scroll primitive the engine drives. The host owns the
// actual offset; the engine reads it, writes it directly during drags,
// and issues scroll-to commands for snaps and imperative navigation.
//
// Offsets are signed. With step = Extent() + Config.PageMargin, page i
// rests at offset i*step for LTR layouts and -(i*step) for RTL.
type Viewport interface {
	// Extent is the viewport size along the scroll axis, 0 before layout.
	Extent() float64
	// Offset is the current signed scroll offset.
	Offset() float64
	// SetOffset moves the scroll position immediately, no animation.
	SetOffset(offset float64)
	// ScrollTo moves the scroll position to target, smoothly when
	// animated is set. Commands are fire-and-forget; a later target
	// simply wins.
	ScrollTo(target float64, animated bool)
	// PageCount is the number of pages the host currently supplies.
	PageCount() int
}

// PointerCapturer is implemented by hosts that can route a pointer's
// event stream exclusively to one consumer for the length of a drag.
// Capture is released on every drag exit path, cancellation included.
type PointerCapturer interface {
	CapturePointer(id PointerID)
	ReleasePointer(id PointerID)
}

// GrabStyler is implemented by hosts with a visual grab affordance
// (cursor shape, text-selection suppression). BeginGrab and EndGrab are
// always paired, whichever way the drag ends.
type GrabStyler interface {
	BeginGrab()
	EndGrab()
}
