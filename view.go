package swipedeck

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/samber/lo"

	"github.com/depeter/swipedeck/pager"
)

// View is an Ebitengine pager widget. It owns the scroll offset and
// page layout, renders pages, and feeds raw input into a pager.Engine.
//
// Call SetBounds before the first Update, Update once per tick, and
// Draw each frame. Event callbacks are wired through Engine().
type View struct {
	engine *pager.Engine
	pages  []Page

	x, y float64
	w, h float64

	offset    float64 // signed, kept inside the content range
	target    float64
	animating bool

	captured   bool
	capturedID pager.PointerID
	touchIDs   []ebiten.TouchID

	grabbed    bool
	prevCursor ebiten.CursorShapeType
}

// NewView creates a pager over the given pages. The view reports a zero
// extent until SetBounds, so engine operations no-op gracefully before
// layout.
func NewView(cfg pager.Config, pages ...Page) *View {
	v := &View{pages: pages}
	v.engine = pager.NewEngine(v, cfg)
	return v
}

// Engine exposes the interaction engine for callback wiring and
// imperative control.
func (v *View) Engine() *pager.Engine {
	return v.engine
}

// SetBounds places the widget in screen coordinates. When the extent
// changes, the view re-anchors on the committed page, since offsets
// scale with the viewport size.
func (v *View) SetBounds(x, y, w, h float64) {
	prevExtent := v.Extent()
	v.x, v.y, v.w, v.h = x, y, w, h
	if v.Extent() != prevExtent {
		v.engine.SetPageWithoutAnimation(v.engine.CurrentPage())
	}
}

// SetPages replaces the page sequence. The committed index clamps
// against the new count on the next navigation.
func (v *View) SetPages(pages ...Page) {
	v.pages = pages
	v.offset = v.clampOffset(v.offset)
	v.target = v.clampOffset(v.target)
}

// Pages returns the current page sequence.
func (v *View) Pages() []Page {
	return v.pages
}

// SetConfig swaps the pager configuration and re-anchors on the
// committed page under the new offset mapping.
func (v *View) SetConfig(cfg pager.Config) {
	v.engine.SetConfig(cfg)
	v.engine.SetPageWithoutAnimation(v.engine.CurrentPage())
}

// SetPage navigates to index with a smooth scroll.
func (v *View) SetPage(index int) {
	v.engine.SetPage(index)
}

// SetPageWithoutAnimation jumps to index immediately.
func (v *View) SetPageWithoutAnimation(index int) {
	v.engine.SetPageWithoutAnimation(index)
}

// SetScrollEnabled gates new drag gestures.
func (v *View) SetScrollEnabled(enabled bool) {
	v.engine.SetScrollEnabled(enabled)
}

// CurrentPage returns the committed page index.
func (v *View) CurrentPage() int {
	return v.engine.CurrentPage()
}

// step is the offset distance between adjacent page boundaries.
func (v *View) step() float64 {
	return v.Extent() + v.engine.Config().PageMargin
}

// clampOffset keeps an offset inside the content range: [0, span] for
// LTR, [-span, 0] for RTL, with span = (pages-1)*step.
func (v *View) clampOffset(offset float64) float64 {
	if len(v.pages) == 0 {
		return 0
	}
	span := float64(len(v.pages)-1) * v.step()
	if v.engine.Config().Direction == pager.RTL {
		return lo.Clamp(offset, -span, 0)
	}
	return lo.Clamp(offset, 0, span)
}

// Extent returns the view size along the scroll axis; 0 before SetBounds.
func (v *View) Extent() float64 {
	if v.engine.Config().Orientation == pager.Vertical {
		return v.h
	}
	return v.w
}

// Offset returns the signed scroll offset.
func (v *View) Offset() float64 {
	return v.offset
}

// SetOffset writes the offset immediately, clamped to the content
// range, and cancels any animated scroll in flight.
func (v *View) SetOffset(offset float64) {
	v.offset = v.clampOffset(offset)
	v.target = v.offset
	v.animating = false
}

// ScrollTo starts a smooth scroll toward target, or jumps straight
// there when animated is false.
func (v *View) ScrollTo(target float64, animated bool) {
	target = v.clampOffset(target)
	if !animated {
		v.SetOffset(target)
		v.engine.NotifyScroll()
		return
	}
	v.target = target
	v.animating = true
}

// PageCount returns the number of pages currently supplied.
func (v *View) PageCount() int {
	return len(v.pages)
}

// CapturePointer routes the pointer's remaining event stream
// exclusively to the engine.
func (v *View) CapturePointer(id pager.PointerID) {
	v.captured = true
	v.capturedID = id
}

// ReleasePointer ends exclusive routing.
func (v *View) ReleasePointer(id pager.PointerID) {
	if v.captured && v.capturedID == id {
		v.captured = false
	}
}

// BeginGrab switches the cursor to the grab affordance, remembering
// what to restore.
func (v *View) BeginGrab() {
	if !v.grabbed {
		v.prevCursor = ebiten.CursorShape()
		v.grabbed = true
	}
	ebiten.SetCursorShape(ebiten.CursorShapeMove)
}

// EndGrab restores the cursor. The engine calls it on every drag exit
// path, cancellation included.
func (v *View) EndGrab() {
	if !v.grabbed {
		return
	}
	ebiten.SetCursorShape(v.prevCursor)
	v.grabbed = false
}

// Update polls input, advances the scroll animation, and drives the
// settle timer. Call once per ebiten tick.
func (v *View) Update() {
	v.pollMouse()
	v.pollTouches()
	v.pollWheel()
	v.stepAnimation()
	v.engine.Update()
}

func (v *View) stepAnimation() {
	if !v.animating {
		return
	}
	prev := v.offset
	v.offset = lerp(v.offset, v.target, scrollAnimSpeed)
	if math.Abs(v.target-v.offset) < scrollFinishDist {
		v.offset = v.target
		v.animating = false
	}
	if v.offset != prev {
		v.engine.NotifyScroll()
	}
}

// Draw renders the visible pages clipped to the view bounds.
func (v *View) Draw(dst *ebiten.Image) {
	if v.w <= 0 || v.h <= 0 || len(v.pages) == 0 {
		return
	}
	clip := dst.SubImage(image.Rect(int(v.x), int(v.y), int(v.x+v.w), int(v.y+v.h))).(*ebiten.Image)

	step := v.step()
	extent := v.Extent()
	cfg := v.engine.Config()
	for i := range v.pages {
		world := float64(i) * step
		if cfg.Direction == pager.RTL {
			world = -world
		}
		along := world - v.offset

		// Skip offscreen pages
		if along+extent <= 0 || along >= extent {
			continue
		}

		if cfg.Orientation == pager.Vertical {
			v.pages[i].Draw(clip, v.x, v.y+along, v.w, v.h)
		} else {
			v.pages[i].Draw(clip, v.x+along, v.y, v.w, v.h)
		}
	}
}
