// Package pager implements the interaction state machine behind a
// paginated, swipeable container: raw pointer and scroll input becomes
// a continuous page-position signal, observers are notified through
// callbacks, and once input stops the viewport is snapped to the
// nearest page boundary.
//
// The package is host-neutral. A host supplies the scroll primitive
// through the Viewport interface, forwards raw input to the Pointer*
// and NotifyScroll methods, and calls Update once per frame to drive
// the settle timer. Everything runs on the host's single update
// context; there are no goroutines and no locks.
package pager

import (
	"math"
	"time"

	"github.com/samber/lo"
)

// Engine is one pager instance's state machine.
//
// The On* callback fields are read on every emission; set them before
// feeding input. A nil callback skips that notification.
type Engine struct {
	// OnPageScroll receives the continuous position signal on every
	// scroll and drag tick: the page at the leading edge plus the
	// fractional progress toward the next one, in [0, 1].
	OnPageScroll func(position int, offset float64)
	// OnPageSelected fires exactly when the committed page changes,
	// never on intermediate ticks.
	OnPageSelected func(position int)
	// OnScrollStateChanged fires on every state transition, including
	// the synchronous settling -> idle pair after a snap.
	OnScrollStateChanged func(state ScrollState)

	viewport Viewport
	capturer PointerCapturer
	styler   GrabStyler
	cfg      Config

	state     ScrollState
	committed int
	drag      *dragSession
	settleAt  time.Time

	now func() time.Time
}

// NewEngine builds an engine over the host's viewport. The optional
// PointerCapturer and GrabStyler capabilities are picked up from the
// viewport value itself.
func NewEngine(viewport Viewport, cfg Config) *Engine {
	cfg = cfg.normalize()
	e := &Engine{
		viewport:  viewport,
		cfg:       cfg,
		committed: cfg.InitialPage,
		now:       time.Now,
	}
	e.capturer, _ = viewport.(PointerCapturer)
	e.styler, _ = viewport.(GrabStyler)
	return e
}

// metrics is the snapshot every emission and snap computes from.
type metrics struct {
	extent float64
	step   float64
	raw    float64
}

// measure reads the viewport. ok is false while the viewport is missing
// or unlaid-out; callers treat that as "do nothing".
func (e *Engine) measure() (metrics, bool) {
	if e.viewport == nil {
		return metrics{}, false
	}
	extent := e.viewport.Extent()
	if extent <= 0 {
		return metrics{}, false
	}
	return metrics{
		extent: extent,
		step:   extent + e.cfg.PageMargin,
		raw:    math.Abs(e.viewport.Offset()),
	}, true
}

// positionOffset derives the discrete page and fractional progress.
// step > 0 holds whenever a metrics value exists.
func (m metrics) positionOffset() (int, float64) {
	f := m.raw / m.step
	pos := math.Floor(f)
	return int(pos), lo.Clamp(f-pos, 0, 1)
}

// reportScroll recomputes the position pair and notifies the observer.
// Returns false while the viewport is not ready.
func (e *Engine) reportScroll() bool {
	m, ok := e.measure()
	if !ok {
		return false
	}
	if e.OnPageScroll != nil {
		pos, off := m.positionOffset()
		e.OnPageScroll(pos, off)
	}
	return true
}

func (e *Engine) setState(s ScrollState) {
	if s == e.state {
		return
	}
	e.state = s
	if e.OnScrollStateChanged != nil {
		e.OnScrollStateChanged(s)
	}
}

// NotifyScroll reports a host-driven scroll tick: wheel input, an
// animated snap in flight, or any other offset change not written by an
// active drag. Each tick re-arms the settle timer, so the pager snaps
// once the stream goes quiet.
func (e *Engine) NotifyScroll() {
	if !e.reportScroll() {
		return
	}
	if e.drag == nil {
		e.settleAt = e.now().Add(e.cfg.SettleDelay)
	}
}

// Update drives the settle timer; the host calls it once per frame.
func (e *Engine) Update() {
	if e.settleAt.IsZero() || e.now().Before(e.settleAt) {
		return
	}
	e.settleAt = time.Time{}
	e.settle()
}

// settle is the shared quiescence sequence for both the drag-release
// and the timer path: one settling/idle pair around a snap, emitted in
// the same synchronous turn.
func (e *Engine) settle() {
	e.setState(StateSettling)
	e.snapToNearest(true)
	e.setState(StateIdle)
}

// snapToNearest navigates to the page whose boundary is closest to the
// current offset. Rounding picks the visually nearer page regardless of
// drag direction; there is no velocity model.
func (e *Engine) snapToNearest(animated bool) {
	m, ok := e.measure()
	if !ok {
		return
	}
	e.navigateTo(int(math.Round(m.raw/m.step)), animated)
}

// navigateTo is the single navigation path shared by snaps and the
// imperative API: clamp against the live page count, issue the scroll
// command, commit the selection change.
func (e *Engine) navigateTo(index int, animated bool) {
	m, ok := e.measure()
	if !ok {
		return
	}
	index = lo.Clamp(index, 0, max(e.viewport.PageCount()-1, 0))
	target := float64(index) * m.step
	if e.cfg.Direction == RTL {
		target = -target
	}
	e.viewport.ScrollTo(target, animated)
	if index != e.committed {
		e.committed = index
		if e.OnPageSelected != nil {
			e.OnPageSelected(index)
		}
	}
}

// SetPage navigates to index with a smooth scroll. Out-of-range indices
// clamp; re-selecting the current page issues the scroll command but no
// selection event. Safe to call before layout.
func (e *Engine) SetPage(index int) {
	e.navigateTo(index, true)
}

// SetPageWithoutAnimation jumps to index immediately.
func (e *Engine) SetPageWithoutAnimation(index int) {
	e.navigateTo(index, false)
}

// SetScrollEnabled gates future drag gestures. An active drag keeps its
// capture and finishes normally.
func (e *Engine) SetScrollEnabled(enabled bool) {
	e.cfg.ScrollEnabled = enabled
}

// SetConfig replaces the configuration for subsequent input. The
// committed index is untouched; it clamps against the page count on the
// next navigation.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg.normalize()
}

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// CurrentPage returns the committed page index.
func (e *Engine) CurrentPage() int { return e.committed }

// State returns the current scroll state.
func (e *Engine) State() ScrollState { return e.state }

// Dragging reports whether a captured pointer currently owns the offset.
func (e *Engine) Dragging() bool { return e.drag != nil }
