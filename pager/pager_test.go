package pager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeViewport drives the engine in tests. ScrollTo applies its target
// immediately so assertions see the landed offset.
type fakeViewport struct {
	extent float64
	offset float64
	pages  int

	scrolls  []scrollCall
	captured []PointerID
	released []PointerID
	grabs    int
	ungrabs  int
}

type scrollCall struct {
	target   float64
	animated bool
}

func (f *fakeViewport) Extent() float64 { return f.extent }

func (f *fakeViewport) Offset() float64 { return f.offset }

func (f *fakeViewport) SetOffset(offset float64) { f.offset = offset }

func (f *fakeViewport) PageCount() int { return f.pages }

func (f *fakeViewport) ScrollTo(target float64, animated bool) {
	f.scrolls = append(f.scrolls, scrollCall{target, animated})
	f.offset = target
}

func (f *fakeViewport) CapturePointer(id PointerID) { f.captured = append(f.captured, id) }

func (f *fakeViewport) ReleasePointer(id PointerID) { f.released = append(f.released, id) }

func (f *fakeViewport) BeginGrab() { f.grabs++ }

func (f *fakeViewport) EndGrab() { f.ungrabs++ }

// bareViewport implements only the required Viewport surface, no
// capture and no grab affordance.
type bareViewport struct {
	extent float64
	offset float64
	pages  int
}

func (b *bareViewport) Extent() float64 { return b.extent }

func (b *bareViewport) Offset() float64 { return b.offset }

func (b *bareViewport) SetOffset(offset float64) { b.offset = offset }

func (b *bareViewport) ScrollTo(target float64, _ bool) { b.offset = target }

func (b *bareViewport) PageCount() int { return b.pages }

// recorder collects every callback emission in order.
type recorder struct {
	ticks      []scrollTick
	selections []int
	states     []ScrollState
}

type scrollTick struct {
	position int
	offset   float64
}

func (r *recorder) attach(e *Engine) {
	e.OnPageScroll = func(position int, offset float64) {
		r.ticks = append(r.ticks, scrollTick{position, offset})
	}
	e.OnPageSelected = func(position int) {
		r.selections = append(r.selections, position)
	}
	e.OnScrollStateChanged = func(s ScrollState) {
		r.states = append(r.states, s)
	}
}

// testClock replaces the engine clock so settle deadlines are driven by
// hand.
type testClock struct {
	t time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Unix(1700000000, 0)}
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(t *testing.T, vp Viewport, cfg Config) (*Engine, *recorder, *testClock) {
	t.Helper()
	e := NewEngine(vp, cfg)
	clock := newTestClock()
	e.now = clock.now
	rec := &recorder{}
	rec.attach(e)
	return e, rec, clock
}

func TestPositionOffset(t *testing.T) {
	tests := []struct {
		name   string
		raw    float64
		step   float64
		pos    int
		offset float64
	}{
		{"at origin", 0, 500, 0, 0},
		{"mid first page", 300, 500, 0, 0.6},
		{"exact boundary", 500, 500, 1, 0},
		{"past second boundary", 1250, 500, 2, 0.5},
		{"margin widens the step", 520, 520, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics{raw: tt.raw, step: tt.step}
			pos, offset := m.positionOffset()
			assert.Equal(t, tt.pos, pos)
			assert.InDelta(t, tt.offset, offset, 1e-9)
		})
	}
}

func TestNotifyScrollEmitsEveryTick(t *testing.T) {
	vp := &fakeViewport{extent: 500, pages: 3}
	e, rec, _ := newTestEngine(t, vp, DefaultConfig())

	vp.offset = 120
	e.NotifyScroll()
	e.NotifyScroll() // same offset, still a tick
	vp.offset = 121
	e.NotifyScroll()

	require.Len(t, rec.ticks, 3)
	assert.Equal(t, 0, rec.ticks[0].position)
	assert.InDelta(t, 0.24, rec.ticks[0].offset, 1e-9)
	assert.Empty(t, rec.selections)
}

func TestNotifyScrollBeforeLayout(t *testing.T) {
	vp := &fakeViewport{extent: 0, pages: 3}
	e, rec, clock := newTestEngine(t, vp, DefaultConfig())

	e.NotifyScroll()
	clock.advance(time.Second)
	e.Update()

	assert.Empty(t, rec.ticks)
	assert.Empty(t, rec.states)
	assert.Empty(t, vp.scrolls)
}

func TestSetPage(t *testing.T) {
	vp := &fakeViewport{extent: 500, pages: 3}
	e, rec, _ := newTestEngine(t, vp, DefaultConfig())

	e.SetPage(2)

	require.Len(t, vp.scrolls, 1)
	assert.Equal(t, scrollCall{target: 1000, animated: true}, vp.scrolls[0])
	assert.Equal(t, []int{2}, rec.selections)
	assert.Equal(t, 2, e.CurrentPage())
	assert.Empty(t, rec.states)
}

func TestSetPageClamps(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		target float64
		page   int
	}{
		{"far negative", -5, 0, 0},
		{"past the end", 8, 1000, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := &fakeViewport{extent: 500, pages: 3, offset: 500}
			e, rec, _ := newTestEngine(t, vp, Config{ScrollEnabled: true, InitialPage: 1})

			e.SetPage(tt.index)

			require.Len(t, vp.scrolls, 1)
			assert.Equal(t, tt.target, vp.scrolls[0].target)
			assert.Equal(t, []int{tt.page}, rec.selections)
		})
	}
}

func TestSetPageIdempotent(t *testing.T) {
	vp := &fakeViewport{extent: 500, pages: 3}
	e, rec, _ := newTestEngine(t, vp, DefaultConfig())

	e.SetPage(1)
	e.SetPage(1)

	assert.Len(t, vp.scrolls, 2) // the command is still issued
	assert.Equal(t, []int{1}, rec.selections)
}

func TestSetPageWithoutAnimationRTL(t *testing.T) {
	vp := &fakeViewport{extent: 500, pages: 3}
	e, rec, _ := newTestEngine(t, vp, Config{ScrollEnabled: true, Direction: RTL})

	e.SetPageWithoutAnimation(2)

	require.Len(t, vp.scrolls, 1)
	assert.Equal(t, scrollCall{target: -1000, animated: false}, vp.scrolls[0])
	assert.Equal(t, -1000.0, vp.offset)
	assert.Equal(t, []int{2}, rec.selections)
	assert.Empty(t, rec.states)
}

func TestSetPageBeforeLayout(t *testing.T) {
	vp := &fakeViewport{extent: 0, pages: 3}
	e, rec, _ := newTestEngine(t, vp, DefaultConfig())

	e.SetPage(2)
	assert.Empty(t, vp.scrolls)
	assert.Empty(t, rec.selections)
	assert.Equal(t, 0, e.CurrentPage())

	vp.extent = 500
	e.SetPage(2)
	require.Len(t, vp.scrolls, 1)
	assert.Equal(t, []int{2}, rec.selections)
}

func TestSetPageZeroPages(t *testing.T) {
	vp := &fakeViewport{extent: 500, pages: 0}
	e, rec, _ := newTestEngine(t, vp, DefaultConfig())

	e.SetPage(3)

	require.Len(t, vp.scrolls, 1)
	assert.Equal(t, 0.0, vp.scrolls[0].target)
	assert.Empty(t, rec.selections)
	assert.Equal(t, 0, e.CurrentPage())
}

func TestPageCountShrink(t *testing.T) {
	vp := &fakeViewport{extent: 500, pages: 5}
	e, rec, _ := newTestEngine(t, vp, DefaultConfig())

	e.SetPage(4)
	vp.pages = 2
	e.SetPage(4)

	assert.Equal(t, []int{4, 1}, rec.selections)
	assert.Equal(t, 1, e.CurrentPage())
}

func TestInitialPage(t *testing.T) {
	vp := &fakeViewport{extent: 500, pages: 5}
	e, rec, _ := newTestEngine(t, vp, Config{ScrollEnabled: true, InitialPage: 2})

	assert.Equal(t, 2, e.CurrentPage())

	e.SetPage(2) // already committed: command only, no event
	assert.Len(t, vp.scrolls, 1)
	assert.Empty(t, rec.selections)
}

func TestConfigNormalize(t *testing.T) {
	e := NewEngine(&bareViewport{}, Config{InitialPage: -3, PageMargin: -10})

	cfg := e.Config()
	assert.Equal(t, 0, cfg.InitialPage)
	assert.Equal(t, 0.0, cfg.PageMargin)
	assert.Equal(t, DefaultSettleDelay, cfg.SettleDelay)
	assert.Equal(t, 0, e.CurrentPage())
}

func TestSetConfigChangesStep(t *testing.T) {
	vp := &fakeViewport{extent: 500, pages: 3}
	e, _, _ := newTestEngine(t, vp, DefaultConfig())

	cfg := e.Config()
	cfg.PageMargin = 20
	e.SetConfig(cfg)

	e.SetPage(2)
	require.Len(t, vp.scrolls, 1)
	assert.Equal(t, 1040.0, vp.scrolls[0].target)
}

func TestNilViewport(t *testing.T) {
	e, rec, clock := newTestEngine(t, nil, DefaultConfig())

	e.SetPage(1)
	e.NotifyScroll()
	e.PointerDown(1, 10)
	clock.advance(time.Second)
	e.Update()

	assert.Empty(t, rec.ticks)
	assert.Empty(t, rec.selections)
	assert.Empty(t, rec.states)
}

func TestScrollStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "dragging", StateDragging.String())
	assert.Equal(t, "settling", StateSettling.String())
	assert.Equal(t, "ltr", LTR.String())
	assert.Equal(t, "rtl", RTL.String())
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "vertical", Vertical.String())
}
