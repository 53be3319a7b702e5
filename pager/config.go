package pager

import "time"

// Direction is the layout direction of the page sequence.
type Direction int

const (
	// LTR lays pages out left to right: page i rests at raw offset i*step.
	LTR Direction = iota
	// RTL mirrors the sequence; signed offsets grow negative toward later
	// pages.
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Orientation is the scroll axis of the pager.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// DefaultSettleDelay is the quiescence window after the last passive
// scroll tick before the pager snaps to the nearest page boundary.
const DefaultSettleDelay = 120 * time.Millisecond

// Config describes one pager instance. The zero value is a usable LTR
// horizontal pager with gestures disabled; DefaultConfig enables them.
type Config struct {
	// ScrollEnabled gates new drag gestures. Turning it off does not
	// interrupt a drag already in progress.
	ScrollEnabled bool
	// Direction flips the sign of raw offsets and of drag deltas.
	Direction Direction
	// Orientation selects the scroll axis. Drag gestures are
	// horizontal-only; a vertical pager is driven by passive scrolling
	// and the imperative API.
	Orientation Orientation
	// InitialPage is the committed index before any navigation.
	InitialPage int
	// PageMargin is the gap between adjacent pages, in the same unit as
	// the viewport extent. step = extent + PageMargin.
	PageMargin float64
	// SettleDelay overrides DefaultSettleDelay when positive.
	SettleDelay time.Duration
}

// DefaultConfig returns the configuration of a plain horizontal pager.
func DefaultConfig() Config {
	return Config{
		ScrollEnabled: true,
		SettleDelay:   DefaultSettleDelay,
	}
}

func (c Config) normalize() Config {
	c.InitialPage = max(c.InitialPage, 0)
	c.PageMargin = max(c.PageMargin, 0)
	if c.SettleDelay <= 0 {
		c.SettleDelay = DefaultSettleDelay
	}
	return c
}
