package pager

// ScrollState describes what currently drives the scroll position.
// States cycle idle -> dragging -> settling -> idle; the settling ->
// idle pair is emitted synchronously once the snap command has been
// issued, without waiting for the animation to finish.
type ScrollState int

const (
	// StateIdle: no gesture, no pending settle work.
	StateIdle ScrollState = iota
	// StateDragging: a captured pointer moves the offset 1:1.
	StateDragging
	// StateSettling: the nearest-page snap is being computed and issued.
	StateSettling
)

func (s ScrollState) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "idle"
	}
}
