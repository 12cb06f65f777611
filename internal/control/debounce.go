package control

// DefaultMinInterval is the minimum game time between two accepted moves.
const DefaultMinInterval = 0.1

// Debouncer drops directional events that arrive too soon after the last
// accepted one. Time is game time in seconds, supplied by the caller.
type Debouncer struct {
	MinInterval float64

	last     float64
	accepted bool
}

// NewDebouncer creates a debouncer with the given interval in seconds.
func NewDebouncer(minInterval float64) *Debouncer {
	return &Debouncer{MinInterval: minInterval}
}

// Allow reports whether an event at time now is accepted, and records it if so.
func (d *Debouncer) Allow(now float64) bool {
	if d.accepted && now-d.last < d.MinInterval {
		return false
	}
	d.last = now
	d.accepted = true
	return true
}

// Reset forgets the last accepted event.
func (d *Debouncer) Reset() {
	d.last = 0
	d.accepted = false
}
