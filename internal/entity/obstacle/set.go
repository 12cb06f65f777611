package obstacle

// Handle is a stable reference to an obstacle in a Set.
type Handle int

// None refers to no obstacle.
const None Handle = -1

// Valid reports whether h refers to an obstacle at all.
func (h Handle) Valid() bool {
	return h >= 0
}

// Set is an append-only collection of obstacles. Obstacles are never removed
// during a game, so handles stay valid until Clear.
type Set struct {
	items []*Obstacle
	bound float64
}

// NewSet creates a set whose members wrap at ±bound.
func NewSet(bound float64) *Set {
	return &Set{bound: bound}
}

// Add appends o and returns its handle.
func (s *Set) Add(o *Obstacle) Handle {
	s.items = append(s.items, o)
	return Handle(len(s.items) - 1)
}

// Get returns the obstacle for h, or nil if h is not in the set.
func (s *Set) Get(h Handle) *Obstacle {
	if h < 0 || int(h) >= len(s.items) {
		return nil
	}
	return s.items[h]
}

// All returns the obstacles in handle order. The slice must not be modified.
func (s *Set) All() []*Obstacle {
	return s.items
}

// Len returns the number of obstacles.
func (s *Set) Len() int {
	return len(s.items)
}

// Bound returns the wrap bound.
func (s *Set) Bound() float64 {
	return s.bound
}

// SetBound changes the wrap bound.
func (s *Set) SetBound(bound float64) {
	s.bound = bound
}

// Update moves every obstacle by dt.
func (s *Set) Update(dt float64) {
	for _, o := range s.items {
		o.Update(dt, s.bound)
	}
}

// Clear removes every obstacle. Outstanding handles become invalid.
func (s *Set) Clear() {
	s.items = s.items[:0]
}
