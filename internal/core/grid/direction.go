package grid

import "math"

// Direction is one of the four cardinal hop directions.
type Direction int

const (
	DirNone Direction = iota
	Up                // toward the far bank
	Down
	Left
	Right
)

// Delta returns the grid step for a direction.
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Heading returns the Y rotation that faces the direction.
func (d Direction) Heading() float64 {
	switch d {
	case Down:
		return math.Pi
	case Left:
		return math.Pi / 2
	case Right:
		return -math.Pi / 2
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
