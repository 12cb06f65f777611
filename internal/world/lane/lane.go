// Package lane describes the horizontal corridors that cars and logs travel along.
package lane

import (
	"fmt"
	"strings"
)

// Direction is the direction of travel along the X axis.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// MarshalText implements encoding.TextMarshaler so lanes round-trip through config files.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "left":
		*d = Left
	case "right":
		*d = Right
	default:
		return fmt.Errorf("unknown lane direction %q", string(text))
	}
	return nil
}

// Sign returns -1 for left and +1 for right.
func (d Direction) Sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}

// Lane is a fixed Z row with constant speed in one direction.
type Lane struct {
	Z         float64   `toml:"z"`
	Direction Direction `toml:"direction"`
	Speed     float64   `toml:"speed"`
}

// Velocity returns the signed X speed of obstacles in the lane.
func (l Lane) Velocity() float64 {
	return l.Direction.Sign() * l.Speed
}

// DefaultCarLanes returns the road lanes.
func DefaultCarLanes() []Lane {
	return []Lane{
		{Z: 4, Direction: Left, Speed: 2.5},
		{Z: 3, Direction: Right, Speed: 3},
		{Z: 2, Direction: Left, Speed: 3.5},
	}
}

// DefaultLogLanes returns the river lanes.
func DefaultLogLanes() []Lane {
	return []Lane{
		{Z: -3, Direction: Left, Speed: 1},
		{Z: -4, Direction: Right, Speed: 1.5},
		{Z: -5, Direction: Left, Speed: 2},
	}
}

// ZRange returns the smallest and largest lane Z. ok is false for no lanes.
func ZRange(lanes []Lane) (minZ, maxZ float64, ok bool) {
	if len(lanes) == 0 {
		return 0, 0, false
	}
	minZ, maxZ = lanes[0].Z, lanes[0].Z
	for _, l := range lanes[1:] {
		if l.Z < minZ {
			minZ = l.Z
		}
		if l.Z > maxZ {
			maxZ = l.Z
		}
	}
	return minZ, maxZ, true
}
