// Package obstacle holds the cars and logs that move along lanes at constant
// speed and wrap around the playfield.
package obstacle

import (
	"fmt"

	"chosenoffset.com/frogger/internal/core/geom"
	"chosenoffset.com/frogger/internal/world/lane"
)

// Kind distinguishes obstacle types.
type Kind int

const (
	Car Kind = iota
	Log
)

func (k Kind) String() string {
	if k == Log {
		return "log"
	}
	return "car"
}

// CollisionType is what touching an obstacle does to the frog.
type CollisionType int

const (
	Death  CollisionType = iota // cars
	RideOn                      // logs
)

func (c CollisionType) String() string {
	if c == RideOn {
		return "ride-on"
	}
	return "death"
}

// Obstacle is a car or log travelling along a lane.
type Obstacle struct {
	Kind     Kind
	Lane     lane.Lane
	Position geom.Vec3 // centre
	Velocity geom.Vec3
	Size     geom.Vec3 // full extent of the bounding box
}

// New creates an obstacle at x on its lane with velocity derived from the lane.
func New(kind Kind, l lane.Lane, x, y float64, size geom.Vec3) *Obstacle {
	return &Obstacle{
		Kind:     kind,
		Lane:     l,
		Position: geom.NewVec3(x, y, l.Z),
		Velocity: geom.NewVec3(l.Velocity(), 0, 0),
		Size:     size,
	}
}

// CollisionType returns the collision outcome for this obstacle.
func (o *Obstacle) CollisionType() CollisionType {
	if o.Kind == Log {
		return RideOn
	}
	return Death
}

// Box returns the obstacle's bounding box.
func (o *Obstacle) Box() geom.Box3 {
	return geom.BoxFromCenter(o.Position, o.Size)
}

// Displacement returns how far the obstacle moves along X in dt seconds.
func (o *Obstacle) Displacement(dt float64) float64 {
	return o.Velocity.X * dt
}

// Update moves the obstacle and wraps it to the opposite bound once it has
// passed the bound in its direction of travel.
func (o *Obstacle) Update(dt, bound float64) {
	o.Position.X += o.Velocity.X * dt

	switch {
	case o.Velocity.X > 0 && o.Position.X > bound:
		o.Position.X = -bound
	case o.Velocity.X < 0 && o.Position.X < -bound:
		o.Position.X = bound
	}
}

func (o *Obstacle) String() string {
	return fmt.Sprintf("%s@%v v=%.2f", o.Kind, o.Position, o.Velocity.X)
}
