package obstacle

import (
	"math"
	"testing"

	"chosenoffset.com/frogger/internal/core/geom"
	"chosenoffset.com/frogger/internal/world/lane"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestUpdateWrapsMovingRight(t *testing.T) {
	l := lane.Lane{Z: -4, Direction: lane.Right, Speed: 2}
	o := New(Log, l, 7.4, 0, geom.NewVec3(2, 0.6, 0.6))

	o.Update(0.01, 7.5)
	if math.Abs(o.Position.X-7.42) > 1e-9 {
		t.Fatalf("Expected x=7.42 before the bound, got %f", o.Position.X)
	}

	o.Update(0.1, 7.5)
	if o.Position.X != -7.5 {
		t.Errorf("Expected wrap to -7.5, got %f", o.Position.X)
	}
}

func TestUpdateWrapsMovingLeft(t *testing.T) {
	l := lane.Lane{Z: 4, Direction: lane.Left, Speed: 2.5}
	o := New(Car, l, -7.9, 0.35, geom.NewVec3(1.5, 0.7, 0.8))

	o.Update(0.1, 8)
	if o.Position.X != 8 {
		t.Errorf("Expected wrap to 8, got %f", o.Position.X)
	}
}

func TestUpdateDoesNotWrapAgainstTravel(t *testing.T) {
	// A right-moving obstacle that starts beyond the left bound just drives in.
	l := lane.Lane{Z: 3, Direction: lane.Right, Speed: 3}
	o := New(Car, l, -9, 0.35, geom.NewVec3(1.5, 0.7, 0.8))

	o.Update(0.1, 8)
	if math.Abs(o.Position.X-(-8.7)) > 1e-9 {
		t.Errorf("Expected x=-8.7, got %f", o.Position.X)
	}
}

func TestCollisionTypeByKind(t *testing.T) {
	car := New(Car, lane.Lane{}, 0, 0, geom.Vec3{})
	log := New(Log, lane.Lane{}, 0, 0, geom.Vec3{})

	if car.CollisionType() != Death {
		t.Errorf("Expected car to be %s, got %s", Death, car.CollisionType())
	}
	if log.CollisionType() != RideOn {
		t.Errorf("Expected log to be %s, got %s", RideOn, log.CollisionType())
	}
}

func TestVelocityFromLane(t *testing.T) {
	o := New(Log, lane.Lane{Z: -5, Direction: lane.Left, Speed: 2}, 0, 0, geom.Vec3{})
	if o.Velocity.X != -2 || o.Position.Z != -5 {
		t.Errorf("Expected velocity -2 on z=-5, got %v at %v", o.Velocity, o.Position)
	}
	if o.Displacement(0.5) != -1 {
		t.Errorf("Expected displacement -1, got %f", o.Displacement(0.5))
	}
}

func TestSetHandles(t *testing.T) {
	s := NewSet(7.5)
	a := s.Add(New(Log, lane.Lane{Z: -3}, 0, 0, geom.Vec3{}))
	b := s.Add(New(Log, lane.Lane{Z: -4}, 1, 0, geom.Vec3{}))

	if a == b || !a.Valid() || !b.Valid() {
		t.Fatalf("Expected distinct valid handles, got %d and %d", a, b)
	}
	if s.Get(b).Position.X != 1 {
		t.Errorf("Expected handle %d to resolve to the second log", b)
	}
	if s.Get(None) != nil || s.Get(Handle(5)) != nil {
		t.Error("Expected unknown handles to resolve to nil")
	}

	s.Clear()
	if s.Len() != 0 || s.Get(a) != nil {
		t.Error("Expected Clear to invalidate handles")
	}
}

func TestSpawnLayout(t *testing.T) {
	cfg := DefaultSpawnConfig()
	sp := NewSpawner(cfg, fixedRand(0))

	cars := NewSet(8)
	sp.SpawnCars(cars, lane.DefaultCarLanes())
	if cars.Len() != 9 {
		t.Fatalf("Expected 9 cars, got %d", cars.Len())
	}

	// First lane moves left: starts at +7 and steps by 15/3 = 5.
	want := []float64{7, 2, -3}
	for i, x := range want {
		c := cars.All()[i]
		if math.Abs(c.Position.X-x) > 1e-9 {
			t.Errorf("car %d: expected x=%f, got %f", i, x, c.Position.X)
		}
		if c.Position.Y != 0.35 || c.Position.Z != 4 {
			t.Errorf("car %d: expected y=0.35 z=4, got %v", i, c.Position)
		}
	}

	logs := NewSet(7.5)
	NewSpawner(cfg, fixedRand(0.5)).SpawnLogs(logs, lane.DefaultLogLanes())
	if logs.Len() != 9 {
		t.Fatalf("Expected 9 logs, got %d", logs.Len())
	}
	for _, l := range logs.All() {
		if l.Size.X != 2 || l.Size.Y != 0.6 {
			t.Errorf("Expected log size 2x0.6, got %v", l.Size)
		}
		if l.CollisionType() != RideOn {
			t.Errorf("Expected logs to be ride-on")
		}
	}
}
