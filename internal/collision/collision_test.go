package collision

import (
	"math"
	"testing"

	"chosenoffset.com/frogger/internal/core/events"
	"chosenoffset.com/frogger/internal/core/gamestate"
	"chosenoffset.com/frogger/internal/core/geom"
	"chosenoffset.com/frogger/internal/core/logging"
	"chosenoffset.com/frogger/internal/entity/frog"
	"chosenoffset.com/frogger/internal/entity/obstacle"
	"chosenoffset.com/frogger/internal/world/lane"
)

const eps = 1e-9

type fixture struct {
	bus   *events.Bus
	state *gamestate.GameState
	sys   *System
	frog  *frog.Frog
	cars  *obstacle.Set
	logs  *obstacle.Set
	died  []string
}

func newFixture(t *testing.T, lives int) *fixture {
	t.Helper()
	initial := gamestate.DefaultInitial()
	initial.Lives = lives

	fx := &fixture{
		bus:  events.NewBus(),
		frog: frog.New(frog.DefaultConfig()),
		cars: obstacle.NewSet(8),
		logs: obstacle.NewSet(7.5),
	}
	fx.state = gamestate.New(initial, fx.bus)
	fx.bus.Register(events.FrogDied, fx, func(e events.Event) bool {
		fx.died = append(fx.died, e.Cause)
		return false
	})
	river := RiverFromLanes(lane.DefaultLogLanes(), 7.5, 1)
	fx.sys = New(fx.state, river, logging.Discard())
	return fx
}

func (fx *fixture) placeFrog(x, z float64) {
	fx.frog.Position = geom.NewVec3(x, fx.frog.Config().RestY, z)
}

func (fx *fixture) addCar(x, z float64) obstacle.Handle {
	l := lane.Lane{Z: z, Direction: lane.Left, Speed: 2.5}
	return fx.cars.Add(obstacle.New(obstacle.Car, l, x, 0.35, geom.NewVec3(1.5, 0.7, 0.8)))
}

func (fx *fixture) addLog(x, z, length float64, dir lane.Direction, speed float64) obstacle.Handle {
	l := lane.Lane{Z: z, Direction: dir, Speed: speed}
	return fx.logs.Add(obstacle.New(obstacle.Log, l, x, 0, geom.NewVec3(length, 0.6, 0.6)))
}

func TestRiverFromLanes(t *testing.T) {
	r := RiverFromLanes(lane.DefaultLogLanes(), 7.5, 1)
	if !r.Enabled {
		t.Fatal("Expected river to be enabled")
	}
	if math.Abs(r.Box.Min.Z-(-5.4)) > eps || math.Abs(r.Box.Max.Z-(-2.6)) > eps {
		t.Errorf("Expected river Z [-5.4, -2.6], got [%v, %v]", r.Box.Min.Z, r.Box.Max.Z)
	}
	if r.Box.Min.X != -7.5 || r.Box.Max.X != 7.5 {
		t.Errorf("Expected river X [-7.5, 7.5], got [%v, %v]", r.Box.Min.X, r.Box.Max.X)
	}

	if RiverFromLanes(nil, 7.5, 1).Enabled {
		t.Error("Expected no river without log lanes")
	}
}

func TestCarHitCostsOneLife(t *testing.T) {
	fx := newFixture(t, 3)
	fx.addCar(0, 7)

	out := fx.sys.Check(fx.frog, fx.cars, fx.logs, 1.0/60)
	if !out.Died || out.Cause != CauseCar {
		t.Fatalf("Expected car death, got %+v", out)
	}
	if fx.state.Lives() != 2 {
		t.Errorf("Expected 2 lives, got %d", fx.state.Lives())
	}
	if !fx.frog.IsDying() {
		t.Error("Expected frog to be dying")
	}

	// The car still overlaps during the death animation.
	for i := 0; i < 10; i++ {
		fx.sys.Check(fx.frog, fx.cars, fx.logs, 1.0/60)
	}
	if fx.state.Lives() != 2 {
		t.Errorf("Expected lives to stay at 2 during death animation, got %d", fx.state.Lives())
	}
	if len(fx.died) != 1 || fx.died[0] != "car" {
		t.Errorf("Expected one car death event, got %v", fx.died)
	}
}

func TestCarHitOnLastLifeEndsGame(t *testing.T) {
	fx := newFixture(t, 1)
	fx.state.ToggleCamera()
	fx.addCar(0, 7)

	fx.sys.Check(fx.frog, fx.cars, fx.logs, 1.0/60)

	if fx.state.Lives() != 0 {
		t.Errorf("Expected 0 lives, got %d", fx.state.Lives())
	}
	if !fx.state.IsGameOver() {
		t.Error("Expected game over")
	}
	if fx.state.Camera() != gamestate.CameraWide {
		t.Errorf("Expected wide camera, got %v", fx.state.Camera())
	}
}

func TestNoCarNoDeath(t *testing.T) {
	fx := newFixture(t, 3)
	fx.addCar(3, 7)

	out := fx.sys.Check(fx.frog, fx.cars, fx.logs, 1.0/60)
	if out.Died {
		t.Errorf("Expected no death, got %+v", out)
	}
}

func TestBoardingLogCarriesImmediately(t *testing.T) {
	fx := newFixture(t, 3)
	fx.placeFrog(0, -3)
	h := fx.addLog(0, -3, 2, lane.Right, 1.5)

	out := fx.sys.Check(fx.frog, fx.cars, fx.logs, 0.1)
	if out.Died {
		t.Fatalf("Expected frog on log to survive, got %+v", out)
	}
	if fx.state.CurrentLog() != h || out.Riding != h {
		t.Errorf("Expected current log %d, got %d", h, fx.state.CurrentLog())
	}
	if !out.Carried {
		t.Error("Expected boarding frame to carry the frog")
	}
	if math.Abs(fx.frog.Position.X-0.15) > eps {
		t.Errorf("Expected frog X 0.15, got %v", fx.frog.Position.X)
	}
}

func TestSameLogIsNotCarriedTwice(t *testing.T) {
	fx := newFixture(t, 3)
	fx.placeFrog(0, -3)
	fx.addLog(0, -3, 2, lane.Right, 1.5)

	fx.sys.Check(fx.frog, fx.cars, fx.logs, 0.1)
	x := fx.frog.Position.X

	out := fx.sys.Check(fx.frog, fx.cars, fx.logs, 0.1)
	if out.Carried {
		t.Error("Expected no carry from the log check on a continuing ride")
	}
	if fx.frog.Position.X != x {
		t.Errorf("Expected X unchanged at %v, got %v", x, fx.frog.Position.X)
	}
}

func TestLeavingLogClearsCurrentLog(t *testing.T) {
	fx := newFixture(t, 3)
	fx.placeFrog(0, -3)
	fx.addLog(0, -3, 2, lane.Right, 1.5)
	fx.sys.Check(fx.frog, fx.cars, fx.logs, 0.1)

	fx.placeFrog(0, -2) // bank between road and river
	out := fx.sys.Check(fx.frog, fx.cars, fx.logs, 0.1)
	if out.Died {
		t.Errorf("Expected frog on the bank to survive, got %+v", out)
	}
	if fx.state.CurrentLog() != obstacle.None {
		t.Errorf("Expected no current log, got %d", fx.state.CurrentLog())
	}
}

func TestAirborneLogOverlapDoesNotCarry(t *testing.T) {
	fx := newFixture(t, 3)
	fx.placeFrog(0, -3)
	fx.addLog(0, -3, 2, lane.Left, 1)
	fx.frog.StartJump(geom.NewVec3(0, 0, -4))

	_, carried := fx.sys.CheckLogs(fx.frog, fx.logs, 0.1)
	if carried {
		t.Error("Expected no carry while jumping")
	}
	if fx.frog.Position.X != 0 {
		t.Errorf("Expected X 0, got %v", fx.frog.Position.X)
	}
}

func TestDrowning(t *testing.T) {
	fx := newFixture(t, 3)
	fx.placeFrog(0, -4)
	fx.addLog(5, -4, 2, lane.Right, 1.5)

	out := fx.sys.Check(fx.frog, fx.cars, fx.logs, 1.0/60)
	if !out.Died || out.Cause != CauseRiver {
		t.Fatalf("Expected drowning, got %+v", out)
	}
	if fx.state.Lives() != 2 {
		t.Errorf("Expected 2 lives, got %d", fx.state.Lives())
	}
	if len(fx.died) != 1 || fx.died[0] != "river" {
		t.Errorf("Expected one river death event, got %v", fx.died)
	}
}

func TestNoDrowningMidHop(t *testing.T) {
	fx := newFixture(t, 3)
	fx.frog.Position = geom.NewVec3(0, 0.75, -4)

	if fx.sys.CheckRiver(fx.frog) {
		t.Error("Expected a frog above the water not to drown")
	}
}

func TestBanksAreDry(t *testing.T) {
	fx := newFixture(t, 3)
	for _, z := range []float64{-2, -6} {
		fx.placeFrog(0, z)
		if fx.sys.CheckRiver(fx.frog) {
			t.Errorf("Expected bank row z=%v to be dry", z)
		}
	}
}

func TestSweptOffEdge(t *testing.T) {
	fx := newFixture(t, 3)
	fx.placeFrog(7.6, -4)
	fx.addLog(7.2, -4, 2, lane.Right, 1.5)

	out := fx.sys.Check(fx.frog, fx.cars, fx.logs, 1.0/60)
	if !out.Died || out.Cause != CauseSwept {
		t.Fatalf("Expected swept death, got %+v", out)
	}
	if fx.state.CurrentLog() != obstacle.None {
		t.Errorf("Expected current log cleared, got %d", fx.state.CurrentLog())
	}
}

func TestChecksSkippedWhileDying(t *testing.T) {
	fx := newFixture(t, 3)
	fx.placeFrog(0, -4)
	fx.frog.Die()

	out := fx.sys.Check(fx.frog, fx.cars, fx.logs, 1.0/60)
	if out.Died {
		t.Errorf("Expected no death while dying, got %+v", out)
	}
	if fx.state.Lives() != 3 {
		t.Errorf("Expected 3 lives, got %d", fx.state.Lives())
	}
}
