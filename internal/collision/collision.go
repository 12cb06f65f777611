// Package collision resolves the frog against cars, logs and the river.
//
// Checks run in a fixed order every frame: cars, then logs, then the river.
// The log check must run before the river check so a frog standing on a log
// is never treated as drowning. While the frog's death animation plays every
// check is skipped, so one hit costs exactly one life.
package collision

import (
	"github.com/charmbracelet/log"

	"chosenoffset.com/frogger/internal/core/events"
	"chosenoffset.com/frogger/internal/core/gamestate"
	"chosenoffset.com/frogger/internal/core/geom"
	"chosenoffset.com/frogger/internal/entity/frog"
	"chosenoffset.com/frogger/internal/entity/obstacle"
	"chosenoffset.com/frogger/internal/world/lane"
)

// Cause names what killed the frog.
type Cause string

const (
	CauseNone  Cause = ""
	CauseCar   Cause = "car"
	CauseRiver Cause = "river"
	CauseSwept Cause = "swept"
)

// Outcome is the result of one frame's checks.
type Outcome struct {
	Died  bool
	Cause Cause

	// Riding is the log under the frog after the log check, or obstacle.None.
	Riding obstacle.Handle
	// Carried is true when the log check already moved the frog this frame.
	Carried bool
}

// River is the drowning volume and the playfield edge used for the swept check.
type River struct {
	Box       geom.Box3
	HalfWidth float64
	Enabled   bool
}

// Thin slab at ground level; a frog in mid-hop is above it.
const (
	riverMinY  = -0.1
	riverMaxY  = 0.05
	riverInset = 0.1
)

// RiverFromLanes builds the river volume covering every log lane row, inset
// slightly so a frog on the bank next to the water does not touch it.
func RiverFromLanes(logLanes []lane.Lane, halfWidth, cellSize float64) River {
	minZ, maxZ, ok := lane.ZRange(logLanes)
	if !ok {
		return River{HalfWidth: halfWidth}
	}
	half := cellSize/2 - riverInset
	return River{
		Box: geom.Box3{
			Min: geom.NewVec3(-halfWidth, riverMinY, minZ-half),
			Max: geom.NewVec3(halfWidth, riverMaxY, maxZ+half),
		},
		HalfWidth: halfWidth,
		Enabled:   true,
	}
}

// System runs the checks and applies their consequences to the game state.
type System struct {
	state  *gamestate.GameState
	river  River
	logger *log.Logger
}

// New creates a collision system writing to state.
func New(state *gamestate.GameState, river River, logger *log.Logger) *System {
	if logger == nil {
		logger = log.Default()
	}
	return &System{state: state, river: river, logger: logger}
}

// River returns the drowning volume.
func (s *System) River() River {
	return s.river
}

// SetRiver replaces the drowning volume, used when lanes are reconfigured.
func (s *System) SetRiver(r River) {
	s.river = r
}

// Check runs cars, logs, river and the swept check in order, stopping at the
// first death. Nothing happens while the frog is dying.
func (s *System) Check(f *frog.Frog, cars, logs *obstacle.Set, dt float64) Outcome {
	out := Outcome{Riding: s.state.CurrentLog()}
	if f.IsDying() {
		return out
	}

	if s.CheckCars(f, cars) {
		return s.outcome(CauseCar)
	}

	_, out.Carried = s.CheckLogs(f, logs, dt)
	out.Riding = s.state.CurrentLog()

	if s.CheckRiver(f) {
		return s.outcome(CauseRiver)
	}
	if s.CheckSwept(f) {
		return s.outcome(CauseSwept)
	}
	return out
}

func (s *System) outcome(cause Cause) Outcome {
	return Outcome{Died: true, Cause: cause, Riding: obstacle.None}
}

// CheckCars kills the frog if it overlaps any car.
func (s *System) CheckCars(f *frog.Frog, cars *obstacle.Set) bool {
	if f.IsDying() {
		return false
	}
	fb := f.Box()
	for _, car := range cars.All() {
		if fb.Intersects(car.Box()) {
			s.kill(f, CauseCar)
			return true
		}
	}
	return false
}

// CheckLogs updates which log the frog rides. Staying on the same log changes
// nothing. Landing on a different log records it and, if the frog is on the
// ground, moves the frog by that log's displacement for this frame; carried
// reports whether that happened. With no log under the frog the current log
// is cleared.
func (s *System) CheckLogs(f *frog.Frog, logs *obstacle.Set, dt float64) (riding, carried bool) {
	if f.IsDying() {
		return false, false
	}
	fb := f.Box()

	// Prefer the log already ridden when two overlap.
	current := s.state.CurrentLog()
	if o := logs.Get(current); o != nil && fb.Intersects(o.Box()) {
		return true, false
	}

	for i, o := range logs.All() {
		if !fb.Intersects(o.Box()) {
			continue
		}
		h := obstacle.Handle(i)
		s.state.SetCurrentLog(h)
		s.logger.Debug("boarded log", "log", h, "velocity", o.Velocity.X)
		if f.IsGrounded() {
			f.MoveX(o.Displacement(dt))
			carried = true
		}
		return true, carried
	}

	s.state.SetCurrentLog(obstacle.None)
	return false, false
}

// CheckRiver drowns a frog that touches the river without riding a log.
func (s *System) CheckRiver(f *frog.Frog) bool {
	if !s.river.Enabled || f.IsDying() {
		return false
	}
	if !f.Box().Intersects(s.river.Box) {
		return false
	}
	if s.state.CurrentLog().Valid() {
		return false
	}
	s.kill(f, CauseRiver)
	return true
}

// CheckSwept kills a frog that a log has carried past the edge of the playfield.
func (s *System) CheckSwept(f *frog.Frog) bool {
	if f.IsDying() || s.river.HalfWidth <= 0 || !s.state.CurrentLog().Valid() {
		return false
	}
	if geom.Abs(f.Position.X) <= s.river.HalfWidth {
		return false
	}
	s.kill(f, CauseSwept)
	return true
}

func (s *System) kill(f *frog.Frog, cause Cause) {
	f.Die()
	s.state.SetCurrentLog(obstacle.None)
	s.state.Announce(events.FrogDied, string(cause))
	s.logger.Info("frog died", "cause", cause, "run", s.state.RunID(), "lives", s.state.Lives()-1)
	s.state.UpdateLives(-1)
}
