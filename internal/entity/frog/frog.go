// Package frog implements the player actor: its position, facing and the
// hop and death animations. Input and collisions live elsewhere; the frog only
// knows how to animate toward a target and how to put itself back at the start.
package frog

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"chosenoffset.com/frogger/internal/core/geom"
)

// State is the animation state of the frog.
type State int

const (
	Idle State = iota
	Jumping
	Dying
)

func (s State) String() string {
	switch s {
	case Jumping:
		return "jumping"
	case Dying:
		return "dying"
	default:
		return "idle"
	}
}

var (
	unitScale    = geom.NewVec3(1, 1, 1)
	squashScale  = geom.NewVec3(1.2, 0.7, 1.2)
	stretchScale = geom.NewVec3(0.8, 1.2, 0.8)
)

// Config holds the frog's tuning.
type Config struct {
	StartX, StartZ float64
	RestY          float64   // Y of the frog's centre when on the ground
	BodySize       geom.Vec3 // bounding box at unit scale
	JumpHeight     float64
	JumpDuration   float64 // seconds
	DeathDuration  float64 // seconds
	DeathScale     float64 // peak scale of the death pulse
}

// DefaultConfig returns a frog sized for a unit grid cell.
func DefaultConfig() Config {
	return Config{
		StartX:        0,
		StartZ:        7,
		RestY:         0.25,
		BodySize:      geom.NewVec3(0.6, 0.5, 0.7),
		JumpHeight:    0.5,
		JumpDuration:  0.2,
		DeathDuration: 0.5,
		DeathScale:    1.5,
	}
}

// Frog is the player actor.
type Frog struct {
	cfg Config

	Position geom.Vec3
	Heading  float64 // rotation about Y, one of the four cardinal headings
	Scale    geom.Vec3
	Flash    bool // death tint

	state    State
	start    geom.Vec3
	target   geom.Vec3
	progress float64
	jump     *gween.Tween
	pulse    *gween.Tween
}

// New creates a frog at its start position.
func New(cfg Config) *Frog {
	f := &Frog{cfg: cfg}
	f.Reset()
	return f
}

// Config returns the frog's tuning.
func (f *Frog) Config() Config {
	return f.cfg
}

// SetConfig replaces the tuning. It takes effect on the next jump or reset.
func (f *Frog) SetConfig(cfg Config) {
	f.cfg = cfg
}

// StartPosition returns where the frog spawns.
func (f *Frog) StartPosition() geom.Vec3 {
	return geom.NewVec3(f.cfg.StartX, f.cfg.RestY, f.cfg.StartZ)
}

// State returns the current animation state.
func (f *Frog) State() State {
	return f.state
}

// IsJumping reports whether a hop is in progress.
func (f *Frog) IsJumping() bool {
	return f.state == Jumping
}

// IsDying reports whether the death animation is playing.
func (f *Frog) IsDying() bool {
	return f.state == Dying
}

// IsGrounded reports whether the frog is idle on the ground.
func (f *Frog) IsGrounded() bool {
	return f.state == Idle
}

// JumpProgress returns the current hop progress in [0, 1].
func (f *Frog) JumpProgress() float64 {
	return f.progress
}

// Target returns the landing position of the current hop.
func (f *Frog) Target() geom.Vec3 {
	return f.target
}

// StartJump begins a hop from the current position to target. It returns false
// if the frog is not idle.
func (f *Frog) StartJump(target geom.Vec3) bool {
	if f.state != Idle {
		return false
	}
	f.state = Jumping
	f.start = f.Position
	f.target = geom.NewVec3(target.X, f.cfg.RestY, target.Z)
	f.progress = 0
	f.jump = gween.New(0, 1, float32(f.cfg.JumpDuration), ease.Linear)
	f.Scale = squashScale
	return true
}

// Update advances the current animation by dt seconds. It returns true on the
// frame a hop lands.
func (f *Frog) Update(dt float64) (landed bool) {
	switch f.state {
	case Jumping:
		p, done := f.jump.Update(float32(dt))
		f.progress = float64(p)
		if done || f.progress >= 1 {
			f.completeJump()
			return true
		}
		f.updateJumpAnimation()
	case Dying:
		s, done := f.pulse.Update(float32(dt))
		f.Scale = unitScale.Scale(float64(s))
		if done {
			f.Reset()
		}
	}
	return false
}

func (f *Frog) completeJump() {
	f.state = Idle
	f.progress = 1
	f.Position = f.target
	f.Scale = unitScale
	f.jump = nil
}

func (f *Frog) updateJumpAnimation() {
	pos := geom.LerpVec3(f.start, f.target, f.progress)
	pos.Y = f.cfg.RestY + JumpOffset(f.progress, f.cfg.JumpHeight)
	f.Position = pos

	if f.progress < 0.5 {
		f.Scale = stretchScale
	} else {
		f.Scale = squashScale
	}
}

// JumpOffset is the height of the hop arc above rest at progress p: zero at
// both ends and height at the midpoint.
func JumpOffset(p, height float64) float64 {
	return math.Sin(p*math.Pi) * height
}

// Die starts the death animation. The frog returns to its start position once
// it finishes. Calling Die while already dying does nothing.
func (f *Frog) Die() {
	if f.state == Dying {
		return
	}
	f.state = Dying
	f.Flash = true
	f.jump = nil
	f.progress = 0
	f.pulse = gween.New(1, float32(f.cfg.DeathScale), float32(f.cfg.DeathDuration), ease.OutQuad)
	f.Scale = unitScale
}

// Reset puts the frog back at the start, facing the far bank.
func (f *Frog) Reset() {
	f.state = Idle
	f.Position = f.StartPosition()
	f.Heading = 0
	f.Scale = unitScale
	f.Flash = false
	f.progress = 0
	f.jump = nil
	f.pulse = nil
}

// MoveX shifts the frog along X, used when a log carries it.
func (f *Frog) MoveX(dx float64) {
	f.Position.X += dx
}

// Box returns the frog's bounding box.
func (f *Frog) Box() geom.Box3 {
	return geom.BoxFromCenter(f.Position, f.cfg.BodySize.Mul(f.Scale))
}
