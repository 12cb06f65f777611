// Package gamestate holds the score, lives, camera mode and game-over flag for a
// single game, plus the reference to the log the frog is riding.
// Every mutation is announced on an events.Bus so presentation stays out of here.
package gamestate

import (
	"fmt"

	"github.com/google/uuid"

	"chosenoffset.com/frogger/internal/core/events"
	"chosenoffset.com/frogger/internal/entity/obstacle"
)

// Camera is the active view.
type Camera int

const (
	CameraWide Camera = iota
	CameraFrog
)

func (c Camera) String() string {
	if c == CameraFrog {
		return "frog"
	}
	return "wide"
}

// Initial holds the values a game starts with and returns to on reset.
type Initial struct {
	Score      int
	Lives      int
	Camera     Camera
	ResetDelay float64 // seconds between game over and the automatic reset
}

// DefaultInitial returns three lives, zero score and the wide camera.
func DefaultInitial() Initial {
	return Initial{
		Score:      0,
		Lives:      3,
		Camera:     CameraWide,
		ResetDelay: 5,
	}
}

// GameState is owned by the game loop and passed to the systems that need it.
// It is not safe for concurrent use.
type GameState struct {
	initial Initial
	bus     *events.Bus

	runID      string
	score      int
	lives      int
	camera     Camera
	isGameOver bool
	currentLog obstacle.Handle

	// Auto-reset countdown, armed by GameOver.
	resetPending bool
	resetTimer   float64
}

// New creates a game state at its initial values.
func New(initial Initial, bus *events.Bus) *GameState {
	gs := &GameState{initial: initial, bus: bus}
	gs.restore()
	return gs
}

func (gs *GameState) restore() {
	gs.runID = uuid.NewString()
	gs.score = gs.initial.Score
	gs.lives = gs.initial.Lives
	gs.camera = gs.initial.Camera
	gs.isGameOver = false
	gs.currentLog = obstacle.None
	gs.resetPending = false
	gs.resetTimer = 0
}

// --- Accessors ---

// RunID identifies the current game; it changes on every reset.
func (gs *GameState) RunID() string { return gs.runID }

// Score returns the current score.
func (gs *GameState) Score() int { return gs.score }

// Lives returns the remaining lives.
func (gs *GameState) Lives() int { return gs.lives }

// Camera returns the active camera.
func (gs *GameState) Camera() Camera { return gs.camera }

// IsGameOver reports whether the game has ended and awaits a reset.
func (gs *GameState) IsGameOver() bool { return gs.isGameOver }

// CurrentLog returns the log the frog is riding, or obstacle.None.
func (gs *GameState) CurrentLog() obstacle.Handle { return gs.currentLog }

// ResetPending reports whether the automatic reset is armed, and how long remains.
func (gs *GameState) ResetPending() (bool, float64) {
	return gs.resetPending, gs.resetTimer
}

// --- Mutators ---

// SetCurrentLog records the log the frog is on. obstacle.None means not on a log.
func (gs *GameState) SetCurrentLog(h obstacle.Handle) {
	gs.currentLog = h
}

// UpdateScore adds delta to the score.
func (gs *GameState) UpdateScore(delta int) {
	gs.score += delta
	gs.fire(events.ScoreChanged, "")
}

// UpdateLives adds delta to the lives. Reaching zero ends the game.
func (gs *GameState) UpdateLives(delta int) {
	gs.lives += delta
	gs.fire(events.LivesChanged, "")
	if gs.lives <= 0 && !gs.isGameOver {
		gs.GameOver()
	}
}

// ToggleCamera switches between the wide and frog cameras and returns the new one.
func (gs *GameState) ToggleCamera() Camera {
	if gs.camera == CameraWide {
		gs.camera = CameraFrog
	} else {
		gs.camera = CameraWide
	}
	gs.fire(events.CameraChanged, "")
	return gs.camera
}

// GameOver ends the game: the camera is forced wide and the automatic reset is armed.
func (gs *GameState) GameOver() {
	gs.isGameOver = true
	gs.camera = CameraWide
	gs.currentLog = obstacle.None
	gs.resetPending = true
	gs.resetTimer = gs.initial.ResetDelay
	gs.fire(events.GameOver, "")
}

// Reset returns every value to its initial state. A manual reset disarms a
// pending automatic one.
func (gs *GameState) Reset() {
	gs.restore()
	gs.fire(events.Reset, "")
}

// Tick advances the automatic reset timer by dt seconds. It returns true on
// the tick that performs the reset.
func (gs *GameState) Tick(dt float64) bool {
	if !gs.resetPending {
		return false
	}
	gs.resetTimer -= dt
	if gs.resetTimer > 0 {
		return false
	}
	gs.Reset()
	return true
}

// SetInitial replaces the values used by the next reset.
func (gs *GameState) SetInitial(initial Initial) {
	gs.initial = initial
}

// Announce emits a gameplay event (death, crossing, pickup) carrying the current values.
func (gs *GameState) Announce(code events.Code, cause string) {
	gs.fire(code, cause)
}

func (gs *GameState) fire(code events.Code, cause string) {
	gs.bus.Fire(events.Event{
		Code:   code,
		Score:  gs.score,
		Lives:  gs.lives,
		Camera: gs.camera.String(),
		Cause:  cause,
	})
}

// Snapshot is a copy of the game state values.
type Snapshot struct {
	RunID      string
	Score      int
	Lives      int
	Camera     Camera
	IsGameOver bool
	CurrentLog obstacle.Handle
}

// Snapshot returns a copy of the current values.
func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		RunID:      gs.runID,
		Score:      gs.score,
		Lives:      gs.lives,
		Camera:     gs.camera,
		IsGameOver: gs.isGameOver,
		CurrentLog: gs.currentLog,
	}
}

// String returns a representation of the game state for debugging.
func (gs *GameState) String() string {
	return fmt.Sprintf("GameState{Score: %d, Lives: %d, Camera: %s, GameOver: %v, Log: %d}",
		gs.score, gs.lives, gs.camera, gs.isGameOver, gs.currentLog)
}
