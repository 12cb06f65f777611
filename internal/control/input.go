package control

import (
	"chosenoffset.com/frogger/internal/core/grid"
	"chosenoffset.com/frogger/internal/render"
)

// Command is one frame's worth of player intent.
type Command struct {
	Move         grid.Direction
	ToggleCamera bool
	Reset        bool
	Quit         bool
}

// Empty reports whether the command asks for nothing.
func (c Command) Empty() bool {
	return c.Move == grid.DirNone && !c.ToggleCamera && !c.Reset && !c.Quit
}

// InputReader polls an InputManager. Direction keys are read as held so a
// key kept down repeats, throttled by the debouncer.
type InputReader struct {
	input    render.InputManager
	debounce *Debouncer
}

// NewInputReader creates a reader over input using debounce for direction keys.
func NewInputReader(input render.InputManager, debounce *Debouncer) *InputReader {
	if debounce == nil {
		debounce = NewDebouncer(DefaultMinInterval)
	}
	return &InputReader{input: input, debounce: debounce}
}

// Poll reads the keyboard at game time now.
func (r *InputReader) Poll(now float64) Command {
	var cmd Command

	if dir := r.heldDirection(); dir != grid.DirNone && r.debounce.Allow(now) {
		cmd.Move = dir
	}

	cmd.ToggleCamera = r.input.IsKeyJustPressed(render.KeyC)
	cmd.Reset = r.input.IsKeyJustPressed(render.KeyR)
	cmd.Quit = r.input.IsKeyJustPressed(render.KeyEscape)
	return cmd
}

// Reset clears the debounce history.
func (r *InputReader) Reset() {
	r.debounce.Reset()
}

func (r *InputReader) heldDirection() grid.Direction {
	if r.input.IsKeyPressed(render.KeyW) || r.input.IsKeyPressed(render.KeyUp) {
		return grid.Up
	} else if r.input.IsKeyPressed(render.KeyS) || r.input.IsKeyPressed(render.KeyDown) {
		return grid.Down
	} else if r.input.IsKeyPressed(render.KeyA) || r.input.IsKeyPressed(render.KeyLeft) {
		return grid.Left
	} else if r.input.IsKeyPressed(render.KeyD) || r.input.IsKeyPressed(render.KeyRight) {
		return grid.Right
	}
	return grid.DirNone
}
