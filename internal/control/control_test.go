package control

import (
	"math"
	"testing"

	"chosenoffset.com/frogger/internal/core/grid"
	"chosenoffset.com/frogger/internal/core/logging"
	"chosenoffset.com/frogger/internal/entity/frog"
	"chosenoffset.com/frogger/internal/render"
)

type fakeInput struct {
	held map[render.Key]bool
	just map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[render.Key]bool{}, just: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool     { return f.held[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.just[k] }

func newController() (*MovementController, *frog.Frog, *grid.System) {
	g := grid.New(15, 1, 0)
	f := frog.New(frog.DefaultConfig())
	return NewMovementController(g, f, logging.Discard()), f, g
}

func TestStartCell(t *testing.T) {
	c, _, _ := newController()
	x, z := c.Cell()
	if x != 7 || z != 0 {
		t.Errorf("Expected start cell (7, 0), got (%d, %d)", x, z)
	}
}

func TestMoveUpLandsOnNextRow(t *testing.T) {
	c, f, _ := newController()

	if !c.Move(grid.Up) {
		t.Fatal("Expected move up to be accepted")
	}
	if !f.IsJumping() {
		t.Fatal("Expected frog to be jumping")
	}
	if f.Target().Z != 6 || f.Target().X != 0 {
		t.Errorf("Expected target (0, 6), got (%v, %v)", f.Target().X, f.Target().Z)
	}

	landed, x, z := c.Update(0.1)
	if landed {
		t.Fatal("Expected hop to be in flight after 0.1s")
	}
	landed, x, z = c.Update(0.1)
	if !landed {
		t.Fatal("Expected hop to land after 0.2s")
	}
	if x != 7 || z != 1 {
		t.Errorf("Expected landing cell (7, 1), got (%d, %d)", x, z)
	}
	if f.Position.Y != f.Config().RestY {
		t.Errorf("Expected rest height %v, got %v", f.Config().RestY, f.Position.Y)
	}
}

func TestMoveOutOfBoundsRejected(t *testing.T) {
	c, f, _ := newController()

	before := f.Position
	if c.Move(grid.Down) {
		t.Fatal("Expected move off the bottom edge to be rejected")
	}
	if f.Position != before || f.IsJumping() || f.Heading != 0 {
		t.Errorf("Expected no state change, got pos %v jumping %v heading %v", f.Position, f.IsJumping(), f.Heading)
	}
}

func TestMoveIgnoredWhileJumping(t *testing.T) {
	c, f, _ := newController()
	c.Move(grid.Up)
	target := f.Target()

	if c.Move(grid.Left) {
		t.Error("Expected second move during hop to be ignored")
	}
	if f.Target() != target {
		t.Errorf("Expected target unchanged %v, got %v", target, f.Target())
	}
}

func TestMoveIgnoredWhileDying(t *testing.T) {
	c, f, _ := newController()
	f.Die()
	if c.Move(grid.Up) {
		t.Error("Expected move to be ignored while dying")
	}
}

func TestMoveSetsHeading(t *testing.T) {
	c, f, _ := newController()
	c.Move(grid.Left)
	if math.Abs(f.Heading-math.Pi/2) > 1e-9 {
		t.Errorf("Expected heading π/2, got %v", f.Heading)
	}
}

func TestDebouncer(t *testing.T) {
	d := NewDebouncer(0.1)

	if !d.Allow(0) {
		t.Fatal("Expected first event to be accepted")
	}
	if d.Allow(0.05) {
		t.Error("Expected event after 50ms to be dropped")
	}
	if !d.Allow(0.1) {
		t.Error("Expected event after 100ms to be accepted")
	}
	if d.Allow(0.15) {
		t.Error("Expected interval to restart from the last accepted event")
	}

	d.Reset()
	if !d.Allow(0.16) {
		t.Error("Expected event after reset to be accepted")
	}
}

func TestInputReaderDirections(t *testing.T) {
	tests := []struct {
		key  render.Key
		want grid.Direction
	}{
		{render.KeyW, grid.Up},
		{render.KeyUp, grid.Up},
		{render.KeyS, grid.Down},
		{render.KeyDown, grid.Down},
		{render.KeyA, grid.Left},
		{render.KeyLeft, grid.Left},
		{render.KeyD, grid.Right},
		{render.KeyRight, grid.Right},
	}

	for _, tt := range tests {
		in := newFakeInput()
		in.held[tt.key] = true
		r := NewInputReader(in, nil)
		if got := r.Poll(0).Move; got != tt.want {
			t.Errorf("Key %v: expected %v, got %v", tt.key, tt.want, got)
		}
	}
}

func TestInputReaderDebouncesHeldKey(t *testing.T) {
	in := newFakeInput()
	in.held[render.KeyUp] = true
	r := NewInputReader(in, NewDebouncer(0.1))

	if r.Poll(0).Move != grid.Up {
		t.Fatal("Expected first poll to move")
	}
	if r.Poll(0.05).Move != grid.DirNone {
		t.Error("Expected held key to be debounced")
	}
	if r.Poll(0.1).Move != grid.Up {
		t.Error("Expected held key to repeat after the interval")
	}
}

func TestInputReaderActions(t *testing.T) {
	in := newFakeInput()
	r := NewInputReader(in, nil)

	if !r.Poll(0).Empty() {
		t.Error("Expected empty command with no keys")
	}

	in.just[render.KeyC] = true
	in.just[render.KeyR] = true
	in.just[render.KeyEscape] = true
	cmd := r.Poll(0)
	if !cmd.ToggleCamera || !cmd.Reset || !cmd.Quit {
		t.Errorf("Expected camera, reset and quit, got %+v", cmd)
	}
}
