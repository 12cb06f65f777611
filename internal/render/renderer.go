package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the game loop without error.
var ErrQuit = errors.New("quit")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Game logic draws through it so the backend can be swapped
// (or faked in tests) without touching gameplay code.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	Dispose()
}

// InputManager handles keyboard input.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyC // Camera toggle
	KeyR // Manual reset
	KeySpace
	KeyEscape
)

var keyNames = map[Key]string{
	KeyW:      "W",
	KeyA:      "A",
	KeyS:      "S",
	KeyD:      "D",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyC:      "C",
	KeyR:      "R",
	KeySpace:  "Space",
	KeyEscape: "Escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
