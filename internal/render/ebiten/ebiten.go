package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/frogger/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// FillRect draws a filled rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, true)
}

// StrokeRect draws a rectangle outline on the destination image.
func (r *EbitenRenderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(unwrap(dst), x, y, width, height, strokeWidth, clr, true)
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), x, y, radius, clr, true)
}

// DrawText draws text using the debug font. The font has a fixed size and
// colour, so clr and scale are ignored.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	ebitenutil.DebugPrintAt(unwrap(dst), str, x, y)
}

// MeasureText approximates text size from the debug font's 6x16 glyph cell.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	const charWidth, charHeight = 6.0, 16.0
	return int(float64(len(str)) * charWidth * scale), int(charHeight * scale)
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*EbitenImage).img
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently held.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed returns whether the specified key was pressed this tick.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyC:
		return ebiten.KeyC, true
	case render.KeyR:
		return ebiten.KeyR, true
	case render.KeySpace:
		return ebiten.KeySpace, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetTPS sets the number of Update calls per second.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame runs the game loop until the game returns an error.
// render.ErrQuit is treated as a normal exit.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, render.ErrQuit) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

func (a *gameAdapter) Update() error {
	return a.game.Update()
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
