// Package hud provides the heads-up display: score, lives and the game over
// banner. It never reads game state directly; it listens for events on the
// bus and keeps its own copy of what to show.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/frogger/internal/core/events"
	"chosenoffset.com/frogger/internal/render"
)

var (
	textColor   = color.RGBA{245, 245, 245, 255} // whitesmoke
	alertColor  = color.RGBA{255, 60, 60, 255}
	dimColor    = color.RGBA{150, 150, 150, 255}
	livesColor  = color.RGBA{80, 200, 80, 255}
	lostColor   = color.RGBA{70, 40, 40, 255}
	borderColor = color.RGBA{60, 60, 80, 255}
)

var subscribed = []events.Code{
	events.ScoreChanged,
	events.LivesChanged,
	events.CameraChanged,
	events.GameOver,
	events.Reset,
	events.FrogDied,
}

// Config defines what to display in the HUD.
type Config struct {
	ShowFPS    bool
	ShowCamera bool
	Position   string  // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity    float64 // background opacity (0-1)
}

// DefaultConfig returns a top-left HUD with FPS shown.
func DefaultConfig() *Config {
	return &Config{
		ShowFPS:    true,
		ShowCamera: true,
		Position:   "top-left",
		Opacity:    0.7,
	}
}

// Line is a single line of HUD text.
type Line struct {
	Text  string
	Color color.Color
}

// FrameStats supplies the numbers for the FPS line.
type FrameStats interface {
	FPS() float64
	FrameTime() float64
}

// HUD manages the heads-up display.
type HUD struct {
	config       *Config
	renderer     render.Renderer
	stats        FrameStats
	screenWidth  int
	screenHeight int

	score     int
	lives     int
	maxLives  int
	camera    string
	gameOver  bool
	lastDeath string

	panelWidth  int
	panelHeight int
}

// New creates a HUD drawing through r.
func New(config *Config, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   160,
		camera:       "wide",
	}
}

// Attach registers the HUD on the bus and seeds it with the starting values.
func (h *HUD) Attach(bus *events.Bus, score, lives int) {
	h.score = score
	h.lives = lives
	h.maxLives = lives
	for _, code := range subscribed {
		bus.Register(code, h, h.onEvent)
	}
}

// Detach removes the HUD from the bus.
func (h *HUD) Detach(bus *events.Bus) {
	for _, code := range subscribed {
		bus.Unregister(code, h)
	}
}

// SetStats sets the source of the FPS line.
func (h *HUD) SetStats(stats FrameStats) {
	h.stats = stats
}

// SetScreenSize updates the screen dimensions.
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

func (h *HUD) onEvent(e events.Event) bool {
	switch e.Code {
	case events.ScoreChanged:
		h.score = e.Score
	case events.LivesChanged:
		h.lives = e.Lives
	case events.CameraChanged:
		h.camera = e.Camera
	case events.GameOver:
		h.gameOver = true
		h.score = e.Score
		h.lives = e.Lives
		h.camera = e.Camera
	case events.Reset:
		h.gameOver = false
		h.score = e.Score
		h.lives = e.Lives
		h.maxLives = e.Lives
		h.camera = e.Camera
		h.lastDeath = ""
	case events.FrogDied:
		h.lastDeath = e.Cause
	}
	return false
}

// Lines returns the text the HUD shows, top to bottom.
func (h *HUD) Lines() []Line {
	if h.gameOver {
		return []Line{
			{Text: "Game Over", Color: alertColor},
			{Text: fmt.Sprintf("Final Score: %d", h.score), Color: alertColor},
			{Text: "He dead", Color: alertColor},
		}
	}

	lines := []Line{
		{Text: fmt.Sprintf("Score: %d", h.score), Color: textColor},
		{Text: fmt.Sprintf("Lives: %d", h.lives), Color: textColor},
	}
	if h.config.ShowCamera {
		lines = append(lines, Line{Text: "Camera: " + h.camera, Color: dimColor})
	}
	if h.lastDeath != "" {
		lines = append(lines, Line{Text: deathText(h.lastDeath), Color: dimColor})
	}
	if h.config.ShowFPS && h.stats != nil {
		lines = append(lines, Line{
			Text:  fmt.Sprintf("FPS: %.0f (%.1fms)", h.stats.FPS(), h.stats.FrameTime()),
			Color: dimColor,
		})
	}
	return lines
}

func deathText(cause string) string {
	switch cause {
	case "car":
		return "Squashed!"
	case "river":
		return "Splash!"
	case "swept":
		return "Swept away!"
	default:
		return "Ouch!"
	}
}

// Draw renders the HUD to the screen.
func (h *HUD) Draw(screen render.Image) {
	lines := h.Lines()
	h.panelHeight = h.calculatePanelHeight(len(lines))
	x, y := h.calculatePosition()

	h.drawPanel(screen, x, y)

	currentY := y + 8
	for i, line := range lines {
		h.renderer.DrawText(screen, line.Text, x+8, currentY, line.Color, 1.0)
		currentY += 16
		// Lives pips go under the lives line.
		if !h.gameOver && i == 1 && h.maxLives > 0 {
			h.drawLives(screen, x+8, currentY)
			currentY += 12
		}
	}
}

// calculatePosition returns the top-left corner of the HUD panel.
func (h *HUD) calculatePosition() (int, int) {
	padding := 10

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - h.panelHeight - padding
	case "bottom-right":
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - h.panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}

func (h *HUD) calculatePanelHeight(lineCount int) int {
	height := 16 + lineCount*16
	if !h.gameOver && h.maxLives > 0 {
		height += 12
	}
	return height
}

// drawPanel draws the semi-transparent background panel.
func (h *HUD) drawPanel(screen render.Image, x, y int) {
	alpha := uint8(h.config.Opacity * 255)
	panelColor := color.RGBA{20, 20, 30, alpha}
	if h.gameOver {
		panelColor = color.RGBA{50, 10, 10, alpha}
	}
	h.renderer.FillRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(h.panelHeight), panelColor)
	h.renderer.StrokeRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(h.panelHeight), 1, borderColor)
}

// drawLives draws one pip per starting life, filled for the ones remaining.
func (h *HUD) drawLives(screen render.Image, x, y int) {
	const size, gap = 8, 4
	for i := 0; i < h.maxLives; i++ {
		clr := lostColor
		if i < h.lives {
			clr = livesColor
		}
		px := float32(x + i*(size+gap))
		h.renderer.FillRect(screen, px, float32(y), size, size, clr)
	}
}
