package game

import (
	"chosenoffset.com/frogger/internal/core/gamestate"
	"chosenoffset.com/frogger/internal/core/geom"
)

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Object is a drawable thing in a Scene.
type Object struct {
	Position geom.Vec3
	Size     geom.Vec3
	Heading  float64
}

// FrogView is the frog as a renderer sees it.
type FrogView struct {
	Object
	Scale geom.Vec3
	Flash bool
}

// Scene is a renderer-neutral snapshot of everything on the board.
type Scene struct {
	Camera   gamestate.Camera
	Frog     FrogView
	Cars     []Object
	Logs     []Object
	Powerups []Object
}

// Viewport maps world X/Z onto screen pixels. World -Z (the far bank) is up.
type Viewport struct {
	CenterX, CenterZ float64
	Scale            float64 // pixels per world unit
	Width, Height    int
}

// ToScreen returns the screen position of a world point.
func (v Viewport) ToScreen(wx, wz float64) (float32, float32) {
	sx := (wx-v.CenterX)*v.Scale + float64(v.Width)/2
	sy := (wz-v.CenterZ)*v.Scale + float64(v.Height)/2
	return float32(sx), float32(sy)
}

// Length converts a world length to pixels.
func (v Viewport) Length(l float64) float32 {
	return float32(l * v.Scale)
}
