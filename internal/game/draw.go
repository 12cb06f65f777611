package game

import (
	"image/color"
	"math"

	"chosenoffset.com/frogger/internal/core/gamestate"
	"chosenoffset.com/frogger/internal/core/geom"
	"chosenoffset.com/frogger/internal/render"
	"chosenoffset.com/frogger/internal/world/lane"
)

var (
	backgroundColor = color.RGBA{10, 10, 20, 255}
	grassColor      = color.RGBA{60, 140, 60, 255}
	bankColor       = color.RGBA{40, 110, 40, 255}
	roadColor       = color.RGBA{70, 70, 75, 255}
	waterColor      = color.RGBA{40, 90, 180, 255}
	carColor        = color.RGBA{220, 60, 50, 255}
	logColor        = color.RGBA{120, 80, 40, 255}
	powerupColor    = color.RGBA{255, 230, 0, 255}
	frogColor       = color.RGBA{80, 220, 80, 255}
	deadFrogColor   = color.RGBA{255, 0, 0, 255}
	eyeColor        = color.RGBA{20, 20, 20, 255}
)

// frogZoom is the magnification of the frog camera over the wide camera.
const frogZoom = 2.0

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	now := g.now()
	if !g.lastDraw.IsZero() {
		g.Metrics.Update(now.Sub(g.lastDraw).Seconds())
	}
	g.lastDraw = now

	w, h := screen.Size()
	screen.Fill(backgroundColor)

	scene := g.Scene()
	vp := g.viewport(scene, w, h)

	g.drawGround(screen, vp)
	for _, o := range scene.Logs {
		g.drawBox(screen, vp, o, logColor)
	}
	for _, o := range scene.Cars {
		g.drawBox(screen, vp, o, carColor)
	}
	for _, p := range scene.Powerups {
		x, y := vp.ToScreen(p.Position.X, p.Position.Z)
		g.Renderer.FillCircle(screen, x, y, vp.Length(p.Size.X/2), powerupColor)
	}
	g.drawFrog(screen, vp, scene.Frog)

	g.drawUI(screen)
	g.GameHUD.SetScreenSize(w, h)
	g.GameHUD.Draw(screen)
}

// viewport returns the camera for the current mode. The wide camera fits the
// whole board; the frog camera zooms in and follows the frog, clamped so it
// never shows past the board edge.
func (g *Game) viewport(scene Scene, w, h int) Viewport {
	board := float64(g.Grid.Size()) * g.Grid.CellSize()
	vp := Viewport{
		Scale:  math.Min(float64(w), float64(h)) / board,
		Width:  w,
		Height: h,
	}
	if scene.Camera != gamestate.CameraFrog {
		return vp
	}

	vp.Scale *= frogZoom
	half := board / 2
	visibleX := float64(w) / vp.Scale / 2
	visibleZ := float64(h) / vp.Scale / 2
	vp.CenterX = geom.Clamp(scene.Frog.Position.X, -half+visibleX, half-visibleX)
	vp.CenterZ = geom.Clamp(scene.Frog.Position.Z, -half+visibleZ, half-visibleZ)
	return vp
}

func (g *Game) drawGround(screen render.Image, vp Viewport) {
	size := g.Grid.Size()
	cell := g.Grid.CellSize()
	half := g.Grid.HalfWidth()

	for z := 0; z < size; z++ {
		rowZ := g.Grid.RowZ(z)
		clr := grassColor
		switch {
		case z == 0 || z == size-1:
			clr = bankColor
		case onLane(rowZ, g.cfg.Cars.Lanes):
			clr = roadColor
		case onLane(rowZ, g.cfg.Logs.Lanes):
			clr = waterColor
		}
		x, y := vp.ToScreen(-half, rowZ-cell/2)
		g.Renderer.FillRect(screen, x, y, vp.Length(2*half), vp.Length(cell), clr)
	}
}

func onLane(z float64, lanes []lane.Lane) bool {
	for _, l := range lanes {
		if math.Abs(l.Z-z) < 1e-6 {
			return true
		}
	}
	return false
}

func (g *Game) drawBox(screen render.Image, vp Viewport, o Object, clr color.Color) {
	x, y := vp.ToScreen(o.Position.X-o.Size.X/2, o.Position.Z-o.Size.Z/2)
	g.Renderer.FillRect(screen, x, y, vp.Length(o.Size.X), vp.Length(o.Size.Z), clr)
}

// drawFrog draws the frog as a disc that grows with its height above the
// ground, with an eye marking the heading.
func (g *Game) drawFrog(screen render.Image, vp Viewport, f FrogView) {
	clr := frogColor
	if f.Flash {
		clr = deadFrogColor
	}

	rest := g.Frog.Config().RestY
	lift := 1 + math.Max(0, f.Position.Y-rest)
	radius := vp.Length(f.Size.X / 2 * f.Scale.X * lift)

	x, y := vp.ToScreen(f.Position.X, f.Position.Z)
	g.Renderer.FillCircle(screen, x, y, radius, clr)

	// Heading 0 faces -Z (up the screen); positive headings turn left.
	ex := x - float32(math.Sin(f.Heading))*radius*0.6
	ey := y - float32(math.Cos(f.Heading))*radius*0.6
	g.Renderer.FillCircle(screen, ex, ey, radius*0.25, eyeColor)
}

func (g *Game) drawUI(screen render.Image) {
	// Draw on-screen messages
	w, _ := screen.Size()
	y := 20
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		tw, _ := g.Renderer.MeasureText(msg.Text, 1.0)
		g.Renderer.DrawText(screen, msg.Text, w-tw-20, y, color.RGBA{255, 255, 255, alpha}, 1.0)
		y += 20
	}
}
