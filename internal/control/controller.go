// Package control turns player intent into frog hops on the grid.
package control

import (
	"github.com/charmbracelet/log"

	"chosenoffset.com/frogger/internal/core/geom"
	"chosenoffset.com/frogger/internal/core/grid"
	"chosenoffset.com/frogger/internal/entity/frog"
)

// MovementController moves the frog one cell at a time. While the frog is
// mid-hop or dying every move request is ignored.
type MovementController struct {
	grid   *grid.System
	frog   *frog.Frog
	logger *log.Logger
}

// NewMovementController creates a controller for f on g.
func NewMovementController(g *grid.System, f *frog.Frog, logger *log.Logger) *MovementController {
	if logger == nil {
		logger = log.Default()
	}
	return &MovementController{grid: g, frog: f, logger: logger}
}

// CanMove reports whether the frog is grounded and accepting input.
func (c *MovementController) CanMove() bool {
	return c.frog.IsGrounded()
}

// Cell returns the grid cell the frog currently occupies.
func (c *MovementController) Cell() (x, z int) {
	return c.grid.WorldToGrid(c.frog.Position.X, c.frog.Position.Z)
}

// Move starts a hop one cell in dir. It returns false, leaving everything
// untouched, if the frog is busy or the destination is off the grid.
func (c *MovementController) Move(dir grid.Direction) bool {
	if dir == grid.DirNone || !c.CanMove() {
		return false
	}

	x, z := c.Cell()
	dx, dz := dir.Delta()
	nx, nz := x+dx, z+dz
	if !c.grid.IsValidGridPosition(nx, nz) {
		c.logger.Debug("move rejected", "dir", dir, "from_x", x, "from_z", z)
		return false
	}

	wx, wz := c.grid.GridToWorld(nx, nz)
	c.frog.Heading = dir.Heading()
	if !c.frog.StartJump(geom.NewVec3(wx, c.frog.Position.Y, wz)) {
		return false
	}
	c.logger.Debug("hop", "dir", dir, "to_x", nx, "to_z", nz)
	return true
}

// Update advances the hop and death animations. On the frame a hop lands it
// returns landed=true with the landing cell.
func (c *MovementController) Update(dt float64) (landed bool, x, z int) {
	if !c.frog.Update(dt) {
		return false, 0, 0
	}
	x, z = c.Cell()
	return true, x, z
}
