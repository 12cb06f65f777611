// Package grid maps the discrete cells the frog hops between onto continuous
// world coordinates. The grid is centred on the world origin; grid Z grows
// toward the far bank, which is world -Z.
package grid

import "math"

// System converts between grid cells and world space.
type System struct {
	gridSize   int
	cellSize   float64
	offset     float64
	baseHeight float64 // Y is not part of the grid
}

// Intn is the subset of a random source the grid needs.
type Intn interface {
	Intn(n int) int
}

// New creates a grid of gridSize x gridSize cells.
func New(gridSize int, cellSize, baseHeight float64) *System {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &System{
		gridSize:   gridSize,
		cellSize:   cellSize,
		offset:     float64(gridSize) / 2,
		baseHeight: baseHeight,
	}
}

// GridToWorld returns the world position of the centre of cell (x, z).
func (s *System) GridToWorld(x, z int) (worldX, worldZ float64) {
	worldX = (float64(x) - s.offset + 0.5) * s.cellSize
	worldZ = (float64(-z) + s.offset - 0.5) * s.cellSize
	return worldX, worldZ
}

// WorldToGrid returns the cell containing the world position.
func (s *System) WorldToGrid(worldX, worldZ float64) (x, z int) {
	x = int(math.Floor(worldX/s.cellSize + s.offset))
	z = int(math.Floor(-worldZ/s.cellSize + s.offset))
	return x, z
}

// IsValidGridPosition reports whether (x, z) lies on the grid.
func (s *System) IsValidGridPosition(x, z int) bool {
	return x >= 0 && x < s.gridSize && z >= 0 && z < s.gridSize
}

// CellCenter is an alias of GridToWorld kept for readability at call sites
// that place objects.
func (s *System) CellCenter(x, z int) (worldX, worldZ float64) {
	return s.GridToWorld(x, z)
}

// RandomPosition returns a uniformly random cell.
func (s *System) RandomPosition(rng Intn) (x, z int) {
	return rng.Intn(s.gridSize), rng.Intn(s.gridSize)
}

// ObjectRestY returns the Y of an object of the given height resting on the ground.
func (s *System) ObjectRestY(height float64) float64 {
	return s.baseHeight + height/2
}

// Size returns the number of cells along each axis.
func (s *System) Size() int {
	return s.gridSize
}

// CellSize returns the world size of one cell.
func (s *System) CellSize() float64 {
	return s.cellSize
}

// BaseHeight returns the ground level.
func (s *System) BaseHeight() float64 {
	return s.baseHeight
}

// HalfWidth returns the distance from the origin to the playfield edge.
func (s *System) HalfWidth() float64 {
	return s.offset * s.cellSize
}

// RowZ returns the world Z of grid row z.
func (s *System) RowZ(z int) float64 {
	_, wz := s.GridToWorld(0, z)
	return wz
}
