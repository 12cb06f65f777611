// Package powerup places collectible pickups on the board.
package powerup

import (
	"chosenoffset.com/frogger/internal/core/geom"
	"chosenoffset.com/frogger/internal/core/grid"
)

// Config controls how many pickups spawn and what they are worth.
type Config struct {
	Count  int
	Points int
	Size   float64 // edge of the pickup's bounding cube
}

// DefaultConfig returns ten pickups worth 10 points each.
func DefaultConfig() Config {
	return Config{Count: 10, Points: 10, Size: 0.4}
}

// Powerup is a single pickup.
type Powerup struct {
	GridX, GridZ int
	Position     geom.Vec3
	Collected    bool
}

// Field holds the pickups for one game.
type Field struct {
	cfg   Config
	items []*Powerup
}

// NewField creates an empty field.
func NewField(cfg Config) *Field {
	return &Field{cfg: cfg}
}

// Config returns the field's configuration.
func (f *Field) Config() Config {
	return f.cfg
}

// SetConfig replaces the configuration used by the next Spawn.
func (f *Field) SetConfig(cfg Config) {
	f.cfg = cfg
}

// Spawn replaces the pickups with cfg.Count new ones on distinct random cells.
// Rows listed in skipRows (such as the start row) are never used.
func (f *Field) Spawn(g *grid.System, rng grid.Intn, skipRows ...int) {
	f.items = f.items[:0]

	skip := make(map[int]bool, len(skipRows))
	for _, z := range skipRows {
		skip[z] = true
	}
	free := g.Size() * (g.Size() - len(skip))
	count := f.cfg.Count
	if count > free {
		count = free
	}

	used := make(map[[2]int]bool, count)
	y := g.ObjectRestY(f.cfg.Size)
	for len(f.items) < count {
		x, z := g.RandomPosition(rng)
		if skip[z] || used[[2]int{x, z}] {
			continue
		}
		used[[2]int{x, z}] = true
		wx, wz := g.GridToWorld(x, z)
		f.items = append(f.items, &Powerup{
			GridX:    x,
			GridZ:    z,
			Position: geom.NewVec3(wx, y, wz),
		})
	}
}

// All returns every pickup, collected or not.
func (f *Field) All() []*Powerup {
	return f.items
}

// Remaining returns how many pickups are left.
func (f *Field) Remaining() int {
	n := 0
	for _, p := range f.items {
		if !p.Collected {
			n++
		}
	}
	return n
}

// Box returns a pickup's bounding box.
func (f *Field) Box(p *Powerup) geom.Box3 {
	s := f.cfg.Size
	return geom.BoxFromCenter(p.Position, geom.NewVec3(s, s, s))
}

// Collect marks every uncollected pickup overlapping box as collected and
// returns the points earned.
func (f *Field) Collect(box geom.Box3) (points, count int) {
	for _, p := range f.items {
		if p.Collected || !box.Intersects(f.Box(p)) {
			continue
		}
		p.Collected = true
		count++
		points += f.cfg.Points
	}
	return points, count
}
