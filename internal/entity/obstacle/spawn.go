package obstacle

import (
	"chosenoffset.com/frogger/internal/core/geom"
	"chosenoffset.com/frogger/internal/world/lane"
)

// Random is the subset of a random source the spawner needs.
type Random interface {
	Float64() float64
}

// SpawnConfig controls how obstacles are laid out along their lanes.
type SpawnConfig struct {
	PerLane    int
	FieldWidth float64 // total playfield width, spacing is derived from it
	StartX     float64 // first obstacle of a lane sits at ±StartX upstream
	Jitter     float64 // max random extra spacing per lane

	// Car dimensions.
	CarSize geom.Vec3

	// Log dimensions: length is MinLength + rand*(MaxLength-MinLength).
	LogRadius    float64
	LogMinLength float64
	LogMaxLength float64
}

// DefaultSpawnConfig returns three obstacles per lane on a 15 unit wide field.
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		PerLane:      3,
		FieldWidth:   15,
		StartX:       7,
		Jitter:       0.5,
		CarSize:      geom.NewVec3(1.5, 0.7, 0.8),
		LogRadius:    0.3,
		LogMinLength: 1,
		LogMaxLength: 3,
	}
}

// Spawner places cars and logs on lanes.
type Spawner struct {
	cfg SpawnConfig
	rng Random
}

// NewSpawner creates a spawner drawing randomness from rng.
func NewSpawner(cfg SpawnConfig, rng Random) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// SpawnCars adds PerLane cars to each lane.
func (sp *Spawner) SpawnCars(set *Set, lanes []lane.Lane) {
	y := sp.cfg.CarSize.Y / 2
	for _, l := range lanes {
		for _, x := range sp.laneXs(l) {
			set.Add(New(Car, l, x, y, sp.cfg.CarSize))
		}
	}
}

// SpawnLogs adds PerLane logs of random length to each lane.
func (sp *Spawner) SpawnLogs(set *Set, lanes []lane.Lane) {
	d := sp.cfg.LogRadius * 2
	for _, l := range lanes {
		for _, x := range sp.laneXs(l) {
			length := sp.cfg.LogMinLength + sp.rng.Float64()*(sp.cfg.LogMaxLength-sp.cfg.LogMinLength)
			set.Add(New(Log, l, x, 0, geom.NewVec3(length, d, d)))
		}
	}
}

// laneXs spreads PerLane positions along a lane, starting at the upstream
// edge and stepping downstream.
func (sp *Spawner) laneXs(l lane.Lane) []float64 {
	if sp.cfg.PerLane <= 0 {
		return nil
	}
	spacing := sp.cfg.FieldWidth/float64(sp.cfg.PerLane) + sp.rng.Float64()*sp.cfg.Jitter
	sign := l.Direction.Sign()
	start := -sign * sp.cfg.StartX

	xs := make([]float64, sp.cfg.PerLane)
	for i := range xs {
		xs[i] = start + float64(i)*spacing*sign
	}
	return xs
}
