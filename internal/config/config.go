// Package config provides the tunable rules of a game: board size, lanes,
// speeds, timings and scoring. Values are read from a TOML file layered over
// the defaults, so a file only needs the keys it changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"chosenoffset.com/frogger/internal/core/gamestate"
	"chosenoffset.com/frogger/internal/core/geom"
	"chosenoffset.com/frogger/internal/core/grid"
	"chosenoffset.com/frogger/internal/entity/frog"
	"chosenoffset.com/frogger/internal/entity/obstacle"
	"chosenoffset.com/frogger/internal/entity/powerup"
	"chosenoffset.com/frogger/internal/world/lane"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all rules for a game.
type Config struct {
	LogLevel string `toml:"log_level"`
	TPS      int    `toml:"tps"`
	Seed     uint64 `toml:"seed"` // 0 picks a seed at startup

	Window   WindowConfig   `toml:"window"`
	Grid     GridConfig     `toml:"grid"`
	Frog     FrogConfig     `toml:"frog"`
	Cars     TrafficConfig  `toml:"cars"`
	Logs     TrafficConfig  `toml:"logs"`
	Spawn    SpawnConfig    `toml:"spawn"`
	Rules    RulesConfig    `toml:"rules"`
	Powerups PowerupsConfig `toml:"powerups"`
}

// WindowConfig sizes the game window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size       int     `toml:"size"`
	CellSize   float64 `toml:"cell_size"`
	BaseHeight float64 `toml:"base_height"`
}

// FrogConfig tunes the hop and death animations. Times are in seconds.
type FrogConfig struct {
	JumpHeight    float64 `toml:"jump_height"`
	JumpDuration  float64 `toml:"jump_duration"`
	DeathDuration float64 `toml:"death_duration"`
	DeathScale    float64 `toml:"death_scale"`
}

// TrafficConfig is one family of lanes and the X bound they wrap at.
type TrafficConfig struct {
	Bound float64     `toml:"bound"`
	Lanes []lane.Lane `toml:"lanes"`
}

// SpawnConfig lays obstacles out along their lanes.
type SpawnConfig struct {
	PerLane      int     `toml:"per_lane"`
	Jitter       float64 `toml:"jitter"`
	CarLength    float64 `toml:"car_length"`
	CarHeight    float64 `toml:"car_height"`
	CarDepth     float64 `toml:"car_depth"`
	LogRadius    float64 `toml:"log_radius"`
	LogMinLength float64 `toml:"log_min_length"`
	LogMaxLength float64 `toml:"log_max_length"`
}

// RulesConfig holds lives, scoring and timers.
type RulesConfig struct {
	Lives          int     `toml:"lives"`
	ResetDelay     float64 `toml:"reset_delay"`
	CrossingPoints int     `toml:"crossing_points"`
	MoveInterval   float64 `toml:"move_interval"` // minimum time between accepted moves
}

// PowerupsConfig controls the pickups.
type PowerupsConfig struct {
	Count  int     `toml:"count"`
	Points int     `toml:"points"`
	Size   float64 `toml:"size"`
}

// DefaultConfig returns the classic board: 15x15 grid, three road and three river lanes.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		TPS:      60,
		Window: WindowConfig{
			Width:  600,
			Height: 600,
			Title:  "Frogger",
		},
		Grid: GridConfig{
			Size:       15,
			CellSize:   1,
			BaseHeight: 0,
		},
		Frog: FrogConfig{
			JumpHeight:    0.5,
			JumpDuration:  0.2,
			DeathDuration: 0.5,
			DeathScale:    1.5,
		},
		Cars: TrafficConfig{
			Bound: 8,
			Lanes: lane.DefaultCarLanes(),
		},
		Logs: TrafficConfig{
			Bound: 7.5,
			Lanes: lane.DefaultLogLanes(),
		},
		Spawn: SpawnConfig{
			PerLane:      3,
			Jitter:       0.5,
			CarLength:    1.5,
			CarHeight:    0.7,
			CarDepth:     0.8,
			LogRadius:    0.3,
			LogMinLength: 1,
			LogMaxLength: 3,
		},
		Rules: RulesConfig{
			Lives:          3,
			ResetDelay:     5,
			CrossingPoints: 100,
			MoveInterval:   0.1,
		},
		Powerups: PowerupsConfig{
			Count:  10,
			Points: 10,
			Size:   0.4,
		},
	}
}

// Load reads a TOML file over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults. Lane lists in the data replace
// the default lists rather than merging with them.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var lanes struct {
		Cars struct {
			Lanes []lane.Lane `toml:"lanes"`
		} `toml:"cars"`
		Logs struct {
			Lanes []lane.Lane `toml:"lanes"`
		} `toml:"logs"`
	}
	if err := toml.Unmarshal(data, &lanes); err != nil {
		return nil, fmt.Errorf("failed to parse config lanes: %w", err)
	}
	if lanes.Cars.Lanes != nil {
		cfg.Cars.Lanes = lanes.Cars.Lanes
	}
	if lanes.Logs.Lanes != nil {
		cfg.Logs.Lanes = lanes.Logs.Lanes
	}
	return cfg, nil
}

// Encode returns the config as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate reports every impossible value. Each error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.TPS > 0, "tps must be positive, got %d", c.TPS)
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Grid.Size >= 3, "grid.size must be at least 3, got %d", c.Grid.Size)
	check(c.Grid.CellSize > 0, "grid.cell_size must be positive, got %v", c.Grid.CellSize)
	check(c.Frog.JumpDuration > 0, "frog.jump_duration must be positive, got %v", c.Frog.JumpDuration)
	check(c.Frog.DeathDuration > 0, "frog.death_duration must be positive, got %v", c.Frog.DeathDuration)
	check(c.Frog.JumpHeight >= 0, "frog.jump_height must not be negative, got %v", c.Frog.JumpHeight)
	check(c.Cars.Bound > 0, "cars.bound must be positive, got %v", c.Cars.Bound)
	check(c.Logs.Bound > 0, "logs.bound must be positive, got %v", c.Logs.Bound)
	check(c.Spawn.PerLane >= 1, "spawn.per_lane must be at least 1, got %d", c.Spawn.PerLane)
	check(c.Spawn.LogMinLength > 0 && c.Spawn.LogMinLength <= c.Spawn.LogMaxLength,
		"spawn log length range [%v, %v] is empty", c.Spawn.LogMinLength, c.Spawn.LogMaxLength)
	check(c.Rules.Lives >= 1, "rules.lives must be at least 1, got %d", c.Rules.Lives)
	check(c.Rules.ResetDelay >= 0, "rules.reset_delay must not be negative, got %v", c.Rules.ResetDelay)
	check(c.Rules.MoveInterval >= 0, "rules.move_interval must not be negative, got %v", c.Rules.MoveInterval)
	check(c.Powerups.Count >= 0, "powerups.count must not be negative, got %d", c.Powerups.Count)

	half := float64(c.Grid.Size) * c.Grid.CellSize / 2
	for i, l := range append(append([]lane.Lane{}, c.Cars.Lanes...), c.Logs.Lanes...) {
		check(l.Speed >= 0, "lane %d speed must not be negative, got %v", i, l.Speed)
		check(geom.Abs(l.Z) < half, "lane %d at z=%v is off the board", i, l.Z)
	}

	return errors.Join(errs...)
}

// NewGrid builds the board.
func (c *Config) NewGrid() *grid.System {
	return grid.New(c.Grid.Size, c.Grid.CellSize, c.Grid.BaseHeight)
}

// FrogConfig returns the frog's tuning, starting in the middle of the first row of g.
func (c *Config) FrogConfig(g *grid.System) frog.Config {
	fc := frog.DefaultConfig()
	fc.StartX, fc.StartZ = g.GridToWorld(g.Size()/2, 0)
	fc.RestY = g.ObjectRestY(fc.BodySize.Y)
	fc.JumpHeight = c.Frog.JumpHeight
	fc.JumpDuration = c.Frog.JumpDuration
	fc.DeathDuration = c.Frog.DeathDuration
	fc.DeathScale = c.Frog.DeathScale
	return fc
}

// SpawnConfig returns the obstacle layout for g.
func (c *Config) SpawnConfig(g *grid.System) obstacle.SpawnConfig {
	sc := obstacle.DefaultSpawnConfig()
	sc.PerLane = c.Spawn.PerLane
	sc.FieldWidth = float64(g.Size()) * g.CellSize()
	sc.StartX = g.HalfWidth() - g.CellSize()/2
	sc.Jitter = c.Spawn.Jitter
	sc.CarSize = geom.NewVec3(c.Spawn.CarLength, c.Spawn.CarHeight, c.Spawn.CarDepth)
	sc.LogRadius = c.Spawn.LogRadius
	sc.LogMinLength = c.Spawn.LogMinLength
	sc.LogMaxLength = c.Spawn.LogMaxLength
	return sc
}

// Initial returns the game state's starting values.
func (c *Config) Initial() gamestate.Initial {
	in := gamestate.DefaultInitial()
	in.Lives = c.Rules.Lives
	in.ResetDelay = c.Rules.ResetDelay
	return in
}

// PowerupConfig returns the pickup settings.
func (c *Config) PowerupConfig() powerup.Config {
	return powerup.Config{
		Count:  c.Powerups.Count,
		Points: c.Powerups.Points,
		Size:   c.Powerups.Size,
	}
}
