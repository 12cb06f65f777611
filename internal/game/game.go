// Package game wires the frogger systems together and runs them once per tick.
package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"chosenoffset.com/frogger/internal/collision"
	"chosenoffset.com/frogger/internal/config"
	"chosenoffset.com/frogger/internal/control"
	"chosenoffset.com/frogger/internal/core/clock"
	"chosenoffset.com/frogger/internal/core/events"
	"chosenoffset.com/frogger/internal/core/gamestate"
	"chosenoffset.com/frogger/internal/core/geom"
	"chosenoffset.com/frogger/internal/core/grid"
	"chosenoffset.com/frogger/internal/core/logging"
	"chosenoffset.com/frogger/internal/entity/frog"
	"chosenoffset.com/frogger/internal/entity/obstacle"
	"chosenoffset.com/frogger/internal/entity/powerup"
	"chosenoffset.com/frogger/internal/render"
	"chosenoffset.com/frogger/internal/ui/hud"
)

const messageDuration = 2.0

// Options configures a new Game.
type Options struct {
	Config   *config.Config
	Renderer render.Renderer
	Input    render.InputManager
	Logger   *log.Logger
	Seed     uint64

	// Configs delivers reloaded configs; they take effect on the next reset.
	Configs <-chan *config.Config
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager

	Grid       *grid.System
	Frog       *frog.Frog
	Controller *control.MovementController
	Input      *control.InputReader
	Cars       *obstacle.Set
	Logs       *obstacle.Set
	Powerups   *powerup.Field
	Collision  *collision.System
	State      *gamestate.GameState
	Bus        *events.Bus
	GameHUD    *hud.HUD
	Clock      *clock.Clock
	Metrics    *clock.Metrics

	// UI state
	Messages []Message

	cfg     *config.Config
	pending *config.Config
	configs <-chan *config.Config
	logger  *log.Logger
	rng     *rand.Rand
	dt      float64

	lastDraw time.Time
	now      func() time.Time
}

// New builds a game from opts. The config is validated first.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Renderer:     opts.Renderer,
		InputMgr:     opts.Input,
		Bus:          events.NewBus(),
		Clock:        clock.New(),
		Metrics:      clock.NewMetrics(),
		Cars:         obstacle.NewSet(cfg.Cars.Bound),
		Logs:         obstacle.NewSet(cfg.Logs.Bound),
		configs:      opts.Configs,
		logger:       logger,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		now:          time.Now,
	}

	g.State = gamestate.New(cfg.Initial(), g.Bus)
	g.Powerups = powerup.NewField(cfg.PowerupConfig())
	g.applyConfig(cfg)

	g.GameHUD = hud.New(hud.DefaultConfig(), opts.Renderer, g.ScreenWidth, g.ScreenHeight)
	g.GameHUD.SetStats(g.Metrics)
	g.GameHUD.Attach(g.Bus, g.State.Score(), g.State.Lives())

	for _, code := range []events.Code{events.Reset, events.FrogDied, events.GameOver, events.Crossed, events.PowerupCollected} {
		g.Bus.Register(code, g, g.onEvent)
	}

	g.spawnWorld()
	g.logger.Info("game created", "run", g.State.RunID(), "seed", opts.Seed, "grid", g.Grid.Size())
	return g, nil
}

// Config returns the config currently in effect.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// applyConfig rebuilds the parts of the game that depend on the config.
func (g *Game) applyConfig(cfg *config.Config) {
	g.cfg = cfg
	g.dt = 1 / float64(cfg.TPS)
	g.Grid = cfg.NewGrid()

	if g.Frog == nil {
		g.Frog = frog.New(cfg.FrogConfig(g.Grid))
	} else {
		g.Frog.SetConfig(cfg.FrogConfig(g.Grid))
	}
	g.Controller = control.NewMovementController(g.Grid, g.Frog, logging.Component(g.logger, "control"))

	river := collision.RiverFromLanes(cfg.Logs.Lanes, g.Grid.HalfWidth(), g.Grid.CellSize())
	if g.Collision == nil {
		g.Collision = collision.New(g.State, river, logging.Component(g.logger, "collision"))
	} else {
		g.Collision.SetRiver(river)
	}

	g.Cars.SetBound(cfg.Cars.Bound)
	g.Logs.SetBound(cfg.Logs.Bound)
	g.Powerups.SetConfig(cfg.PowerupConfig())
	g.Input = control.NewInputReader(g.InputMgr, control.NewDebouncer(cfg.Rules.MoveInterval))
	g.State.SetInitial(cfg.Initial())
}

// spawnWorld puts the frog at the start and lays out fresh obstacles and pickups.
func (g *Game) spawnWorld() {
	g.Frog.Reset()
	g.Input.Reset()

	g.Cars.Clear()
	g.Logs.Clear()
	spawner := obstacle.NewSpawner(g.cfg.SpawnConfig(g.Grid), g.rng)
	spawner.SpawnCars(g.Cars, g.cfg.Cars.Lanes)
	spawner.SpawnLogs(g.Logs, g.cfg.Logs.Lanes)

	g.Powerups.Spawn(g.Grid, g.rng, 0)
}

func (g *Game) onEvent(e events.Event) bool {
	switch e.Code {
	case events.Reset:
		if g.pending != nil {
			g.applyConfig(g.pending)
			g.pending = nil
			g.logger.Info("applied reloaded config")
		}
		g.spawnWorld()
		g.Messages = nil
		g.logger.Info("game reset", "run", g.State.RunID())
	case events.FrogDied:
		g.ShowMessage(deathMessage(e.Cause))
	case events.GameOver:
		g.logger.Info("game over", "run", g.State.RunID(), "score", e.Score)
	case events.Crossed:
		g.ShowMessage("Made it across!")
	case events.PowerupCollected:
		g.logger.Debug("powerup collected", "score", e.Score)
	}
	return false
}

func deathMessage(cause string) string {
	switch cause {
	case string(collision.CauseCar):
		return "Hit by a car!"
	case string(collision.CauseRiver):
		return "Drowned!"
	case string(collision.CauseSwept):
		return "Swept away!"
	default:
		return "Lost a life!"
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	dt := g.dt
	g.Clock.Advance(dt)
	g.updateMessages(dt)
	g.drainConfigs()

	cmd := g.Input.Poll(g.Clock.Elapsed())
	if cmd.Quit {
		g.logger.Info("quit requested", "run", g.State.RunID(), "score", g.State.Score())
		return render.ErrQuit
	}
	if cmd.Reset {
		g.logger.Info("manual reset", "run", g.State.RunID())
		g.State.Reset()
		return nil
	}

	// Game over is terminal until the reset timer fires.
	if g.State.IsGameOver() {
		g.State.Tick(dt)
		return nil
	}

	if cmd.ToggleCamera {
		g.State.ToggleCamera()
	}
	if cmd.Move != grid.DirNone {
		g.Controller.Move(cmd.Move)
	}

	if landed, x, z := g.Controller.Update(dt); landed {
		g.onLanded(x, z)
	}

	out := g.Collision.Check(g.Frog, g.Cars, g.Logs, dt)
	if !out.Died {
		g.collectPowerups()
	}

	g.Cars.Update(dt)
	g.Logs.Update(dt)
	if !out.Died && !out.Carried && g.Frog.IsGrounded() {
		if ridden := g.Logs.Get(g.State.CurrentLog()); ridden != nil {
			g.Frog.MoveX(ridden.Displacement(dt))
		}
	}

	g.State.Tick(dt)
	return nil
}

// onLanded scores a crossing when the frog lands on the far bank.
func (g *Game) onLanded(x, z int) {
	if z != g.Grid.Size()-1 {
		return
	}
	g.logger.Info("crossed", "run", g.State.RunID(), "column", x)
	g.State.UpdateScore(g.cfg.Rules.CrossingPoints)
	g.State.Announce(events.Crossed, "")
	g.State.SetCurrentLog(obstacle.None)
	g.Frog.Reset()
}

func (g *Game) collectPowerups() {
	points, count := g.Powerups.Collect(g.Frog.Box())
	if count == 0 {
		return
	}
	g.State.UpdateScore(points)
	g.State.Announce(events.PowerupCollected, "")
}

// drainConfigs takes the newest reloaded config, if any. Its starting values
// are used by the next reset; the board is rebuilt from it at that reset too.
func (g *Game) drainConfigs() {
	if g.configs == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.configs:
			if !ok {
				g.configs = nil
				return
			}
			if err := cfg.Validate(); err != nil {
				g.logger.Warn("ignoring reloaded config", "err", err)
				continue
			}
			g.pending = cfg
			g.State.SetInitial(cfg.Initial())
			g.ShowMessage("Config reloaded, press R to apply")
		default:
			return
		}
	}
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
	g.logger.Debug("message", "text", text)
}

// Scene returns a snapshot of the board for rendering.
func (g *Game) Scene() Scene {
	s := Scene{
		Camera: g.State.Camera(),
		Frog: FrogView{
			Object: Object{
				Position: g.Frog.Position,
				Size:     g.Frog.Config().BodySize,
				Heading:  g.Frog.Heading,
			},
			Scale: g.Frog.Scale,
			Flash: g.Frog.Flash,
		},
	}
	for _, o := range g.Cars.All() {
		s.Cars = append(s.Cars, Object{Position: o.Position, Size: o.Size})
	}
	for _, o := range g.Logs.All() {
		s.Logs = append(s.Logs, Object{Position: o.Position, Size: o.Size})
	}
	for _, p := range g.Powerups.All() {
		if p.Collected {
			continue
		}
		size := g.Powerups.Config().Size
		s.Powerups = append(s.Powerups, Object{Position: p.Position, Size: geom.NewVec3(size, size, size)})
	}
	return s
}
